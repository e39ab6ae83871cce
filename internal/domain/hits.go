package domain

import m "golcov.dev/pkg/golcov/internal/model"

// GetHits returns the DA hit count for line: 0 when the line was missed,
// model.HitsNone when it is not executable, 1 otherwise.
func GetHits(line int, analysis m.Analysis) m.Hits {
	if analysis.IsMissing(line) {
		return 0
	}

	if !analysis.IsStatement(line) {
		return m.HitsNone
	}

	return 1
}
