package model

// LineHit is a single DA record.
type LineHit struct {
	Line int
	Hits Hits
}

// FileReport is the LCOV record block built for one source file.
type FileReport struct {
	Filename Path
	Lines    []LineHit
	Found    int // LF: executable lines
	Hit      int // LH: lines with a nonzero hit count
}

// Percent returns the line coverage of the record in the range [0, 100].
func (r FileReport) Percent() float64 {
	if r.Found == 0 {
		return 100.0
	}

	return float64(r.Hit) * 100 / float64(r.Found)
}
