// Package model defines the data structures shared by the coverage converter.
package model

import "sort"

// Hits is the per-line hit count emitted in a DA record.
type Hits int

// HitsNone marks a line that is not an executable statement.
const HitsNone Hits = -1

// Applicable reports whether the line carries a DA record at all.
func (h Hits) Applicable() bool {
	return h != HitsNone
}

// Analysis holds the executable and missed lines of one measured file.
// Missing is always a subset of Statements.
type Analysis struct {
	Statements []int
	Missing    []int

	statements map[int]struct{}
	missing    map[int]struct{}
}

// NewAnalysis builds an Analysis from unordered line sets. Missing lines that
// are not statements are dropped to keep the subset invariant.
func NewAnalysis(statements, missing []int) Analysis {
	a := Analysis{
		statements: make(map[int]struct{}, len(statements)),
		missing:    make(map[int]struct{}, len(missing)),
	}

	for _, line := range statements {
		if _, ok := a.statements[line]; ok {
			continue
		}

		a.statements[line] = struct{}{}
		a.Statements = append(a.Statements, line)
	}

	for _, line := range missing {
		if _, ok := a.statements[line]; !ok {
			continue
		}

		if _, ok := a.missing[line]; ok {
			continue
		}

		a.missing[line] = struct{}{}
		a.Missing = append(a.Missing, line)
	}

	sort.Ints(a.Statements)
	sort.Ints(a.Missing)

	return a
}

// IsStatement reports whether line is executable.
func (a Analysis) IsStatement(line int) bool {
	_, ok := a.statements[line]
	return ok
}

// IsMissing reports whether line is executable but was never run.
func (a Analysis) IsMissing(line int) bool {
	_, ok := a.missing[line]
	return ok
}
