// Package controller renders conversion results for the user.
package controller

import (
	"context"

	m "golcov.dev/pkg/golcov/internal/model"
)

// SortOrder selects how summary rows are ordered.
type SortOrder int

// Available SortOrder values.
const (
	SortByName SortOrder = iota
	SortByCover
)

// SummaryOption is a functional option for DisplaySummary.
type SummaryOption func(*SummaryConfig)

// SummaryConfig holds the settings of one summary rendering.
type SummaryConfig struct {
	order       SortOrder
	skipCovered bool
}

// WithSortOrder orders rows by name (default) or by ascending coverage.
func WithSortOrder(order SortOrder) SummaryOption {
	return func(c *SummaryConfig) {
		c.order = order
	}
}

// WithSkipCovered hides files that have every line hit.
func WithSkipCovered(skip bool) SummaryOption {
	return func(c *SummaryConfig) {
		c.skipCovered = skip
	}
}

// UI defines how conversion results are shown.
type UI interface {
	DisplaySummary(ctx context.Context, reports []m.FileReport, options ...SummaryOption) error
	DisplayWritten(ctx context.Context, output m.Path) error
}
