package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyReport is returned when filtering leaves no file to report on.
var ErrEmptyReport = errors.New("No data to report.") //nolint:stylecheck,revive

// DataLoadError reports persisted coverage data or settings that could not be loaded.
type DataLoadError struct {
	Source string
	Err    error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("couldn't load %s: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}
