package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSource is returned when a measured file can no longer be read.
	ErrNoSource = errors.New("no source for code")
	// ErrNotGoSource is returned when a measured file does not parse as Go.
	ErrNotGoSource = errors.New("not Go source")
	// ErrIO marks failures writing the report destination.
	ErrIO = errors.New("write report")
)

// EncodingError reports report text that cannot be stored as ASCII.
type EncodingError struct {
	Offset int
	Byte   byte
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("'ascii' codec can't encode byte 0x%02x in position %d: ordinal not in range(128)", e.Byte, e.Offset)
}
