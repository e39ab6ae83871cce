package adapter

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
)

// GoFileAdapter encapsulates Go-specific source handling so the coverage
// adapter can validate measured files without knowing about go/parser.
type GoFileAdapter interface {
	// Parse builds an AST for filename, failing when src is not valid Go.
	Parse(filename string, src []byte) (*ast.File, error)

	// TokenLines splits src into its physical lines.
	TokenLines(src []byte) [][]byte
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser.
type LocalGoFileAdapter struct{}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{}
}

// Parse builds an AST for the provided filename/source pair.
func (a *LocalGoFileAdapter) Parse(filename string, src []byte) (*ast.File, error) {
	return parser.ParseFile(token.NewFileSet(), filename, src, parser.SkipObjectResolution)
}

// TokenLines returns one entry per physical line. A trailing newline does not
// start a new line.
func (a *LocalGoFileAdapter) TokenLines(src []byte) [][]byte {
	if len(src) == 0 {
		return nil
	}

	lines := bytes.Split(src, []byte("\n"))
	if len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		lines[i] = bytes.TrimSuffix(line, []byte("\r"))
	}

	return lines
}
