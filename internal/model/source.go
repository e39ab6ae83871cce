package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// FileReporter is the resolved view of one measured source file.
type FileReporter struct {
	// Filename is the absolute path of the source on disk.
	Filename Path
	// Root is the project root the relative form is computed against.
	Root Path
}

// RelativeFilename returns Filename relative to the project root. Files outside
// the root keep their absolute form.
func (f FileReporter) RelativeFilename() Path {
	if f.Root == "" {
		return f.Filename
	}

	rel, err := filepath.Rel(string(f.Root), string(f.Filename))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return f.Filename
	}

	return Path(filepath.ToSlash(rel))
}

// ShouldBeGo reports whether the file is expected to parse as Go source.
func (f FileReporter) ShouldBeGo() bool {
	return filepath.Ext(string(f.Filename)) == ".go"
}
