package adapter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "golcov.dev/pkg/golcov/internal/model"
	"golang.org/x/mod/modfile"
	"golang.org/x/tools/cover"
)

// ReporterPair couples a file reporter with the measured reference (the file
// name recorded in the coverage data) it was resolved from. Downstream code
// only goes through the two accessors.
type ReporterPair struct {
	reporter  m.FileReporter
	reference string
}

// NewReporterPair builds a ReporterPair.
func NewReporterPair(reporter m.FileReporter, reference string) ReporterPair {
	return ReporterPair{reporter: reporter, reference: reference}
}

// Reporter returns the resolved file view.
func (p ReporterPair) Reporter() m.FileReporter {
	return p.reporter
}

// Reference returns the measured reference as recorded in the data file.
func (p ReporterPair) Reference() string {
	return p.reference
}

// CoverageData is the narrow view of loaded measurement results the converter
// needs: listing measured files, analysing one, and the warning channel.
type CoverageData interface {
	// FileReporters lists every measured file.
	FileReporters() []ReporterPair

	// Analyze computes the statement and missed lines of one measured file.
	// It fails with ErrNoSource when the source is gone and with
	// ErrNotGoSource when it no longer parses.
	Analyze(reference string) (m.Analysis, error)

	// SourceTokenLines returns the physical lines of the reporter's source.
	SourceTokenLines(reporter m.FileReporter) ([][]byte, error)

	// Warn emits a user-facing warning identified by slug.
	Warn(msg, slug string)

	// ProjectRoot is the directory relative paths and patterns resolve against.
	ProjectRoot() m.Path
}

// CoverageDataLoader opens persisted coverage data.
type CoverageDataLoader interface {
	Load(dataFile m.Path, cfg m.ReportConfig) (CoverageData, error)
}

// GoCoverageLoader reads Go coverage profiles as written by
// `go test -coverprofile`.
type GoCoverageLoader struct {
	fs       SourceFSAdapter
	goFiles  GoFileAdapter
	warnings io.Writer
}

// NewGoCoverageLoader constructs a loader writing warnings to warnings.
func NewGoCoverageLoader(fs SourceFSAdapter, goFiles GoFileAdapter, warnings io.Writer) *GoCoverageLoader {
	if warnings == nil {
		warnings = os.Stderr
	}

	return &GoCoverageLoader{fs: fs, goFiles: goFiles, warnings: warnings}
}

// Load parses dataFile and resolves every profile to a file on disk.
func (l *GoCoverageLoader) Load(dataFile m.Path, cfg m.ReportConfig) (CoverageData, error) {
	if _, err := l.fs.FileInfo(dataFile); err != nil {
		return nil, fmt.Errorf("coverage data file %s: %w", dataFile, err)
	}

	profiles, err := cover.ParseProfiles(string(dataFile))
	if err != nil {
		return nil, fmt.Errorf("parse coverage data %s: %w", dataFile, err)
	}

	root, modulePath, err := l.projectRoot(cfg.Root)
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded coverage data", "file", dataFile, "profiles", len(profiles), "root", root, "module", modulePath)

	data := &goCoverageData{
		fs:       l.fs,
		goFiles:  l.goFiles,
		root:     root,
		profiles: make(map[string]*cover.Profile, len(profiles)),
		files:    make(map[string]m.Path, len(profiles)),
		sources:  make(map[m.Path][]byte),
		warnings: l.warnings,
		disabled: make(map[string]struct{}, len(cfg.DisableWarnings)),
		warned:   make(map[string]struct{}),
	}

	for _, slug := range cfg.DisableWarnings {
		data.disabled[slug] = struct{}{}
	}

	for _, profile := range profiles {
		filename := resolveProfileName(profile.FileName, root, modulePath)
		data.profiles[profile.FileName] = profile
		data.files[profile.FileName] = filename
		data.pairs = append(data.pairs, NewReporterPair(
			m.FileReporter{Filename: filename, Root: root},
			profile.FileName,
		))
	}

	return data, nil
}

// projectRoot returns the configured root, or the go.mod directory above the
// working directory, together with the module path declared there.
func (l *GoCoverageLoader) projectRoot(configured m.Path) (m.Path, string, error) {
	var root m.Path

	if configured != "" {
		abs, err := filepath.Abs(string(configured))
		if err != nil {
			return "", "", err
		}

		root = m.Path(abs)
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return "", "", err
		}

		root, err = l.fs.FindProjectRoot(m.Path(wd))
		if err != nil {
			slog.Debug("no go.mod found, resolving profiles against working directory", "dir", wd)
			return m.Path(wd), "", nil
		}
	}

	content, err := l.fs.ReadFile(l.fs.JoinPath(string(root), "go.mod"))
	if err != nil {
		return root, "", nil
	}

	return root, modfile.ModulePath(content), nil
}

// resolveProfileName maps a profile file name to an absolute path. Profile
// names are import-path based ("mod/pkg/file.go"), absolute, or "_"-prefixed
// absolute paths for packages outside any module.
func resolveProfileName(name string, root m.Path, modulePath string) m.Path {
	if filepath.IsAbs(name) {
		return m.Path(filepath.Clean(name))
	}

	if rest, ok := strings.CutPrefix(name, "_"); ok && filepath.IsAbs(filepath.FromSlash(rest)) {
		return m.Path(filepath.Clean(filepath.FromSlash(rest)))
	}

	if modulePath != "" {
		if rest, ok := strings.CutPrefix(name, modulePath+"/"); ok {
			return m.Path(filepath.Join(string(root), filepath.FromSlash(rest)))
		}
	}

	return m.Path(filepath.Join(string(root), filepath.FromSlash(name)))
}

type goCoverageData struct {
	fs       SourceFSAdapter
	goFiles  GoFileAdapter
	root     m.Path
	pairs    []ReporterPair
	profiles map[string]*cover.Profile
	files    map[string]m.Path
	sources  map[m.Path][]byte
	warnings io.Writer
	disabled map[string]struct{}
	warned   map[string]struct{}
}

func (d *goCoverageData) FileReporters() []ReporterPair {
	pairs := make([]ReporterPair, len(d.pairs))
	copy(pairs, d.pairs)

	return pairs
}

func (d *goCoverageData) ProjectRoot() m.Path {
	return d.root
}

func (d *goCoverageData) Analyze(reference string) (m.Analysis, error) {
	profile, ok := d.profiles[reference]
	if !ok {
		return m.Analysis{}, fmt.Errorf("no coverage data recorded for %s", reference)
	}

	filename := d.files[reference]

	src, err := d.source(filename)
	if err != nil {
		return m.Analysis{}, err
	}

	if _, err := d.goFiles.Parse(string(filename), src); err != nil {
		return m.Analysis{}, fmt.Errorf("%w: couldn't parse '%s': %v", ErrNotGoSource, filename, err)
	}

	return analyzeProfile(profile), nil
}

func (d *goCoverageData) SourceTokenLines(reporter m.FileReporter) ([][]byte, error) {
	src, err := d.source(reporter.Filename)
	if err != nil {
		return nil, err
	}

	return d.goFiles.TokenLines(src), nil
}

func (d *goCoverageData) Warn(msg, slug string) {
	if _, ok := d.disabled[slug]; ok {
		return
	}

	if _, ok := d.warned[msg]; ok {
		return
	}

	d.warned[msg] = struct{}{}

	slog.Warn(msg, "slug", slug)
	_, _ = fmt.Fprintf(d.warnings, "golcov warning: %s (%s)\n", msg, slug)
}

func (d *goCoverageData) source(filename m.Path) ([]byte, error) {
	if src, ok := d.sources[filename]; ok {
		return src, nil
	}

	src, err := d.fs.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s': %v", ErrNoSource, filename, err)
	}

	d.sources[filename] = src

	return src, nil
}

// analyzeProfile turns profile blocks into line sets. Every line spanned by a
// block holding statements is executable; it is missed unless some block
// covering it ran.
func analyzeProfile(profile *cover.Profile) m.Analysis {
	hit := make(map[int]bool)

	for _, block := range profile.Blocks {
		if block.NumStmt == 0 {
			continue
		}

		for line := block.StartLine; line <= block.EndLine; line++ {
			hit[line] = hit[line] || block.Count > 0
		}
	}

	statements := make([]int, 0, len(hit))
	missing := make([]int, 0)

	for line, ok := range hit {
		statements = append(statements, line)

		if !ok {
			missing = append(missing, line)
		}
	}

	sort.Ints(statements)

	return m.NewAnalysis(statements, missing)
}
