// Package domain converts loaded coverage measurements into LCOV reports.
package domain

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"golcov.dev/pkg/golcov/internal/adapter"
	m "golcov.dev/pkg/golcov/internal/model"
)

const couldntParseSlug = "couldnt-parse"

// ConverterArgs selects the inputs of one conversion run.
type ConverterArgs struct {
	// RelativePath emits file names relative to the project root.
	RelativePath bool
	Config       m.ConfigSource
	DataFile     m.Path
}

// Converter turns one loaded coverage data set into LCOV output.
type Converter interface {
	// FileReporters lists the measured files left after include/omit filtering.
	FileReporters() ([]adapter.ReporterPair, error)
	// Reports builds one record per eligible file in a fixed order.
	Reports() ([]m.FileReport, error)
	// Lcov returns the full report text.
	Lcov() (string, error)
	// PrintLcov writes the report text followed by a newline to w.
	PrintLcov(w io.Writer) error
	// CreateLcov writes the report to output once it is fully built.
	CreateLcov(output m.Path) error
}

type converter struct {
	relativePath bool
	config       m.ReportConfig
	data         adapter.CoverageData
	store        adapter.ReportStore
}

// NewConverter loads settings and coverage data up front. Any failure is
// returned as a *DataLoadError.
func NewConverter(
	args ConverterArgs,
	configAdapter adapter.ConfigAdapter,
	loader adapter.CoverageDataLoader,
	store adapter.ReportStore,
) (Converter, error) {
	config, err := configAdapter.Load(args.Config)
	if err != nil {
		slog.Error("Failed to load config", "source", args.Config.File, "error", err)
		return nil, &DataLoadError{Source: "config " + string(args.Config.File), Err: err}
	}

	data, err := loader.Load(args.DataFile, config)
	if err != nil {
		slog.Error("Failed to load coverage data", "file", args.DataFile, "error", err)
		return nil, &DataLoadError{Source: "coverage data " + string(args.DataFile), Err: err}
	}

	return &converter{
		relativePath: args.RelativePath,
		config:       config,
		data:         data,
		store:        store,
	}, nil
}

func (c *converter) FileReporters() ([]adapter.ReporterPair, error) {
	pairs := c.data.FileReporters()
	root := c.data.ProjectRoot()

	if len(c.config.Include) > 0 {
		matcher, err := adapter.NewGlobMatcher(adapter.PrepPatterns(c.config.Include, root), "report_include")
		if err != nil {
			return nil, err
		}

		pairs = filterPairs(pairs, matcher, true)
	}

	if len(c.config.Omit) > 0 {
		matcher, err := adapter.NewGlobMatcher(adapter.PrepPatterns(c.config.Omit, root), "report_omit")
		if err != nil {
			return nil, err
		}

		pairs = filterPairs(pairs, matcher, false)
	}

	if len(pairs) == 0 {
		return nil, ErrEmptyReport
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Reporter().Filename < pairs[j].Reporter().Filename
	})

	return pairs, nil
}

func filterPairs(pairs []adapter.ReporterPair, matcher adapter.Matcher, keep bool) []adapter.ReporterPair {
	filtered := make([]adapter.ReporterPair, 0, len(pairs))

	for _, pair := range pairs {
		if matcher.Match(pair.Reporter().Filename) == keep {
			filtered = append(filtered, pair)
			continue
		}

		slog.Debug("filtered out", "file", pair.Reporter().Filename, "option", matcher.Name())
	}

	return filtered
}

func (c *converter) Reports() ([]m.FileReport, error) {
	pairs, err := c.FileReporters()
	if err != nil {
		return nil, err
	}

	reports := make([]m.FileReport, 0, len(pairs))

	for _, pair := range pairs {
		report, err := c.reportFile(pair)
		if err == nil {
			reports = append(reports, report)
			continue
		}

		if err := c.handleFileError(pair.Reporter(), err); err != nil {
			return nil, err
		}
	}

	return reports, nil
}

// handleFileError returns nil when the failed file is to be skipped.
func (c *converter) handleFileError(reporter m.FileReporter, err error) error {
	switch {
	case errors.Is(err, adapter.ErrNoSource):
		if !c.config.IgnoreErrors {
			return err
		}

		slog.Debug("skipping file without source", "file", reporter.Filename)

		return nil

	case errors.Is(err, adapter.ErrNotGoSource):
		if !reporter.ShouldBeGo() {
			slog.Debug("skipping non-Go file", "file", reporter.Filename)
			return nil
		}

		if !c.config.IgnoreErrors {
			return err
		}

		c.data.Warn(fmt.Sprintf("Couldn't parse Go file '%s'", reporter.Filename), couldntParseSlug)

		return nil

	default:
		return err
	}
}

func (c *converter) reportFile(pair adapter.ReporterPair) (m.FileReport, error) {
	analysis, err := c.data.Analyze(pair.Reference())
	if err != nil {
		return m.FileReport{}, err
	}

	reporter := pair.Reporter()

	tokenLines, err := c.data.SourceTokenLines(reporter)
	if err != nil {
		return m.FileReport{}, err
	}

	report := m.FileReport{
		Filename: reporter.Filename,
		Found:    len(analysis.Statements),
	}

	if c.relativePath {
		report.Filename = reporter.RelativeFilename()
	}

	for i := 1; i <= len(tokenLines); i++ {
		hits := GetHits(i, analysis)
		if !hits.Applicable() {
			continue
		}

		if hits > 0 {
			report.Hit++
		}

		report.Lines = append(report.Lines, m.LineHit{Line: i, Hits: hits})
	}

	return report, nil
}

func (c *converter) Lcov() (string, error) {
	reports, err := c.Reports()
	if err != nil {
		return "", err
	}

	return FormatLcov(reports), nil
}

func (c *converter) PrintLcov(w io.Writer) error {
	text, err := c.Lcov()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, text)

	return err
}

func (c *converter) CreateLcov(output m.Path) error {
	text, err := c.Lcov()
	if err != nil {
		return err
	}

	return c.store.SaveLcov(output, text)
}
