package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "golcov.dev/pkg/golcov/internal/model"
)

func newTestUI() (*SimpleUI, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	return NewSimpleUI(cmd), out
}

var sampleReports = []m.FileReport{
	{Filename: "pkg/b.go", Found: 4, Hit: 1},
	{Filename: "pkg/a.go", Found: 10, Hit: 10},
	{Filename: "pkg/c.go", Found: 2, Hit: 1},
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, out := newTestUI()

	require.NoError(t, ui.DisplaySummary(context.Background(), sampleReports))

	output := out.String()
	upper := strings.ToUpper(output)

	assert.Contains(t, upper, "FILE")
	assert.Contains(t, upper, "COVER")
	assert.Contains(t, output, "pkg/a.go")
	assert.Contains(t, output, "25.0%")
	assert.Contains(t, output, "100.0%")
	assert.Contains(t, upper, "TOTAL FILES 3")
	assert.Contains(t, output, "75.0%")

	assert.Less(t, strings.Index(output, "pkg/a.go"), strings.Index(output, "pkg/b.go"))
	assert.Less(t, strings.Index(output, "pkg/b.go"), strings.Index(output, "pkg/c.go"))
}

func TestSimpleUI_DisplaySummary_Options(t *testing.T) {
	t.Run("skip covered", func(t *testing.T) {
		ui, out := newTestUI()

		require.NoError(t, ui.DisplaySummary(context.Background(), sampleReports, WithSkipCovered(true)))

		assert.NotContains(t, out.String(), "pkg/a.go")
		assert.Contains(t, out.String(), "pkg/b.go")
		assert.Contains(t, strings.ToUpper(out.String()), "TOTAL FILES 3")
	})

	t.Run("sort by cover", func(t *testing.T) {
		ui, out := newTestUI()

		require.NoError(t, ui.DisplaySummary(context.Background(), sampleReports, WithSortOrder(SortByCover)))

		output := out.String()
		assert.Less(t, strings.Index(output, "pkg/b.go"), strings.Index(output, "pkg/c.go"))
		assert.Less(t, strings.Index(output, "pkg/c.go"), strings.Index(output, "pkg/a.go"))
	})
}

func TestSimpleUI_DisplaySummary_Cancelled(t *testing.T) {
	ui, out := newTestUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, ui.DisplaySummary(ctx, sampleReports), context.Canceled)
	assert.Empty(t, out.String())
}

func TestSimpleUI_DisplayWritten(t *testing.T) {
	ui, out := newTestUI()

	require.NoError(t, ui.DisplayWritten(context.Background(), "lcov.info"))
	assert.Equal(t, "Wrote LCOV report to lcov.info\n", out.String())
}

func TestSummaryRows_EmptyFileCountsAsCovered(t *testing.T) {
	rows := summaryRows([]m.FileReport{{Filename: "empty.go"}}, SummaryConfig{skipCovered: true})
	assert.Empty(t, rows)
}
