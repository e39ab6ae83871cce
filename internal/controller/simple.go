package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "golcov.dev/pkg/golcov/internal/model"
)

// SimpleUI implements UI on top of a cobra command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySummary prints a per-file coverage table with a totals footer.
func (s *SimpleUI) DisplaySummary(ctx context.Context, reports []m.FileReport, options ...SummaryOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := SummaryConfig{}
	for _, option := range options {
		option(&config)
	}

	rows := summaryRows(reports, config)
	s.printf("%s", renderSummaryTable(rows, totals(reports)))

	return nil
}

// DisplayWritten confirms where the report went.
func (s *SimpleUI) DisplayWritten(ctx context.Context, output m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Wrote LCOV report to %s\n", output)

	return nil
}

func summaryRows(reports []m.FileReport, config SummaryConfig) []m.FileReport {
	rows := make([]m.FileReport, 0, len(reports))

	for _, report := range reports {
		if config.skipCovered && report.Hit == report.Found {
			continue
		}

		rows = append(rows, report)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if config.order == SortByCover && rows[i].Percent() != rows[j].Percent() {
			return rows[i].Percent() < rows[j].Percent()
		}

		return rows[i].Filename < rows[j].Filename
	})

	return rows
}

func totals(reports []m.FileReport) m.FileReport {
	total := m.FileReport{Filename: m.Path(fmt.Sprintf("Total Files %d", len(reports)))}

	for _, report := range reports {
		total.Found += report.Found
		total.Hit += report.Hit
	}

	return total
}

func renderSummaryTable(rows []m.FileReport, total m.FileReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Lines", "Hit", "Cover"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	for _, row := range rows {
		table.Append(formatRow(row))
	}

	table.SetFooter(formatRow(total))
	table.Render()

	return tableBuffer.String()
}

func formatRow(report m.FileReport) []string {
	return []string{
		string(report.Filename),
		fmt.Sprintf("%d", report.Found),
		fmt.Sprintf("%d", report.Hit),
		fmt.Sprintf("%.1f%%", report.Percent()),
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
