package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golcov.dev/pkg/golcov/internal/controller"
)

var skipCoveredFlag bool
var sortFlag string

// summaryCmd represents the summary command.
var summaryCmd = newSummaryCmd()

func newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show per-file line coverage",
		Long:  "Print the line coverage the LCOV report would carry, one row per file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			order, err := parseSortFlag(sortFlag)
			if err != nil {
				return err
			}

			converter, err := newConverter(converterArgs(cmd))
			if err != nil {
				return err
			}

			reports, err := converter.Reports()
			if err != nil {
				return err
			}

			return newUI(cmd).DisplaySummary(cmd.Context(), reports,
				controller.WithSortOrder(order),
				controller.WithSkipCovered(skipCoveredFlag),
			)
		},
	}

	cmd.Flags().BoolVar(&skipCoveredFlag, skipCoveredFlagName, false, "hide files with full coverage")
	cmd.Flags().StringVar(&sortFlag, sortFlagName, "name", "row order: name or cover")

	return cmd
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func parseSortFlag(value string) (controller.SortOrder, error) {
	switch value {
	case "", "name":
		return controller.SortByName, nil
	case "cover":
		return controller.SortByCover, nil
	default:
		return controller.SortByName, fmt.Errorf("invalid --%s value %q (want name or cover)", sortFlagName, value)
	}
}
