package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	m "golcov.dev/pkg/golcov/internal/model"
)

var outputFileFlag string
var printFlag bool

// convertCmd represents the convert command.
var convertCmd = newConvertCmd()

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Write the LCOV report for a coverage profile",
		Long: `Convert the coverage profile named by --data-file into an LCOV report.

The report is written to --output-file only once it is complete, or printed
to standard output with --print.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			converter, err := newConverter(converterArgs(cmd))
			if err != nil {
				return err
			}

			if printFlag {
				return converter.PrintLcov(cmd.OutOrStdout())
			}

			output := m.Path(viper.GetString(outputFileConfigKey))
			if err := converter.CreateLcov(output); err != nil {
				return err
			}

			return newUI(cmd).DisplayWritten(cmd.Context(), output)
		},
	}

	configureConvertFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func configureConvertFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputFileFlag, outputFileFlagName, "o", defaultOutputFile, "LCOV file to write")
	bindFlagToConfig(cmd.Flags().Lookup(outputFileFlagName), outputFileConfigKey)
	cmd.Flags().BoolVarP(&printFlag, printFlagName, "p", false, "print the report to stdout instead of writing a file")
}
