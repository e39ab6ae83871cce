// Package cmd provides the root command and CLI setup for golcov.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golcov.dev/pkg/golcov/internal/adapter"
	"golcov.dev/pkg/golcov/internal/controller"
	"golcov.dev/pkg/golcov/internal/domain"
	m "golcov.dev/pkg/golcov/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var goFileAdapter adapter.GoFileAdapter
var configAdapter adapter.ConfigAdapter
var coverageLoader adapter.CoverageDataLoader
var reportStore adapter.ReportStore

// newConverter builds the converter for one run; tests swap it for a mock.
var newConverter func(args domain.ConverterArgs) (domain.Converter, error)

// newUI builds the UI writing to the running command's output.
var newUI = func(cmd *cobra.Command) controller.UI {
	return controller.NewSimpleUI(cmd)
}

// configPathFlag names the config file shared by the CLI and the converter.
var configPathFlag string

// noConfigFlag disables reading any config file.
var noConfigFlag bool

var verboseFlag bool
var logFileFlag string
var dataFileFlag string
var relativeFlag bool

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	goFileAdapter = adapter.NewLocalGoFileAdapter()
	configAdapter = adapter.NewViperConfigAdapter()
	coverageLoader = adapter.NewGoCoverageLoader(fsAdapter, goFileAdapter, os.Stderr)
	reportStore = adapter.NewReportStore(fsAdapter)
	newConverter = func(args domain.ConverterArgs) (domain.Converter, error) {
		return domain.NewConverter(args, configAdapter, coverageLoader, reportStore)
	}
}

const rootLongDescription = `Golcov converts Go coverage profiles (go test -coverprofile) into the
LCOV text format understood by coverage viewers and CI services.

Report settings are read from golcov.yaml:
  report.include / report.omit   glob patterns (*, **, ?, [...]) selecting files
  report.ignore_errors           skip files whose source is missing or unparseable`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "golcov",
		Short:         "Convert Go coverage profiles to LCOV",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			initConfig(configPathFlag, noConfigFlag)
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configPathFlag, configFlagName, "c", configFileName, "config file holding report settings")
	cmd.PersistentFlags().BoolVar(&noConfigFlag, noConfigFlagName, false, "ignore any config file and use defaults")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (default "+defaultLogFilename+")")

	cmd.PersistentFlags().StringVarP(&dataFileFlag, dataFileFlagName, "d", defaultDataFile, "coverage profile to convert")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(dataFileFlagName), dataFileConfigKey)

	cmd.PersistentFlags().BoolVarP(&relativeFlag, relativeFlagName, "r", defaultRelative, "emit file paths relative to the project root")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(relativeFlagName), relativeConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// converterArgs collects the conversion inputs from flags, config and env.
func converterArgs(cmd *cobra.Command) domain.ConverterArgs {
	return domain.ConverterArgs{
		RelativePath: viper.GetBool(relativeConfigKey),
		Config:       configSource(cmd),
		DataFile:     m.Path(viper.GetString(dataFileConfigKey)),
	}
}

func configSource(cmd *cobra.Command) m.ConfigSource {
	if noConfigFlag {
		return m.DisabledConfig
	}

	if flag := cmd.Flags().Lookup(configFlagName); flag != nil && flag.Changed {
		return m.ConfigFile(m.Path(configPathFlag))
	}

	return m.ConfigSource{File: m.Path(configPathFlag)}
}
