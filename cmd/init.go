package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configFile mirrors the layout of golcov.yaml.
type configFile struct {
	Version int `yaml:"version"`
	Run     struct {
		DataFile string `yaml:"data_file"`
		Relative bool   `yaml:"relative"`
	} `yaml:"run"`
	Output struct {
		File string `yaml:"file"`
	} `yaml:"output"`
	Report struct {
		Include         []string `yaml:"include"`
		Omit            []string `yaml:"omit"`
		IgnoreErrors    bool     `yaml:"ignore_errors"`
		DisableWarnings []string `yaml:"disable_warnings"`
	} `yaml:"report"`
	Paths struct {
		Root string `yaml:"root"`
	} `yaml:"paths"`
	Log struct {
		Filename string `yaml:"filename"`
		Level    string `yaml:"level"`
	} `yaml:"log"`
}

func defaultConfigFile() configFile {
	var cfg configFile

	cfg.Version = currentConfigVersion
	cfg.Run.DataFile = defaultDataFile
	cfg.Run.Relative = defaultRelative
	cfg.Output.File = defaultOutputFile
	cfg.Report.Include = []string{}
	cfg.Report.Omit = []string{"**/*_mock.go", "**/mocks/**"}
	cfg.Report.DisableWarnings = []string{}
	cfg.Log.Filename = defaultLogFilename
	cfg.Log.Level = defaultLogLevel

	return cfg
}

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default golcov.yaml configuration file",
		Long: `Create a golcov.yaml in the current working directory populated with the
current CLI defaults so it can be edited manually.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if err := writeDefaultConfig(targetPath); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Printf("Wrote %s\n", targetPath)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// writeDefaultConfig refuses to overwrite an existing file.
func writeDefaultConfig(path string) error {
	content, err := yaml.Marshal(defaultConfigFile())
	if err != nil {
		return err
	}

	// #nosec G304 - path is the fixed config location
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s already exists", path)
		}

		return err
	}

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
