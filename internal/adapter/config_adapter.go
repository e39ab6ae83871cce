package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	m "golcov.dev/pkg/golcov/internal/model"
)

const (
	// ConfigEnvPrefix prefixes environment overrides, e.g. GOLCOV_REPORT_OMIT.
	ConfigEnvPrefix = "GOLCOV"

	reportIncludeKey         = "report.include"
	reportOmitKey            = "report.omit"
	reportIgnoreErrorsKey    = "report.ignore_errors"
	reportDisableWarningsKey = "report.disable_warnings"
	pathsRootKey             = "paths.root"
)

// ConfigAdapter loads report settings from a config source.
type ConfigAdapter interface {
	Load(source m.ConfigSource) (m.ReportConfig, error)
}

// ViperConfigAdapter reads yaml config files with a private viper instance so
// loading report settings never disturbs the CLI's global configuration.
type ViperConfigAdapter struct{}

// NewViperConfigAdapter constructs a ViperConfigAdapter.
func NewViperConfigAdapter() *ViperConfigAdapter {
	return &ViperConfigAdapter{}
}

// Load returns the report settings named by source. A Disabled source yields
// defaults plus environment overrides. A missing file is only an error when it
// was named explicitly.
func (a *ViperConfigAdapter) Load(source m.ConfigSource) (m.ReportConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(ConfigEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(reportIncludeKey, []string{})
	v.SetDefault(reportOmitKey, []string{})
	v.SetDefault(reportIgnoreErrorsKey, false)
	v.SetDefault(reportDisableWarningsKey, []string{})
	v.SetDefault(pathsRootKey, "")

	if !source.Disabled && source.File != "" {
		if err := readConfigFile(v, source); err != nil {
			return m.ReportConfig{}, err
		}
	}

	return m.ReportConfig{
		Include:         v.GetStringSlice(reportIncludeKey),
		Omit:            v.GetStringSlice(reportOmitKey),
		IgnoreErrors:    v.GetBool(reportIgnoreErrorsKey),
		DisableWarnings: v.GetStringSlice(reportDisableWarningsKey),
		Root:            m.Path(v.GetString(pathsRootKey)),
	}, nil
}

func readConfigFile(v *viper.Viper, source m.ConfigSource) error {
	path := string(source.File)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !source.Explicit {
			return nil
		}

		return fmt.Errorf("config file %s: %w", path, err)
	}

	v.SetConfigFile(path)

	if filepath.Ext(path) == "" {
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}

	return nil
}
