package model

// ConfigSource names where report settings come from: a config file path, or
// Disabled to run on defaults only.
type ConfigSource struct {
	File     Path
	Disabled bool
	// Explicit is set when the user named the file; a missing explicit file is
	// an error while a missing default one is not.
	Explicit bool
}

// DisabledConfig is the sentinel that skips reading any config file.
var DisabledConfig = ConfigSource{Disabled: true}

// ConfigFile returns a ConfigSource for an explicitly named file.
func ConfigFile(path Path) ConfigSource {
	return ConfigSource{File: path, Explicit: true}
}

// ReportConfig holds the settings that shape a report.
type ReportConfig struct {
	Include         []string `yaml:"include" mapstructure:"include"`
	Omit            []string `yaml:"omit" mapstructure:"omit"`
	IgnoreErrors    bool     `yaml:"ignore_errors" mapstructure:"ignore_errors"`
	DisableWarnings []string `yaml:"disable_warnings" mapstructure:"disable_warnings"`
	Root            Path     `yaml:"-" mapstructure:"-"`
}
