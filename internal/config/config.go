// Package config handles tool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Fixtures FixturesConfig `yaml:"fixtures"`
	Export   ExportConfig   `yaml:"export"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// FixturesConfig holds fixture generator settings.
type FixturesConfig struct {
	Dir string `yaml:"dir"` // root directory for default fixture paths
}

// ExportConfig holds results exporter settings.
type ExportConfig struct {
	Dir string `yaml:"dir"` // empty means next to the input file
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Fixtures: FixturesConfig{
			Dir: "fixtures",
		},
		Export: ExportConfig{
			Dir: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Overrides carries command-line values applied over the file settings.
// Empty fields leave the loaded value untouched.
type Overrides struct {
	FixturesDir string
	ExportDir   string
	LogLevel    string
	LogFile     string
}

// Apply overlays non-empty override values onto the config. Flags hold the
// highest priority, above the config file and the built-in defaults.
func (c *Config) Apply(o Overrides) {
	if o.FixturesDir != "" {
		c.Fixtures.Dir = o.FixturesDir
	}
	if o.ExportDir != "" {
		c.Export.Dir = o.ExportDir
	}
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if o.LogFile != "" {
		c.Logging.LogFile = o.LogFile
	}
}
