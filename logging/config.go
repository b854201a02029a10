package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Config is the `logging` extension of stroke.yml.
type Config struct {
	// Level is overridden by STROKE_LOG_LEVEL.
	Level string `yaml:"level" toml:"level" json:"level,omitempty"`
	// ReportCaller is also switched on by STROKE_LOG_CALLER=true.
	ReportCaller bool           `yaml:"report_caller" toml:"report_caller" json:"report_caller,omitempty"`
	File         FileSinkConfig `yaml:"file" toml:"file" json:"file,omitempty"`
	Format       FormatConfig   `yaml:"format" toml:"format" json:"format,omitempty"`
}

// FileSinkConfig enables an append-only log file. An empty Path means
// <state dir>/logs/<component>-<date>.log.
type FileSinkConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled" json:"enabled,omitempty"`
	Path    string `yaml:"path" toml:"path" json:"path,omitempty"`
}

// FormatConfig selects how entries are rendered.
type FormatConfig struct {
	// Preset is "default", "simple" or "json".
	Preset           string `yaml:"preset" toml:"preset" json:"preset,omitempty"`
	DisableTimestamp bool   `yaml:"disable_timestamp" toml:"disable_timestamp" json:"disable_timestamp,omitempty"`
	DisableComponent bool   `yaml:"disable_component" toml:"disable_component" json:"disable_component,omitempty"`
	// StructuredToStderr is "auto", "always" or "never".
	StructuredToStderr string `yaml:"structured_to_stderr" toml:"structured_to_stderr" json:"structured_to_stderr,omitempty"`
}

// level resolves the effective level, falling back to info.
func (c Config) level() logrus.Level {
	name := os.Getenv("STROKE_LOG_LEVEL")
	if name == "" {
		name = c.Level
	}
	if name == "" {
		return logrus.InfoLevel
	}
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

func (c Config) reportCaller() bool {
	return c.ReportCaller || os.Getenv("STROKE_LOG_CALLER") == "true"
}

// formatter builds the logrus formatter for the configured preset.
func (c Config) formatter() logrus.Formatter {
	switch c.Format.Preset {
	case "json":
		return &logrus.JSONFormatter{}
	case "simple":
		return &TextFormatter{Config: FormatConfig{DisableTimestamp: true, DisableComponent: true}}
	default:
		return &TextFormatter{Config: c.Format}
	}
}
