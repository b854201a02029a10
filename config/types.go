package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

//go:generate go run ../tools/schema-generator/

// Theme names accepted by tui.theme. An empty value picks dark or light from
// the terminal background.
const (
	ThemeDark     = "dark"
	ThemeLight    = "light"
	ThemeTerminal = "terminal"
)

// Defaults applied by SetDefaults.
const (
	DefaultVersion      = "1.0"
	DefaultServerListen = "127.0.0.1:7373"
	DefaultServerPath   = "/strokes"
)

// SessionConfig controls how a new input session starts.
type SessionConfig struct {
	StartLayout string `yaml:"start_layout,omitempty" toml:"start_layout,omitempty" json:"start_layout,omitempty" jsonschema:"description=Name of the layout a new session starts on (default: the bank default)"`
}

// TUIConfig holds settings for the interactive keyboard.
type TUIConfig struct {
	Theme    string `yaml:"theme,omitempty" toml:"theme,omitempty" json:"theme,omitempty" jsonschema:"description=Colour theme for the keyboard (unset detects from the terminal background),enum=dark,enum=light,enum=terminal"`
	ShowHelp *bool  `yaml:"show_help,omitempty" toml:"show_help,omitempty" json:"show_help,omitempty" jsonschema:"description=Show the key help footer (default: true)"`
	// Keys rebinds keyboard controls, keyed by action (next_layout, quit, ...).
	Keys map[string][]string `yaml:"keys,omitempty" toml:"keys,omitempty" json:"keys,omitempty" jsonschema:"description=Key overrides per control action (cancel/next_layout/prev_layout/clear/help/quit)"`
}

// HelpVisible reports whether the help footer should be shown.
func (t *TUIConfig) HelpVisible() bool {
	if t == nil || t.ShowHelp == nil {
		return true
	}
	return *t.ShowHelp
}

// ServerConfig configures the websocket stroke endpoint.
type ServerConfig struct {
	Listen string `yaml:"listen,omitempty" toml:"listen,omitempty" json:"listen,omitempty" jsonschema:"description=host:port the server listens on (default: 127.0.0.1:7373)"`
	Path   string `yaml:"path,omitempty" toml:"path,omitempty" json:"path,omitempty" jsonschema:"description=HTTP path upgraded to a websocket (default: /strokes)"`
}

// Config is the root of stroke.yml.
type Config struct {
	Version string         `yaml:"version,omitempty" toml:"version,omitempty" json:"version,omitempty" jsonschema:"description=Configuration version (e.g. '1.0')"`
	Session *SessionConfig `yaml:"session,omitempty" toml:"session,omitempty" json:"session,omitempty" jsonschema:"description=Session start settings"`
	TUI     *TUIConfig     `yaml:"tui,omitempty" toml:"tui,omitempty" json:"tui,omitempty" jsonschema:"description=Interactive keyboard settings"`
	Server  *ServerConfig  `yaml:"server,omitempty" toml:"server,omitempty" json:"server,omitempty" jsonschema:"description=Websocket server settings"`

	// Extensions captures all other top-level keys, e.g. logging.
	Extensions map[string]interface{} `yaml:",inline" toml:"-" json:"-" jsonschema:"-"`
}

// SetDefaults fills unset sections with default values.
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	if c.Session == nil {
		c.Session = &SessionConfig{}
	}
	if c.TUI == nil {
		c.TUI = &TUIConfig{}
	}
	if c.TUI.ShowHelp == nil {
		show := true
		c.TUI.ShowHelp = &show
	}
	if c.Server == nil {
		c.Server = &ServerConfig{}
	}
	if c.Server.Listen == "" {
		c.Server.Listen = DefaultServerListen
	}
	if c.Server.Path == "" {
		c.Server.Path = DefaultServerPath
	}
}

// StartLayout returns the configured start layout, or "" when unset.
func (c *Config) StartLayout() string {
	if c == nil || c.Session == nil {
		return ""
	}
	return c.Session.StartLayout
}

// UnmarshalExtension decodes a specific extension's configuration from the
// loaded stroke.yml into the provided target struct. The target must be a pointer.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// A missing key leaves the target zero-valued.
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
