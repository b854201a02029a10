package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/stroke/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromBytesYAML(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`
version: "1.0"
session:
  start_layout: cyrillic
tui:
  theme: light
  show_help: false
server:
  listen: "0.0.0.0:9000"
`), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "cyrillic", cfg.StartLayout())
	assert.Equal(t, ThemeLight, cfg.TUI.Theme)
	assert.False(t, cfg.TUI.HelpVisible())
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Listen)
	assert.Equal(t, DefaultServerPath, cfg.Server.Path)
}

func TestLoadFromBytesDefaults(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(``), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, DefaultVersion, cfg.Version)
	assert.Equal(t, "", cfg.StartLayout())
	assert.True(t, cfg.TUI.HelpVisible())
	assert.Equal(t, DefaultServerListen, cfg.Server.Listen)
	assert.Equal(t, DefaultServerPath, cfg.Server.Path)
}

func TestLoadFromBytesTOML(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`
version = "1.0"

[session]
start_layout = "latin"

[server]
path = "/ws"

[logging]
level = "debug"
`), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, "latin", cfg.StartLayout())
	assert.Equal(t, "/ws", cfg.Server.Path)

	type logCfg struct {
		Level string `yaml:"level"`
	}
	var lc logCfg
	require.NoError(t, cfg.UnmarshalExtension("logging", &lc))
	assert.Equal(t, "debug", lc.Level)
	assert.NotContains(t, cfg.Extensions, "server")
}

func TestExtensions(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`
logging:
  level: warn
  report_caller: true
  file:
    enabled: true
    path: /tmp/stroke.log
`), FormatYAML)
	require.NoError(t, err)

	type fileSink struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	}
	type logCfg struct {
		Level        string   `yaml:"level"`
		ReportCaller bool     `yaml:"report_caller"`
		File         fileSink `yaml:"file"`
	}

	var lc logCfg
	require.NoError(t, cfg.UnmarshalExtension("logging", &lc))
	assert.Equal(t, "warn", lc.Level)
	assert.True(t, lc.ReportCaller)
	assert.True(t, lc.File.Enabled)
	assert.Equal(t, "/tmp/stroke.log", lc.File.Path)

	var missing logCfg
	require.NoError(t, cfg.UnmarshalExtension("absent", &missing))
	assert.Empty(t, missing.Level)
}

func TestLoadFromBytesErrors(t *testing.T) {
	_, err := LoadFromBytes([]byte("tui: [unclosed"), FormatYAML)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigInvalid))

	_, err = LoadFromBytes([]byte("tui:\n  theme: sepia\n"), FormatYAML)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigValidation))

	_, err = LoadFromBytes([]byte("server:\n  path: strokes\n"), FormatYAML)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigValidation))

	_, err = LoadFromBytes([]byte("server:\n  listen: nope\n"), FormatYAML)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigValidation))

	_, err = LoadFromBytes([]byte("version: 1"), "ini")
	assert.True(t, errors.Is(err, errors.ErrCodeConfigInvalid))
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("STROKE_TEST_LAYOUT", "cyrillic")

	cfg, err := LoadFromBytes([]byte(`
session:
  start_layout: ${STROKE_TEST_LAYOUT}
server:
  listen: ${STROKE_TEST_UNSET:-127.0.0.1:8080}
`), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "cyrillic", cfg.StartLayout())
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Listen)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "stroke.yml"))
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
}

func TestFindConfigFileWalksUp(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := t.TempDir()
	want := writeFile(t, root, "stroke.yml", "version: \"1.0\"\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := FindConfigFile(nested)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindConfigFileFallsBackToXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "stroke"), 0o755))
	want := writeFile(t, filepath.Join(xdg, "stroke"), "stroke.yml", "tui:\n  theme: dark\n")

	got, err := FindConfigFile(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadFromMergesLayers(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "stroke"), 0o755))
	writeFile(t, filepath.Join(xdg, "stroke"), "stroke.yml", `
tui:
  theme: light
logging:
  level: info
  report_caller: true
`)

	project := t.TempDir()
	writeFile(t, project, "stroke.yml", `
session:
  start_layout: cyrillic
logging:
  level: debug
`)
	writeFile(t, project, "stroke.override.yml", `
server:
  listen: "127.0.0.1:9999"
`)

	cfg, err := LoadFrom(project)
	require.NoError(t, err)

	assert.Equal(t, ThemeLight, cfg.TUI.Theme)
	assert.Equal(t, "cyrillic", cfg.StartLayout())
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Listen)

	logging, ok := cfg.Extensions["logging"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "debug", logging["level"])
	assert.Equal(t, true, logging["report_caller"])
}

func TestMergeConfigs(t *testing.T) {
	hide := false
	base := &Config{
		Version: "1.0",
		TUI:     &TUIConfig{Theme: ThemeDark},
		Server:  &ServerConfig{Listen: "127.0.0.1:1", Path: "/a"},
	}
	override := &Config{
		TUI:    &TUIConfig{ShowHelp: &hide},
		Server: &ServerConfig{Path: "/b"},
	}

	merged := mergeConfigs(base, override)
	assert.Equal(t, "1.0", merged.Version)
	assert.Equal(t, ThemeDark, merged.TUI.Theme)
	assert.False(t, merged.TUI.HelpVisible())
	assert.Equal(t, "127.0.0.1:1", merged.Server.Listen)
	assert.Equal(t, "/b", merged.Server.Path)
	assert.Equal(t, "/a", base.Server.Path, "base must not be mutated")
	assert.Nil(t, merged.Session)
}

func TestMergeTUIKeys(t *testing.T) {
	base := &Config{TUI: &TUIConfig{Keys: map[string][]string{"quit": {"ctrl+q"}, "clear": {"ctrl+k"}}}}
	override := &Config{TUI: &TUIConfig{Keys: map[string][]string{"quit": {"ctrl+d"}}}}

	merged := mergeConfigs(base, override)
	assert.Equal(t, []string{"ctrl+d"}, merged.TUI.Keys["quit"])
	assert.Equal(t, []string{"ctrl+k"}, merged.TUI.Keys["clear"])
	assert.Equal(t, []string{"ctrl+q"}, base.TUI.Keys["quit"])
}

func TestLoadTUIKeys(t *testing.T) {
	cfg, err := LoadFromBytes([]byte("tui:\n  keys:\n    next_layout: [ctrl+n, ctrl+j]\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []string{"ctrl+n", "ctrl+j"}, cfg.TUI.Keys["next_layout"])
}
