package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grovetools/stroke/errors"
	"github.com/grovetools/stroke/layout"
	"github.com/grovetools/stroke/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args in an empty working directory so
// no stray stroke.yml is picked up.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLayoutsJSONListsPrimaryFirst(t *testing.T) {
	out, err := run(t, "", "layouts", "--json")
	require.NoError(t, err)

	var summaries []server.LayoutInfo
	require.NoError(t, json.Unmarshal([]byte(out), &summaries))
	require.Len(t, summaries, 4)

	assert.Equal(t, "latin", summaries[0].Name)
	assert.True(t, summaries[0].Default)
	assert.Equal(t, "cyrillic", summaries[1].Name)
	for _, s := range summaries[2:] {
		assert.Equal(t, layout.Secondary, s.Category, s.Name)
		assert.False(t, s.Default)
	}
}

func TestShowRendersLayout(t *testing.T) {
	out, err := run(t, "", "show", "latin", "--shift", "on")
	require.NoError(t, err)
	assert.Contains(t, out, "Latin")
	assert.Contains(t, out, "shift on")
	assert.Contains(t, out, "A")
}

func TestShowYAMLDump(t *testing.T) {
	out, err := run(t, "", "show", "diacritic", "--yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: diacritic")
	assert.Contains(t, out, "strokes:")
}

func TestShowRejectsBadInput(t *testing.T) {
	_, err := run(t, "", "show", "klingon")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownLayout))

	_, err = run(t, "", "show", "latin", "--shift", "sideways")
	require.Error(t, err)
}

func TestReplayFromStdin(t *testing.T) {
	script := "# shift, then h i\nlt lt\nmc mb\nmc rt\n"
	out, err := run(t, script, "replay")
	require.NoError(t, err)
	assert.Equal(t, "Hi\n", out)
}

func TestReplayJSON(t *testing.T) {
	out, err := run(t, "lt lt\nlt lt\nmc lt\nmc mt\n", "replay", "--json")
	require.NoError(t, err)

	var res ReplayResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "AO", res.Text)
	assert.Equal(t, 4, res.Strokes)
	assert.Equal(t, "latin", res.Layout)
	assert.Equal(t, layout.ShiftLock, res.Shift)
}

func TestReplayFileWithStartLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cyr.strokes")
	require.NoError(t, os.WriteFile(path, []byte("mc mc\n"), 0644))

	latinOut, err := run(t, "", "replay", path)
	require.NoError(t, err)
	cyrOut, err := run(t, "", "replay", "--start", "cyrillic", path)
	require.NoError(t, err)
	assert.NotEqual(t, latinOut, cyrOut)
}

func TestReplayReportsScriptLine(t *testing.T) {
	_, err := run(t, "mc mc\nmc nowhere\n", "replay")
	require.Error(t, err)
	se, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeScriptSyntax, se.Code)
	assert.Equal(t, 2, se.Details["line"])
}

func TestConfigSchema(t *testing.T) {
	out, err := run(t, "", "config", "schema")
	require.NoError(t, err)

	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	assert.Equal(t, "Stroke Configuration", schema["title"])
}

func TestConfigValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yml")
	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(good, []byte("tui:\n  theme: light\n"), 0644))
	require.NoError(t, os.WriteFile(bad, []byte("tui:\n  theme: neon\n"), 0644))

	out, err := run(t, "", "config", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	_, err = run(t, "", "config", "validate", bad)
	require.Error(t, err)
}

func TestVersionJSON(t *testing.T) {
	out, err := run(t, "", "version", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"version": "dev"`)
}

func TestPathsHonoursStrokeHome(t *testing.T) {
	root := t.TempDir()
	t.Setenv("STROKE_HOME", root)

	out, err := run(t, "", "paths", "--json")
	require.NoError(t, err)

	var p PathsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, filepath.Join(root, "config"), p.ConfigDir)
	assert.Equal(t, filepath.Join(root, "config", "stroke.yml"), p.ConfigFile)
	assert.Empty(t, p.ActiveConfig)

	out, err = run(t, "", "paths")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(root, "state", "logs"))
	assert.Contains(t, out, "using defaults")
}

func TestConfigShowUsesProjectFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stroke.yml"), []byte("session:\n  start_layout: cyrillic\n"), 0644))
	chdir(t, dir)

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"config", "show"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "# Source: ")
	assert.Contains(t, out.String(), "start_layout: cyrillic")
	assert.Contains(t, out.String(), "listen: 127.0.0.1:7373")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
