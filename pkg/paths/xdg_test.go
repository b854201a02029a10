package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrokeHomeWins(t *testing.T) {
	root := t.TempDir()
	t.Setenv("STROKE_HOME", root)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	assert.Equal(t, filepath.Join(root, "config"), ConfigDir())
	assert.Equal(t, filepath.Join(root, "state"), StateDir())
	assert.Equal(t, filepath.Join(root, "config", "stroke.yml"), GlobalConfigFile())
	assert.Equal(t, filepath.Join(root, "state", "logs"), LogDir())
}

func TestXDGDirs(t *testing.T) {
	cfg := t.TempDir()
	state := t.TempDir()
	t.Setenv("STROKE_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", cfg)
	t.Setenv("XDG_STATE_HOME", state)

	assert.Equal(t, filepath.Join(cfg, "stroke"), ConfigDir())
	assert.Equal(t, filepath.Join(state, "stroke"), StateDir())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	assert.Equal(t, filepath.Join(home, "logs/a.log"), ExpandHome("~/logs/a.log"))
	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, "~user/x", ExpandHome("~user/x"))
	assert.Equal(t, "/abs", ExpandHome("/abs"))
}
