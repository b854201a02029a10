package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "stroke.yml", "tui:\n  theme: dark\n")

	changes := make(chan *Config, 4)
	w, err := Watch(path, 20*time.Millisecond, nil, func(cfg *Config, err error) {
		if err == nil {
			changes <- cfg
		}
	})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("tui:\n  theme: light\n"), 0o644))

	select {
	case cfg := <-changes:
		assert.Equal(t, ThemeLight, cfg.TUI.Theme)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestWatchReportsInvalidContents(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "stroke.yml", "tui:\n  theme: dark\n")

	errs := make(chan error, 4)
	w, err := Watch(path, 20*time.Millisecond, nil, func(cfg *Config, err error) {
		if err != nil {
			errs <- err
		}
	})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("tui:\n  theme: neon\n"), 0o644))

	select {
	case err := <-errs:
		assert.Error(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("no error reported for invalid config")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := writeFile(t, t.TempDir(), "stroke.yml", "")
	w, err := Watch(path, 0, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, path, w.Path())
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
