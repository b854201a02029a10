// Package paths resolves the directories stroke reads and writes.
//
// Resolution order:
// 1. STROKE_HOME (portable root) → $STROKE_HOME/{config,state}
// 2. XDG env vars → $XDG_*_HOME/stroke
// 3. Platform defaults → ~/.config/stroke, ~/.local/state/stroke
package paths

import (
	"os"
	"path/filepath"
)

const appName = "stroke"

// xdgBase returns $xdgEnv, or the fallback below the home directory.
func xdgBase(xdgEnv string, fallback ...string) string {
	if dir := os.Getenv(xdgEnv); dir != "" {
		return dir
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(append([]string{homeDir}, fallback...)...)
	}
	return ""
}

// ConfigDir returns the directory holding the global stroke.yml.
func ConfigDir() string {
	if root := os.Getenv("STROKE_HOME"); root != "" {
		return filepath.Join(root, "config")
	}
	base := xdgBase("XDG_CONFIG_HOME", ".config")
	if base == "" {
		return ""
	}
	return filepath.Join(base, appName)
}

// StateDir returns the directory for runtime state such as log files.
func StateDir() string {
	if root := os.Getenv("STROKE_HOME"); root != "" {
		return filepath.Join(root, "state")
	}
	base := xdgBase("XDG_STATE_HOME", ".local", "state")
	if base == "" {
		return ""
	}
	return filepath.Join(base, appName)
}

// GlobalConfigFile returns the path of the global stroke.yml, or "" when no
// home directory can be determined.
func GlobalConfigFile() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "stroke.yml")
}

// LogDir returns the directory of file log sinks.
func LogDir() string {
	dir := StateDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "logs")
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || (len(path) > 1 && path[0] == '~' && (path[1] == '/' || path[1] == filepath.Separator)) {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
