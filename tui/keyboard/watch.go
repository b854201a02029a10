package keyboard

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/stroke/config"
	"github.com/grovetools/stroke/tui/theme"
	"github.com/sirupsen/logrus"
)

// WatchTheme reloads path on change and sends the resulting theme, or the
// load error, through send (usually tea.Program.Send).
func WatchTheme(path string, logger *logrus.Entry, send func(tea.Msg)) (*config.Watcher, error) {
	return config.Watch(path, config.DefaultDebounce, logger, func(cfg *config.Config, err error) {
		if err != nil {
			send(ConfigErrorMsg{Err: err})
			return
		}
		send(ThemeMsg{Theme: theme.NewThemeWithName(cfg.TUI.Theme)})
	})
}
