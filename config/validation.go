package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/grovetools/stroke/errors"
)

// Validate checks semantic constraints the schema cannot express.
func (c *Config) Validate() error {
	if c.TUI != nil {
		switch c.TUI.Theme {
		case "", ThemeDark, ThemeLight, ThemeTerminal:
		default:
			return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("unknown tui.theme %q", c.TUI.Theme)).
				WithDetail("theme", c.TUI.Theme)
		}
	}

	if c.Session != nil && strings.TrimSpace(c.Session.StartLayout) != c.Session.StartLayout {
		return errors.New(errors.ErrCodeConfigValidation, "session.start_layout must not contain surrounding whitespace").
			WithDetail("start_layout", c.Session.StartLayout)
	}

	if c.Server != nil {
		if c.Server.Path != "" && !strings.HasPrefix(c.Server.Path, "/") {
			return errors.New(errors.ErrCodeConfigValidation, "server.path must start with '/'").
				WithDetail("path", c.Server.Path)
		}
		if c.Server.Listen != "" {
			if _, _, err := net.SplitHostPort(c.Server.Listen); err != nil {
				return errors.Wrap(err, errors.ErrCodeConfigValidation, "server.listen must be host:port").
					WithDetail("listen", c.Server.Listen)
			}
		}
	}

	return nil
}
