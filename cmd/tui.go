package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/stroke/cli"
	"github.com/grovetools/stroke/dispatch"
	"github.com/grovetools/stroke/logging"
	"github.com/grovetools/stroke/tui/keyboard"
	"github.com/grovetools/stroke/tui/theme"
	"github.com/spf13/cobra"
)

// NewTUICmd creates the `tui` command
func NewTUICmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"tui",
		"Type with strokes in an interactive terminal keyboard",
	)
	cmd.Long = `Launch the interactive keyboard. Press a key for the start zone, then one for
the end zone: q w e / a s d / z x c are the nine inner zones and the arrow
keys leave the key in that direction. Tab cycles primary layouts.

The typed text is printed when the keyboard exits. Theme changes in the
config file apply while the keyboard is running.`
	cmd.Args = cobra.NoArgs
	cmd.Flags().String("start", "", "Layout the session starts on")
	cmd.Flags().String("theme", "", "Theme: dark, light, or terminal")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, cfgPath, err := cli.LoadConfig(cmd)
		if err != nil {
			return err
		}
		b, err := loadBank()
		if err != nil {
			return err
		}
		start, err := startLayout(cmd)
		if err != nil {
			return err
		}

		buf := &keyboard.Buffer{}
		d, err := dispatch.New(b, buf, dispatch.WithStartLayout(start))
		if err != nil {
			return err
		}

		themeName := cfg.TUI.Theme
		if flagTheme, _ := cmd.Flags().GetString("theme"); flagTheme != "" {
			themeName = flagTheme
		}
		keys := keyboard.DefaultKeyMap
		keyboard.ApplyOverrides(&keys, cfg.TUI.Keys)
		m := keyboard.New(d, buf,
			keyboard.WithTheme(theme.NewThemeWithName(themeName)),
			keyboard.WithHelp(cfg.TUI.HelpVisible()),
			keyboard.WithKeyMap(keys),
		)

		restore := cli.SilenceLogs(nil)
		defer restore()

		p := tea.NewProgram(m, tea.WithAltScreen())
		if cfgPath != "" {
			w, err := keyboard.WatchTheme(cfgPath, logging.NewLogger("tui"), p.Send)
			if err != nil {
				logging.NewLogger("tui").WithError(err).Warn("Config watcher disabled")
			} else {
				defer w.Close()
			}
		}

		final, err := p.Run()
		if err != nil {
			return fmt.Errorf("error running keyboard: %w", err)
		}
		if fm, ok := final.(keyboard.Model); ok && fm.Text() != "" {
			fmt.Fprintln(cmd.OutOrStdout(), fm.Text())
		}
		return nil
	}

	return cmd
}
