package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/stroke/cli"
	"github.com/grovetools/stroke/pkg/paths"
	"github.com/grovetools/stroke/tui/theme"
	"github.com/spf13/cobra"
)

// PathsOutput lists where stroke reads configuration and writes state.
type PathsOutput struct {
	ConfigDir    string `json:"config_dir"`
	ConfigFile   string `json:"config_file"`
	ActiveConfig string `json:"active_config,omitempty"`
	StateDir     string `json:"state_dir"`
	LogDir       string `json:"log_dir"`
}

func NewPathsCmd() *cobra.Command {
	cmd := cli.NewStandardCommand("paths", "Print the paths used by stroke")
	cmd.Long = `Print the directories stroke uses.

STROKE_HOME relocates every path below one root; otherwise the XDG base
directory variables apply. active_config is the stroke.yml the current
directory resolves to, if any.`
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts := cli.GetOptions(cmd)
		active, err := cli.InitConfig(opts.ConfigFile)
		if err != nil {
			return err
		}
		out := PathsOutput{
			ConfigDir:    paths.ConfigDir(),
			ConfigFile:   paths.GlobalConfigFile(),
			ActiveConfig: active,
			StateDir:     paths.StateDir(),
			LogDir:       paths.LogDir(),
		}

		w := cmd.OutOrStdout()
		if opts.JSONOutput {
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding paths: %w", err)
			}
			fmt.Fprintln(w, string(data))
			return nil
		}

		if active == "" {
			active = "(none, using defaults)"
		}
		t := theme.DefaultTheme
		for _, row := range [][2]string{
			{"config dir", out.ConfigDir},
			{"config file", out.ConfigFile},
			{"active config", active},
			{"state dir", out.StateDir},
			{"log dir", out.LogDir},
		} {
			fmt.Fprintf(w, "%-14s %s\n", t.Muted.Render(row[0]), row[1])
		}
		return nil
	}
	return cmd
}
