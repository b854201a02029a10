package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grovetools/stroke/cli"
	"github.com/grovetools/stroke/server"
	"github.com/grovetools/stroke/tui/theme"
	"github.com/spf13/cobra"
)

// NewLayoutsCmd creates the `layouts` command
func NewLayoutsCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"layouts",
		"List the registered layouts",
	)
	cmd.Long = `List every layout in the bank, primary layouts first, in the order the
layout switch strokes cycle through them. The JSON form matches the server's
/api/layouts response.

Examples:
  stroke layouts
  stroke layouts --json`
	cmd.Args = cobra.NoArgs

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		b, err := loadBank()
		if err != nil {
			return err
		}
		infos := server.DescribeLayouts(b)

		out := cmd.OutOrStdout()
		if cli.GetOptions(cmd).JSONOutput {
			data, err := json.MarshalIndent(infos, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal layouts to JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		t := theme.DefaultTheme
		nameWidth := 0
		for _, info := range infos {
			if len(info.Name) > nameWidth {
				nameWidth = len(info.Name)
			}
		}
		for _, info := range infos {
			marker := " "
			if info.Default {
				marker = "*"
			}
			padding := strings.Repeat(" ", nameWidth-len(info.Name))
			fmt.Fprintf(out, "%s %s%s  %-9s  %s %s\n",
				marker,
				t.Bold.Render(info.Name), padding,
				info.Category,
				info.Title,
				t.Muted.Render(fmt.Sprintf("[%s, %d strokes]", info.PrimaryLabel, info.Strokes)),
			)
		}
		return nil
	}

	return cmd
}
