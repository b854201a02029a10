package cmd

import (
	"fmt"

	"github.com/grovetools/stroke/cli"
	"github.com/grovetools/stroke/layout"
	"github.com/grovetools/stroke/tui/keyboard"
	"github.com/grovetools/stroke/tui/theme"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// shiftValue adapts layout.ShiftState to a pflag.Value.
type shiftValue struct {
	state *layout.ShiftState
}

func (v shiftValue) String() string {
	if v.state == nil {
		return layout.ShiftOff.String()
	}
	return v.state.String()
}

func (v shiftValue) Set(s string) error {
	parsed, err := layout.ParseShiftState(s)
	if err != nil {
		return err
	}
	*v.state = parsed
	return nil
}

func (v shiftValue) Type() string { return "shift" }

// NewShowCmd creates the `show` command
func NewShowCmd() *cobra.Command {
	var shift layout.ShiftState

	cmd := cli.NewStandardCommand(
		"show <layout>",
		"Render a layout's labels as a keyboard grid",
	)
	cmd.Long = `Render the labels of a layout the way the keyboard shows them: one 3x3 face
per start zone, each cell labelled with the stroke that ends there.

Examples:
  stroke show latin
  stroke show latin --shift lock
  stroke show diacritic --yaml`
	cmd.Args = cobra.ExactArgs(1)
	cmd.Flags().Var(shiftValue{&shift}, "shift", "Shift state: off, on, or lock")
	cmd.Flags().Bool("yaml", false, "Dump every registered stroke as YAML")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		b, err := loadBank()
		if err != nil {
			return err
		}
		l, err := b.Layout(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if dump, _ := cmd.Flags().GetBool("yaml"); dump {
			data, err := yaml.Marshal(struct {
				Layout  layout.Meta     `yaml:"layout"`
				Strokes []layout.Stroke `yaml:"strokes"`
			}{l.Meta(), l.Strokes()})
			if err != nil {
				return fmt.Errorf("failed to marshal layout to YAML: %w", err)
			}
			fmt.Fprint(out, string(data))
			return nil
		}

		t := theme.DefaultTheme
		fmt.Fprintln(out, theme.RenderHeader(fmt.Sprintf("%s · shift %s", l.Title(), shift)))
		fmt.Fprintln(out, keyboard.RenderGrid(l, shift, t, layout.Center, false))
		return nil
	}

	return cmd
}
