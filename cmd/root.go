package cmd

import (
	"github.com/grovetools/stroke/bank"
	"github.com/grovetools/stroke/cli"
	"github.com/grovetools/stroke/pkg/profiling"
	"github.com/grovetools/stroke/version"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the stroke command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		"stroke",
		"Gesture keyboard engine: layouts, stroke dispatch and a terminal keyboard",
	)
	rootCmd.Long = `stroke resolves strokes, a start zone and an end zone on a 3x3 grid, into
text, key codes and layout switches, using a bank of compiled-in layouts.`
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	profiler := profiling.NewCobraProfiler(nil)
	profiler.AddFlags(rootCmd)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cli.ApplyVerbosity(cmd)
		return profiler.PreRun(cmd, args)
	}
	rootCmd.PersistentPostRun = profiler.PostRun

	info := version.GetInfo()
	cli.SetVersionTemplate(rootCmd, info)

	rootCmd.AddCommand(NewLayoutsCmd())
	rootCmd.AddCommand(NewShowCmd())
	rootCmd.AddCommand(NewReplayCmd())
	rootCmd.AddCommand(NewTUICmd())
	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewPathsCmd())
	rootCmd.AddCommand(cli.NewVersionCommand("stroke", info))

	cli.ApplyStyledHelpRecursive(rootCmd)
	return rootCmd
}

// loadBank builds the compiled-in layout bank.
func loadBank() (*bank.Bank, error) {
	defer profiling.Start("build layouts").Stop()
	return bank.Default()
}

// startLayout picks the --start flag when set, then the configured
// session.start_layout.
func startLayout(cmd *cobra.Command) (string, error) {
	if f := cmd.Flags().Lookup("start"); f != nil && f.Changed {
		return f.Value.String(), nil
	}
	cfg, _, err := cli.LoadConfig(cmd)
	if err != nil {
		return "", err
	}
	return cfg.StartLayout(), nil
}
