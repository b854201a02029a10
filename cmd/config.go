package cmd

import (
	"fmt"

	"github.com/grovetools/stroke/cli"
	"github.com/grovetools/stroke/config"
	"github.com/grovetools/stroke/logging"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCmd creates the `config` command
func NewConfigCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"config",
		"Inspect the stroke configuration",
	)
	cmd.AddCommand(newConfigSchemaCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigValidateCmd())
	return cmd
}

func newConfigSchemaCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"schema",
		"Print the JSON schema of stroke.yml",
	)
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"show",
		"Print the merged configuration for the current directory",
	)
	cmd.Long = `Print the configuration after the global file, the project file and any
stroke.override.yml have been merged and defaults applied.`
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, path, err := cli.LoadConfig(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if path != "" {
			fmt.Fprintf(out, "# Source: %s\n", path)
		} else {
			fmt.Fprintln(out, "# No config file found, showing defaults")
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Fprint(out, string(data))
		return nil
	}
	return cmd
}

func newConfigValidateCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"validate [file]",
		"Check a config file against the schema",
	)
	cmd.Args = cobra.MaximumNArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		path := cli.GetOptions(cmd).ConfigFile
		if len(args) == 1 {
			path = args[0]
		}
		path, err := cli.InitConfig(path)
		if err != nil {
			return err
		}
		if path == "" {
			return fmt.Errorf("no config file found")
		}
		if _, err := config.Load(path); err != nil {
			return err
		}
		logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout()).Success(fmt.Sprintf("%s is valid", path))
		return nil
	}
	return cmd
}
