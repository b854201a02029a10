package cli

import (
	"os"

	"github.com/grovetools/stroke/config"
	"github.com/grovetools/stroke/errors"
	"github.com/spf13/cobra"
)

// CommandOptions holds common options for stroke commands
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a new command with the standard stroke flags
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to stroke.yml config file")

	SetStyledHelp(cmd)

	return cmd
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}

// InitConfig resolves the configuration file path. An empty path with a nil
// error means no file was found, which is fine for every command.
func InitConfig(configFile string) (string, error) {
	if configFile != "" {
		return configFile, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	found, err := config.FindConfigFile(cwd)
	if err != nil {
		return "", nil
	}
	return found, nil
}

// LoadConfig loads the configuration for a command. An explicit --config must
// exist; otherwise a missing file yields the defaults. The returned path is
// empty when no file was used.
func LoadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	opts := GetOptions(cmd)
	if opts.ConfigFile != "" {
		cfg, err := config.Load(opts.ConfigFile)
		if err != nil {
			return nil, "", err
		}
		return cfg, opts.ConfigFile, nil
	}

	path, err := InitConfig("")
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		if errors.Is(err, errors.ErrCodeConfigNotFound) {
			cfg = &config.Config{}
			cfg.SetDefaults()
			return cfg, "", nil
		}
		return nil, "", err
	}
	return cfg, path, nil
}
