package cli

import (
	"io"
	"os"

	"github.com/grovetools/stroke/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ApplyVerbosity raises logging to debug when --verbose is set. It must run
// before the first logger is created, so root commands call it from
// PersistentPreRun.
func ApplyVerbosity(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return
	}
	os.Setenv("STROKE_LOG_LEVEL", "debug")
	logging.SetLevel(logrus.DebugLevel)
}

// GetLogger returns the CLI component logger configured from command flags
func GetLogger(cmd *cobra.Command) *logrus.Entry {
	entry := logging.NewLogger("cli")

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		entry.Logger.SetLevel(logrus.DebugLevel)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		entry.Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return entry
}

// SilenceLogs points every logger's stderr sink at w until the returned
// function is called.
func SilenceLogs(w io.Writer) (restore func()) {
	prev := logging.SetGlobalOutput(w)
	return func() { logging.SetGlobalOutput(prev) }
}
