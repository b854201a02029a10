package profiling

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CobraProfiler binds profiling to persistent flags of a root command.
type CobraProfiler struct {
	cpuProfileFile *os.File
	cpuProfilePath string
	memProfilePath string
	timing         bool
	logger         *logrus.Entry
}

// NewCobraProfiler creates a profiler. logger receives failures that happen
// after the command ran; nil uses the standard logrus logger.
func NewCobraProfiler(logger *logrus.Entry) *CobraProfiler {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &CobraProfiler{logger: logger}
}

// AddFlags adds --cpu-profile, --mem-profile and --timing to cmd.
func (p *CobraProfiler) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&p.cpuProfilePath, "cpu-profile", "", "Write CPU profile to file")
	cmd.PersistentFlags().StringVar(&p.memProfilePath, "mem-profile", "", "Write memory profile to file")
	cmd.PersistentFlags().BoolVar(&p.timing, "timing", false, "Print a timing summary on exit")
}

// PreRun starts profiling; use it from PersistentPreRunE.
func (p *CobraProfiler) PreRun(cmd *cobra.Command, args []string) error {
	if p.timing {
		Enable()
	}
	if p.cpuProfilePath == "" {
		return nil
	}
	f, err := os.Create(p.cpuProfilePath)
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return fmt.Errorf("could not start CPU profile: %w", err)
	}
	p.cpuProfileFile = f
	return nil
}

// PostRun writes the profiles and the timing summary; use it from
// PersistentPostRun.
func (p *CobraProfiler) PostRun(cmd *cobra.Command, args []string) {
	if p.cpuProfileFile != nil {
		pprof.StopCPUProfile()
		p.cpuProfileFile.Close()
		p.cpuProfileFile = nil
	}

	if p.memProfilePath != "" {
		if err := writeHeapProfile(p.memProfilePath); err != nil {
			p.logger.WithError(err).Warn("Could not write memory profile")
		}
	}

	if p.timing {
		Summarize(cmd.ErrOrStderr())
	}
}

func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	runtime.GC()
	return pprof.WriteHeapProfile(f)
}
