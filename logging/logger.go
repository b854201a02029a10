package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/grovetools/stroke/config"
	"github.com/grovetools/stroke/pkg/paths"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

// NewLogger creates and returns a pre-configured logger for a specific component.
// It uses a singleton pattern per component to avoid re-initializing.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	var logCfg Config
	if cfg, err := config.LoadDefault(); err == nil {
		if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
			logrus.Warnf("Failed to parse 'logging' config: %v", err)
		}
	}

	entry := newLogger(component, logCfg)
	loggers[component] = entry
	return entry
}

// newLogger builds a logger from an explicit configuration.
func newLogger(component string, logCfg Config) *logrus.Entry {
	logger := logrus.New()

	logger.SetLevel(logCfg.level())
	logger.SetReportCaller(logCfg.reportCaller())
	logger.SetFormatter(logCfg.formatter())

	var writers []io.Writer
	if logCfg.File.Enabled {
		if f := openLogFile(component, logCfg.File.Path, logger); f != nil {
			writers = append(writers, f)
		}
	}
	if toTerminal(logCfg.Format.StructuredToStderr, logger.GetLevel()) {
		writers = append(writers, sharedSink)
	}

	switch len(writers) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	return logger.WithField("component", component)
}

// SetLevel changes the level of every logger created so far.
func SetLevel(level logrus.Level) {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	for _, entry := range loggers {
		entry.Logger.SetLevel(level)
	}
}

// openLogFile opens the component's log file for appending, reporting
// failures through logger and returning nil.
func openLogFile(component, path string, logger *logrus.Logger) io.Writer {
	path = paths.ExpandHome(path)
	if path == "" {
		path = defaultLogPath(component)
	}
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logger.Warnf("Failed to create log directory %s: %v", filepath.Dir(path), err)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		logger.Warnf("Failed to open log file %s: %v", path, err)
		return nil
	}
	return f
}

// toTerminal decides whether structured entries reach stderr. In auto mode
// an interactive terminal only sees them while debugging.
func toTerminal(mode string, level logrus.Level) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("STROKE_DEBUG") == "1" || level >= logrus.DebugLevel {
		return true
	}
	fd := os.Stderr.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

func defaultLogPath(component string) string {
	dir := paths.LogDir()
	if dir == "" {
		return ""
	}
	dateStr := time.Now().Format("2006-01-02")
	return filepath.Join(dir, fmt.Sprintf("%s-%s.log", component, dateStr))
}
