package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/stroke/tui/theme"
)

// PrettyLogger writes status lines meant for people, not log files.
type PrettyLogger struct {
	w     io.Writer
	theme *theme.Theme
}

// NewPrettyLogger writes to stderr using the default theme.
func NewPrettyLogger() *PrettyLogger {
	return &PrettyLogger{w: os.Stderr, theme: theme.DefaultTheme}
}

// WithWriter redirects output to w.
func (p *PrettyLogger) WithWriter(w io.Writer) *PrettyLogger {
	p.w = w
	return p
}

func (p *PrettyLogger) line(style lipgloss.Style, icon, msg string) {
	fmt.Fprintf(p.w, "%s %s\n", style.Render(icon), style.Render(msg))
}

func (p *PrettyLogger) Success(msg string) { p.line(p.theme.Success, "✓", msg) }

func (p *PrettyLogger) Warn(msg string) { p.line(p.theme.Warning, "⚠", msg) }

// Error prints msg, followed by err when it is not nil.
func (p *PrettyLogger) Error(msg string, err error) {
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	p.line(p.theme.Error, "✗", msg)
}

// Field prints an indented key: value pair.
func (p *PrettyLogger) Field(key string, value interface{}) {
	fmt.Fprintf(p.w, "  %s: %s\n", p.theme.Muted.Render(key), p.theme.Highlight.Render(fmt.Sprint(value)))
}
