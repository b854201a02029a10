package logging

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/grovetools/stroke/tui/theme"
	"github.com/sirupsen/logrus"
)

// leadingFields are printed first, in this order, so a stroke reads
// layout then start then end. Remaining fields follow sorted by name.
var leadingFields = []string{"layout", "shift", "start", "end"}

// TextFormatter renders entries as one line:
//
//	2024-01-02 15:04:05 [INFO] [dispatch] Stroke dispatched layout=latin start=mc end=lt
type TextFormatter struct {
	Config FormatConfig
}

func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b strings.Builder

	if !f.Config.DisableTimestamp {
		b.WriteString(entry.Time.Format("2006-01-02 15:04:05 "))
	}
	fmt.Fprintf(&b, "[%s]", levelLabel(entry.Level))

	if c, ok := entry.Data["component"]; ok && !f.Config.DisableComponent {
		fmt.Fprintf(&b, " [%s]", theme.DefaultTheme.Accent.Render(fmt.Sprint(c)))
	}
	if entry.HasCaller() {
		fmt.Fprintf(&b, " [%s:%d %s]",
			filepath.Base(entry.Caller.File), entry.Caller.Line, filepath.Base(entry.Caller.Function))
	}

	b.WriteByte(' ')
	b.WriteString(entry.Message)

	for _, k := range fieldOrder(entry.Data) {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func levelLabel(l logrus.Level) string {
	if l == logrus.WarnLevel {
		return "WARN"
	}
	return strings.ToUpper(l.String())
}

func fieldOrder(data logrus.Fields) []string {
	keys := make([]string, 0, len(data))
	seen := map[string]bool{"component": true}
	for _, k := range leadingFields {
		if _, ok := data[k]; ok {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	rest := make([]string, 0, len(data))
	for k := range data {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}
