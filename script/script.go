// Package script reads stroke scripts: one "<start> <end>" zone pair per
// line, with blank lines and # comments ignored.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/grovetools/stroke/dispatch"
	"github.com/grovetools/stroke/errors"
	"github.com/grovetools/stroke/layout"
)

// Stroke is one parsed script line.
type Stroke struct {
	Line  int
	Start layout.Zone
	End   layout.Zone
}

func (s Stroke) String() string {
	return fmt.Sprintf("%s %s", s.Start, s.End)
}

// ParseLine parses the text of line number n. ok is false for blank and
// comment lines.
func ParseLine(text string, n int) (st Stroke, ok bool, err error) {
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Stroke{}, false, nil
	}
	if len(fields) != 2 {
		return Stroke{}, false, errors.ScriptSyntax(n, fmt.Sprintf("expected two zones, got %d fields", len(fields)))
	}

	start, err := layout.ParseZone(fields[0])
	if err != nil {
		return Stroke{}, false, errors.ScriptSyntax(n, err.Error()).WithDetail("token", fields[0])
	}
	end, err := layout.ParseZone(fields[1])
	if err != nil {
		return Stroke{}, false, errors.ScriptSyntax(n, err.Error()).WithDetail("token", fields[1])
	}
	return Stroke{Line: n, Start: start, End: end}, true, nil
}

// Parse reads a whole script.
func Parse(r io.Reader) ([]Stroke, error) {
	var out []Stroke
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		st, ok, err := ParseLine(sc.Text(), n)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, st)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "failed to read script")
	}
	return out, nil
}

// Play feeds strokes to d in order and stops at the first failing stroke.
// The returned error carries the script line.
func Play(d *dispatch.Dispatcher, strokes []Stroke) error {
	for _, st := range strokes {
		if _, err := d.HandleStroke(st.Start, st.End); err != nil {
			if se, ok := errors.As(err); ok {
				return se.WithDetail("line", st.Line)
			}
			return err
		}
	}
	return nil
}
