package dispatch

import (
	"github.com/grovetools/stroke/keycode"
	"github.com/grovetools/stroke/layout"
)

// Host is the text surface a dispatcher drives.
//
// EmitKeyCode stands for a full press and release of code. StateChanged is a
// signal to refresh labels; the host decides how to render them.
type Host interface {
	EmitText(text string)
	EmitKeyCode(code keycode.Code)
	StateChanged(active *layout.Layout, shift layout.ShiftState)
}

// Duration says how long an active layout stays selected.
type Duration int

// DurationForever keeps a layout until another layout stroke replaces it.
// Timed reversion is not defined.
const DurationForever Duration = 0

func (d Duration) String() string {
	if d == DurationForever {
		return "forever"
	}
	return "unknown"
}

// Session is the mutable state of one input session.
type Session struct {
	Layout   *layout.Layout
	Shift    layout.ShiftState
	Duration Duration

	// LastPrimary is the most recent primary layout, the target of @primary.
	LastPrimary *layout.Layout
}

// Row is the table row the current shift state reads from.
func (s Session) Row() layout.Row {
	return s.Shift.Row()
}

// LayoutName returns the active layout's name.
func (s Session) LayoutName() string {
	if s.Layout == nil {
		return ""
	}
	return s.Layout.Name()
}
