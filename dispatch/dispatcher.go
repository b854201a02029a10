// Package dispatch turns resolved strokes into host emissions and drives the
// shift state machine.
//
// A Dispatcher is single-writer: every call must come from the goroutine that
// owns it (the one rendering the keyboard). Concurrent sessions use one
// Dispatcher each over a shared, read-only bank.
package dispatch

import (
	"github.com/grovetools/stroke/bank"
	"github.com/grovetools/stroke/errors"
	"github.com/grovetools/stroke/layout"
	"github.com/grovetools/stroke/logging"
	"github.com/sirupsen/logrus"
)

// Result describes what one stroke did.
type Result struct {
	// Action is the resolved action; zero when Found is false.
	Action layout.Action
	// Found is false for an unpopulated cell.
	Found bool
	// Changed reports whether the active layout or shift state changed.
	Changed bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher) error

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *logrus.Entry) Option {
	return func(d *Dispatcher) error {
		d.logger = logger
		return nil
	}
}

// WithStartLayout starts the session on name instead of the bank default.
// An empty name keeps the default.
func WithStartLayout(name string) Option {
	return func(d *Dispatcher) error {
		if name == "" {
			return nil
		}
		l, err := d.bank.Layout(name)
		if err != nil {
			return err
		}
		d.session.Layout = l
		return nil
	}
}

// Dispatcher resolves strokes against the active layout.
type Dispatcher struct {
	bank    *bank.Bank
	host    Host
	session Session
	logger  *logrus.Entry
}

// New creates a dispatcher whose session starts on the bank default layout
// with shift off.
func New(b *bank.Bank, host Host, opts ...Option) (*Dispatcher, error) {
	if b == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "dispatcher needs a layout bank")
	}
	if host == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "dispatcher needs a host")
	}

	d := &Dispatcher{
		bank: b,
		host: host,
		session: Session{
			Layout:   b.Default(),
			Shift:    layout.ShiftOff,
			Duration: DurationForever,
		},
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	if d.logger == nil {
		d.logger = logging.NewLogger("dispatch")
	}

	d.session.LastPrimary = d.session.Layout
	if d.session.Layout.Category() != layout.Primary {
		if primary := b.Primary(); len(primary) > 0 {
			d.session.LastPrimary = primary[0]
		}
	}

	return d, nil
}

// Session returns a copy of the current session state.
func (d *Dispatcher) Session() Session {
	return d.session
}

// Bank returns the bank the dispatcher resolves layouts from.
func (d *Dispatcher) Bank() *bank.Bank {
	return d.bank
}

// HandleStroke dispatches the stroke from start to end.
//
// An unpopulated cell is a no-op. Zones outside the zone set fail with
// INVALID_ZONE and a layout stroke naming an unregistered layout fails with
// UNKNOWN_LAYOUT; in both cases the session is left untouched.
func (d *Dispatcher) HandleStroke(start, end layout.Zone) (Result, error) {
	if !start.Valid() || !end.Valid() {
		return Result{}, errors.InvalidZone(int(start), int(end))
	}

	before := d.session
	action, ok := d.session.Layout.Action(before.Row(), start, end)
	if !ok {
		d.logger.WithFields(logrus.Fields{
			"layout": before.LayoutName(),
			"shift":  before.Shift.String(),
			"start":  start.String(),
			"end":    end.String(),
		}).Debug("No action for stroke")
		return Result{}, nil
	}

	res := Result{Action: action, Found: true}

	switch action.Kind {
	case layout.ActionText:
		d.host.EmitText(action.Text)
		d.releaseOneShot()

	case layout.ActionKeyCode:
		if action.Code.IsShift() {
			d.session.Shift = d.session.Shift.Next()
			break
		}
		d.host.EmitKeyCode(action.Code)
		d.releaseOneShot()

	case layout.ActionLayout:
		target, err := d.resolveTarget(action.Target)
		if err != nil {
			d.logger.WithError(err).WithField("target", action.Target).Error("Layout stroke names an unregistered layout")
			return res, err
		}
		d.switchTo(target)
	}

	res.Changed = d.session.Layout != before.Layout || d.session.Shift != before.Shift
	d.logger.WithFields(logrus.Fields{
		"start":   start.String(),
		"end":     end.String(),
		"action":  action.String(),
		"layout":  d.session.LayoutName(),
		"shift":   d.session.Shift.String(),
		"changed": res.Changed,
	}).Debug("Stroke dispatched")

	if res.Changed {
		d.host.StateChanged(d.session.Layout, d.session.Shift)
	}
	return res, nil
}

// SetShift forces the shift state, notifying the host when it changes.
func (d *Dispatcher) SetShift(s layout.ShiftState) {
	if s > layout.ShiftLock || s == d.session.Shift {
		return
	}
	d.session.Shift = s
	d.host.StateChanged(d.session.Layout, d.session.Shift)
}

// SwitchLayout applies the layout switch transition to name, as a layout
// stroke targeting name would. Reserved targets are accepted.
func (d *Dispatcher) SwitchLayout(name string) error {
	target, err := d.resolveTarget(name)
	if err != nil {
		return err
	}
	before := d.session
	d.switchTo(target)
	if d.session.Layout != before.Layout || d.session.Shift != before.Shift {
		d.host.StateChanged(d.session.Layout, d.session.Shift)
	}
	return nil
}

// releaseOneShot drops a one-shot shift after an emitting stroke.
func (d *Dispatcher) releaseOneShot() {
	if d.session.Shift == layout.ShiftOn {
		d.session.Shift = layout.ShiftOff
	}
}

func (d *Dispatcher) switchTo(target *layout.Layout) {
	d.session.Layout = target
	d.session.Shift = layout.ShiftOff
	d.session.Duration = DurationForever
	if target.Category() == layout.Primary {
		d.session.LastPrimary = target
	}
}

// resolveTarget maps a layout stroke target to a bank layout. Reserved
// targets resolve against the last primary layout.
func (d *Dispatcher) resolveTarget(target string) (*layout.Layout, error) {
	var l *layout.Layout
	switch target {
	case layout.TargetPrimary:
		l = d.session.LastPrimary
	case layout.TargetNext:
		l = d.bank.StepPrimary(d.session.LastPrimary, 1)
	case layout.TargetPrev:
		l = d.bank.StepPrimary(d.session.LastPrimary, -1)
	default:
		return d.bank.Layout(target)
	}
	if l == nil {
		return nil, errors.UnknownLayout(target)
	}
	return l, nil
}
