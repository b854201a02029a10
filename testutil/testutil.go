// Package testutil holds helpers shared by package tests.
package testutil

import (
	"strings"
	"sync"

	"github.com/grovetools/stroke/keycode"
	"github.com/grovetools/stroke/layout"
)

// StateChange is one StateChanged notification seen by a RecordingHost.
type StateChange struct {
	Layout string
	Shift  layout.ShiftState
}

// RecordingHost captures everything a dispatcher sends to its host.
// It is safe for concurrent use so tests can inspect it from another goroutine.
type RecordingHost struct {
	mu     sync.Mutex
	texts  []string
	codes  []keycode.Code
	states []StateChange
}

// EmitText records text.
func (h *RecordingHost) EmitText(text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.texts = append(h.texts, text)
}

// EmitKeyCode records code.
func (h *RecordingHost) EmitKeyCode(code keycode.Code) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.codes = append(h.codes, code)
}

// StateChanged records the new session state.
func (h *RecordingHost) StateChanged(active *layout.Layout, shift layout.ShiftState) {
	h.mu.Lock()
	defer h.mu.Unlock()
	name := ""
	if active != nil {
		name = active.Name()
	}
	h.states = append(h.states, StateChange{Layout: name, Shift: shift})
}

// Texts returns the emitted text values in order.
func (h *RecordingHost) Texts() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.texts...)
}

// Output returns all emitted text joined together.
func (h *RecordingHost) Output() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return strings.Join(h.texts, "")
}

// Codes returns the emitted key codes in order.
func (h *RecordingHost) Codes() []keycode.Code {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]keycode.Code(nil), h.codes...)
}

// States returns the state notifications in order.
func (h *RecordingHost) States() []StateChange {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]StateChange(nil), h.states...)
}

// Emissions counts text and key code emissions.
func (h *RecordingHost) Emissions() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.texts) + len(h.codes)
}

// Reset forgets everything recorded so far.
func (h *RecordingHost) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.texts, h.codes, h.states = nil, nil, nil
}
