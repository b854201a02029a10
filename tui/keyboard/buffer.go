package keyboard

import (
	"github.com/grovetools/stroke/keycode"
	"github.com/grovetools/stroke/layout"
)

// Buffer is a small text surface: the dispatch host behind the TUI.
type Buffer struct {
	text     []rune
	lastCode keycode.Code
	changes  int
}

// EmitText appends text.
func (b *Buffer) EmitText(text string) {
	b.text = append(b.text, []rune(text)...)
}

// EmitKeyCode applies the editing keys the buffer understands and remembers
// the code for the status line.
func (b *Buffer) EmitKeyCode(code keycode.Code) {
	b.lastCode = code
	switch code {
	case keycode.Del:
		if n := len(b.text); n > 0 {
			b.text = b.text[:n-1]
		}
	case keycode.Enter:
		b.text = append(b.text, '\n')
	case keycode.Space:
		b.text = append(b.text, ' ')
	case keycode.Tab:
		b.text = append(b.text, '\t')
	}
}

// StateChanged counts notifications; the view re-renders from the session.
func (b *Buffer) StateChanged(*layout.Layout, layout.ShiftState) {
	b.changes++
}

// String returns the buffer contents.
func (b *Buffer) String() string {
	return string(b.text)
}

// LastCode returns the most recent key code, or 0.
func (b *Buffer) LastCode() keycode.Code {
	return b.lastCode
}

// Changes returns how many state notifications arrived.
func (b *Buffer) Changes() int {
	return b.changes
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.text = b.text[:0]
	b.lastCode = 0
}
