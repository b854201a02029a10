package layout

import (
	"github.com/grovetools/stroke/glyph"
)

// Label is what a key shows: literal text or a symbolic glyph.
type Label struct {
	Text  string      `json:"text,omitempty" yaml:"text,omitempty"`
	Glyph glyph.Glyph `json:"glyph,omitempty" yaml:"glyph,omitempty"`
}

// TextLabel returns a label showing s.
func TextLabel(s string) Label { return Label{Text: s} }

// GlyphLabel returns a label showing picture g.
func GlyphLabel(g glyph.Glyph) Label { return Label{Glyph: g} }

// IsGlyph reports whether the label is a picture.
func (l Label) IsGlyph() bool { return l.Glyph != glyph.None }

// IsZero reports whether the label is empty.
func (l Label) IsZero() bool { return l.Text == "" && l.Glyph == glyph.None }

// String renders the label as text, using the glyph's fallback for pictures.
func (l Label) String() string {
	if l.IsGlyph() {
		return l.Glyph.Text()
	}
	return l.Text
}

// Key pairs an action with its label. LockLabel, when set, replaces Label
// while shift is locked.
type Key struct {
	Action    Action `json:"action" yaml:"action"`
	Label     Label  `json:"label" yaml:"label"`
	LockLabel Label  `json:"lock_label,omitempty" yaml:"lock_label,omitempty"`
}

// LabelFor returns the label to show under the given shift state.
func (k Key) LabelFor(shift ShiftState) Label {
	if shift == ShiftLock && !k.LockLabel.IsZero() {
		return k.LockLabel
	}
	return k.Label
}
