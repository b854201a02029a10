// Package glyph names the symbolic pictures a key can show instead of text.
package glyph

// Glyph is a reference to a symbolic key picture.
type Glyph int

const (
	None Glyph = iota
	Shift
	ShiftLock
	Backspace
	Enter
	Space
	Tab
	Globe
	Symbols
)

type info struct {
	name string
	text string
}

var table = map[Glyph]info{
	Shift:     {"shift", "⇧"},
	ShiftLock: {"shift-lock", "⇪"},
	Backspace: {"backspace", "⌫"},
	Enter:     {"enter", "⏎"},
	Space:     {"space", "␣"},
	Tab:       {"tab", "⇥"},
	Globe:     {"globe", "🌐"},
	Symbols:   {"symbols", "?123"},
}

// String returns the glyph's stable name.
func (g Glyph) String() string {
	if i, ok := table[g]; ok {
		return i.name
	}
	return "none"
}

// Text returns the text fallback used by renderers without pictures.
func (g Glyph) Text() string {
	return table[g].text
}

// Valid reports whether g names a known glyph.
func (g Glyph) Valid() bool {
	_, ok := table[g]
	return ok
}

// MarshalText encodes the glyph by name.
func (g Glyph) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}
