// Package layout models a stroke keyboard layout: a table from
// (shift row, start zone, end zone) to an optional Key, filled once at
// construction and read-only afterwards.
package layout

import (
	"fmt"
	"sort"

	"github.com/grovetools/stroke/glyph"
	"github.com/grovetools/stroke/keycode"
)

// Category distinguishes layouts reachable from the base keyboard from
// those reached only through a layout stroke.
type Category uint8

const (
	Primary Category = iota
	Secondary
)

func (c Category) String() string {
	if c == Secondary {
		return "secondary"
	}
	return "primary"
}

// MarshalText encodes the category by name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes "primary" or "secondary".
func (c *Category) UnmarshalText(text []byte) error {
	switch string(text) {
	case "primary":
		*c = Primary
	case "secondary":
		*c = Secondary
	default:
		return fmt.Errorf("unknown layout category %q", text)
	}
	return nil
}

// Meta is a layout's static description.
type Meta struct {
	Name         string   `json:"name" yaml:"name"`
	Title        string   `json:"title" yaml:"title"`
	PrimaryLabel string   `json:"primary_label" yaml:"primary_label"`
	Category     Category `json:"category" yaml:"category"`
}

// Layout is an immutable stroke table.
type Layout struct {
	meta  Meta
	table [2][ZoneSpan][ZoneSpan]*Key
}

// Stroke is one populated cell of a layout.
type Stroke struct {
	Row   Row  `json:"row" yaml:"row"`
	Start Zone `json:"start" yaml:"start"`
	End   Zone `json:"end" yaml:"end"`
	Key   Key  `json:"key" yaml:"key"`
}

// New builds a layout. define registers every stroke the layout has; cells it
// leaves alone stay empty for good. The builder is unusable once New returns.
func New(meta Meta, define func(b *Builder)) *Layout {
	l := &Layout{meta: meta}
	b := &Builder{l: l}
	define(b)
	b.l = nil
	return l
}

// Name is the stable name used as a layout stroke target.
func (l *Layout) Name() string { return l.meta.Name }

// Title is the human readable layout title.
func (l *Layout) Title() string { return l.meta.Title }

// PrimaryLabel is the short label shown for the layout itself.
func (l *Layout) PrimaryLabel() string { return l.meta.PrimaryLabel }

// Category reports whether the layout is primary or secondary.
func (l *Layout) Category() Category { return l.meta.Category }

// Meta returns the layout's static description.
func (l *Layout) Meta() Meta { return l.meta }

// Key returns the key registered at the exact cell, if any.
// Zones outside the zone set are a programming error and panic.
func (l *Layout) Key(row Row, start, end Zone) (Key, bool) {
	mustZones(start, end)
	k := l.table[row][start][end]
	if k == nil {
		return Key{}, false
	}
	return *k, true
}

// Action returns the action registered at the exact cell, if any.
func (l *Layout) Action(row Row, start, end Zone) (Action, bool) {
	k, ok := l.Key(row, start, end)
	if !ok {
		return Action{}, false
	}
	return k.Action, true
}

// Strokes lists every populated cell ordered by row, start and end.
func (l *Layout) Strokes() []Stroke {
	var out []Stroke
	for row := range l.table {
		for start := range l.table[row] {
			for end, k := range l.table[row][start] {
				if k != nil {
					out = append(out, Stroke{Row: Row(row), Start: Zone(start), End: Zone(end), Key: *k})
				}
			}
		}
	}
	return out
}

// Targets returns the distinct layout stroke targets, sorted.
func (l *Layout) Targets() []string {
	seen := make(map[string]bool)
	for _, s := range l.Strokes() {
		if s.Key.Action.Kind == ActionLayout {
			seen[s.Key.Action.Target] = true
		}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func mustZones(start, end Zone) {
	if !start.Valid() || !end.Valid() {
		panic(fmt.Sprintf("layout: invalid stroke %s -> %s", start, end))
	}
}

// Builder populates a layout during New.
type Builder struct {
	l *Layout
}

func (b *Builder) put(row Row, start, end Zone, k Key) {
	if b.l == nil {
		panic("layout: builder used after construction")
	}
	mustZones(start, end)
	if b.l.table[row][start][end] != nil {
		panic(fmt.Sprintf("layout %s: stroke %s -> %s (%s) registered twice", b.l.meta.Name, start, end, row))
	}
	b.l.table[row][start][end] = &k
}

// Text registers a text stroke labelled with the text itself.
func (b *Builder) Text(start, end Zone, lower, upper string) {
	b.TextLabeled(start, end, lower, upper, lower, upper)
}

// TextLabeled registers a text stroke with explicit labels.
func (b *Builder) TextLabeled(start, end Zone, lower, upper, labelLower, labelUpper string) {
	b.put(RowLower, start, end, Key{Action: TextAction(lower), Label: TextLabel(labelLower)})
	b.put(RowUpper, start, end, Key{Action: TextAction(upper), Label: TextLabel(labelUpper)})
}

// TextGlyph registers a text stroke shown as pictures.
func (b *Builder) TextGlyph(start, end Zone, lower, upper string, glyphLower, glyphUpper glyph.Glyph) {
	b.put(RowLower, start, end, Key{Action: TextAction(lower), Label: GlyphLabel(glyphLower)})
	b.put(RowUpper, start, end, Key{Action: TextAction(upper), Label: GlyphLabel(glyphUpper)})
}

// Code registers the same key code on both rows with per-row labels.
func (b *Builder) Code(start, end Zone, code keycode.Code, lower, upper Label) {
	b.put(RowLower, start, end, Key{Action: KeyCodeAction(code), Label: lower})
	b.put(RowUpper, start, end, Key{Action: KeyCodeAction(code), Label: upper})
}

// CodeLock is Code with an extra label shown while shift is locked.
func (b *Builder) CodeLock(start, end Zone, code keycode.Code, lower, upper, lock Label) {
	b.put(RowLower, start, end, Key{Action: KeyCodeAction(code), Label: lower})
	b.put(RowUpper, start, end, Key{Action: KeyCodeAction(code), Label: upper, LockLabel: lock})
}

// Layout registers a layout switch, identical on both rows.
func (b *Builder) Layout(start, end Zone, target string, label Label) {
	b.put(RowLower, start, end, Key{Action: LayoutAction(target), Label: label})
	b.put(RowUpper, start, end, Key{Action: LayoutAction(target), Label: label})
}
