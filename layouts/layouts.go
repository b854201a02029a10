// Package layouts holds the compiled-in keyboard layouts.
//
// Each layout is a named definition whose builder function fills a
// layout.Layout once. Definitions are listed in bank order: primary layouts
// are cycled in the order they appear here.
package layouts

import (
	"strings"

	"github.com/grovetools/stroke/glyph"
	"github.com/grovetools/stroke/keycode"
	"github.com/grovetools/stroke/layout"
)

// Default is the layout a new session starts on.
const Default = "latin"

// Definition is a named, statically known layout configuration.
type Definition struct {
	Meta   layout.Meta
	Define func(b *layout.Builder)
}

// Build constructs the layout.
func (d Definition) Build() *layout.Layout {
	return layout.New(d.Meta, d.Define)
}

// Definitions returns every compiled-in definition in bank order.
func Definitions() []Definition {
	return []Definition{
		latin,
		cyrillic,
		diacritic,
		symbols,
	}
}

// All builds every compiled-in layout.
func All() []*layout.Layout {
	defs := Definitions()
	out := make([]*layout.Layout, 0, len(defs))
	for _, d := range defs {
		out = append(out, d.Build())
	}
	return out
}

// Short zone names keep the stroke tables readable.
const (
	mc = layout.Center
	lt = layout.LeftTop
	mt = layout.MidTop
	rt = layout.RightTop
	lm = layout.LeftMid
	rm = layout.RightMid
	lb = layout.LeftBottom
	mb = layout.MidBottom
	rb = layout.RightBottom
	ot = layout.OutTop
)

var (
	txt = layout.TextLabel
	pic = layout.GlyphLabel
)

// letter registers a letter whose upper form is its Unicode upper case.
func letter(b *layout.Builder, start, end layout.Zone, lower string) {
	b.Text(start, end, lower, strings.ToUpper(lower))
}

// shift registers the shift stroke with its lock picture.
func shift(b *layout.Builder, start, end layout.Zone) {
	b.CodeLock(start, end, keycode.ShiftLeft, pic(glyph.Shift), pic(glyph.Shift), pic(glyph.ShiftLock))
}

// controls registers the strokes every primary layout shares.
func controls(b *layout.Builder) {
	shift(b, lt, lt)
	b.Code(rt, rt, keycode.Del, pic(glyph.Backspace), pic(glyph.Backspace))
	b.Code(mb, mb, keycode.Space, pic(glyph.Space), pic(glyph.Space))
	b.Code(rb, rb, keycode.Enter, pic(glyph.Enter), pic(glyph.Enter))

	b.Layout(lt, ot, "symbols", pic(glyph.Symbols))
	b.Layout(mt, ot, layout.TargetNext, pic(glyph.Globe))
	b.Layout(rt, ot, "diacritic", txt("êґå"))
}
