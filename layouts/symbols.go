package layouts

import (
	"github.com/grovetools/stroke/glyph"
	"github.com/grovetools/stroke/keycode"
	"github.com/grovetools/stroke/layout"
)

var symbols = Definition{
	Meta: layout.Meta{
		Name:         "symbols",
		Title:        "Digits and Symbols",
		PrimaryLabel: "?123",
		Category:     layout.Secondary,
	},
	Define: func(b *layout.Builder) {
		b.Layout(mt, ot, layout.TargetPrimary, txt("abc"))

		b.Text(mc, lt, "1", "!")
		b.Text(mc, mt, "2", "@")
		b.Text(mc, rt, "3", "#")
		b.Text(mc, lm, "4", "$")
		b.Text(mc, mc, "5", "%")
		b.Text(mc, rm, "6", "^")
		b.Text(mc, lb, "7", "&")
		b.Text(mc, mb, "8", "*")
		b.Text(mc, rb, "9", "(")
		b.Text(mt, mt, "0", ")")

		shift(b, lt, lt)
		b.Text(lt, mt, "-", "_")
		b.Text(lt, rt, "=", "+")
		b.Text(lt, mc, "[", "{")
		b.Text(lt, lb, "]", "}")

		b.Code(rt, rt, keycode.Del, pic(glyph.Backspace), pic(glyph.Backspace))
		b.Text(rt, lt, "\\", "|")
		b.Text(rt, mt, ";", ":")
		b.Text(rt, mc, "'", "\"")
		b.Text(rt, lb, ",", "<")
		b.Text(rt, mb, ".", ">")
		b.Text(rt, rb, "/", "?")

		b.Text(lb, lb, "`", "~")
		b.Text(lb, mc, "€", "£")

		b.Code(mb, mb, keycode.Space, pic(glyph.Space), pic(glyph.Space))
		b.Code(rb, rb, keycode.Enter, pic(glyph.Enter), pic(glyph.Enter))
	},
}
