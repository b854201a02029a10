package layouts

import (
	"github.com/grovetools/stroke/keycode"
	"github.com/grovetools/stroke/layout"
)

var latin = Definition{
	Meta: layout.Meta{
		Name:         "latin",
		Title:        "Latin",
		PrimaryLabel: "abc",
		Category:     layout.Primary,
	},
	Define: func(b *layout.Builder) {
		controls(b)

		letter(b, mc, mc, "e")
		letter(b, mc, lt, "a")
		letter(b, mc, mt, "o")
		letter(b, mc, rt, "i")
		letter(b, mc, lm, "n")
		letter(b, mc, rm, "t")
		letter(b, mc, lb, "s")
		letter(b, mc, mb, "h")
		letter(b, mc, rb, "r")

		letter(b, lt, mt, "d")
		letter(b, lt, rt, "l")
		letter(b, lt, mc, "u")
		letter(b, lt, lm, "c")
		letter(b, lt, lb, "m")
		letter(b, lt, mb, "w")
		letter(b, lt, rb, "f")

		letter(b, mt, mt, "y")
		letter(b, mt, lt, "g")
		letter(b, mt, rt, "p")
		letter(b, mt, mc, "b")
		letter(b, mt, lb, "v")
		letter(b, mt, mb, "k")
		letter(b, mt, rb, "x")

		letter(b, rt, lt, "j")
		letter(b, rt, mt, "q")
		letter(b, rt, mc, "z")
		b.Text(rt, lb, "-", "_")
		b.Text(rt, rb, "'", "\"")

		b.Text(lm, lm, ",", ";")
		b.Text(lm, mc, ".", ":")
		b.Text(lm, lt, "!", "!")
		b.Text(lm, lb, "?", "?")

		b.Code(rm, rm, keycode.Tab, txt("tab"), txt("TAB"))
		b.Text(rm, mc, "@", "@")

		b.Text(lb, lb, "/", "\\")
		b.Code(lb, mc, keycode.Escape, txt("esc"), txt("esc"))
	},
}
