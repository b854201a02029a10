package layouts

import (
	"github.com/grovetools/stroke/layout"
)

var cyrillic = Definition{
	Meta: layout.Meta{
		Name:         "cyrillic",
		Title:        "Cyrillic",
		PrimaryLabel: "абв",
		Category:     layout.Primary,
	},
	Define: func(b *layout.Builder) {
		controls(b)

		letter(b, mc, mc, "о")
		letter(b, mc, lt, "а")
		letter(b, mc, mt, "е")
		letter(b, mc, rt, "и")
		letter(b, mc, lm, "н")
		letter(b, mc, rm, "т")
		letter(b, mc, lb, "с")
		letter(b, mc, mb, "р")
		letter(b, mc, rb, "в")

		letter(b, lt, mt, "л")
		letter(b, lt, rt, "к")
		letter(b, lt, mc, "м")
		letter(b, lt, lm, "д")
		letter(b, lt, lb, "п")
		letter(b, lt, mb, "у")
		letter(b, lt, rb, "я")

		letter(b, mt, mt, "ы")
		letter(b, mt, lt, "ь")
		letter(b, mt, rt, "г")
		letter(b, mt, mc, "з")
		letter(b, mt, lb, "б")
		letter(b, mt, mb, "ч")
		letter(b, mt, rb, "й")

		letter(b, rt, lt, "х")
		letter(b, rt, mt, "ж")
		letter(b, rt, mc, "ш")
		letter(b, rt, lb, "ю")
		letter(b, rt, mb, "ц")
		letter(b, rt, rb, "щ")

		letter(b, lm, lm, "э")
		letter(b, lm, mc, "ф")
		letter(b, lm, lt, "ъ")
		letter(b, lm, lb, "ё")

		b.Text(rm, rm, ",", ";")
		b.Text(rm, mc, ".", ":")
		b.Text(lb, lb, "-", "—")
		b.Text(lb, mc, "?", "!")
	},
}
