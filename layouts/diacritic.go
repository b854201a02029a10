package layouts

import (
	"github.com/grovetools/stroke/layout"
)

var diacritic = Definition{
	Meta: layout.Meta{
		Name:         "diacritic",
		Title:        "Diacritic Symbols",
		PrimaryLabel: "êґå",
		Category:     layout.Secondary,
	},
	Define: func(b *layout.Builder) {
		b.Layout(mt, ot, layout.TargetPrimary, txt("abc"))

		b.Text(mc, lt, "ç", "Ç")
		b.Text(mc, mt, "î", "Î")
		b.Text(mc, rt, "ñ", "Ñ")
		b.TextLabeled(mc, mc, "ß", "S", "ß", "ss")
		b.Text(mc, lb, "ì", "Ì")
		b.Text(mc, mb, "ï", "Ï")
		b.Text(mc, rb, "í", "Í")

		shift(b, lt, lt)
		b.Text(lt, mt, "é", "É")
		b.Text(lt, rt, "ê", "Ê")
		b.Text(lt, mc, "ë", "Ë")
		b.Text(lt, lb, "ý", "Ý")
		b.Text(lt, mb, "ÿ", "Ÿ")
		b.Text(lt, rb, "è", "È")

		b.Text(mt, lt, "à", "À")
		b.Text(mt, mt, "â", "Â")
		b.Text(mt, rt, "á", "Á")
		b.Text(mt, mc, "å", "Å")
		b.Text(mt, lb, "ã", "Ã")
		b.Text(mt, mb, "ä", "Ä")
		b.Text(mt, rb, "æ", "Æ")

		// Belarusian, Ukrainian
		b.Text(rt, mt, "ї", "Ї")
		b.Text(rt, rt, "і", "І")
		b.Text(rt, mc, "є", "Є")
		b.Text(rt, mb, "ў", "Ў")
		b.Text(rt, rb, "ґ", "Ґ")

		b.Text(lb, lt, "ù", "Ù")
		b.Text(lb, mt, "û", "Û")
		b.Text(lb, rt, "§", "§")
		b.Text(lb, lb, "ü", "Ü")
		b.Text(lb, mb, "ú", "Ú")

		b.Text(mb, lt, "õ", "Õ")
		b.Text(mb, mt, "ö", "Ö")
		b.Text(mb, rt, "œ", "Œ")
		b.Text(mb, mc, "ø", "Ø")
		b.Text(mb, lb, "ò", "Ò")
		b.Text(mb, mb, "ô", "Ô")
		b.Text(mb, rb, "ó", "Ó")

		// Esperanto
		b.Text(rb, mt, "ĝ", "Ĝ")
		b.Text(rb, rt, "ĥ", "Ĥ")
		b.Text(rb, mc, "ŝ", "Ŝ")
		b.Text(rb, lb, "ĵ", "Ĵ")
		b.Text(rb, mb, "ŭ", "Ŭ")
		b.Text(rb, rb, "ĉ", "Ĉ")
	},
}
