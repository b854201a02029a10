package server

import (
	"github.com/grovetools/stroke/bank"
	"github.com/grovetools/stroke/errors"
	"github.com/grovetools/stroke/keycode"
	"github.com/grovetools/stroke/layout"
)

// Request is one stroke sent by a client. Zones use the short or long zone
// names ("mc", "left-top") or hex codes.
type Request struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Response reports what a stroke did and the session state after it.
type Response struct {
	Text    []string            `json:"text"`
	Codes   []keycode.Code      `json:"codes"`
	Layout  string              `json:"layout"`
	Shift   layout.ShiftState   `json:"shift"`
	Changed bool                `json:"changed"`
	Error   *errors.StrokeError `json:"error,omitempty"`
}

// LayoutInfo describes a registered layout for /api/layouts.
type LayoutInfo struct {
	Name         string          `json:"name"`
	Title        string          `json:"title"`
	PrimaryLabel string          `json:"primary_label"`
	Category     layout.Category `json:"category"`
	Default      bool            `json:"default"`
	Strokes      int             `json:"strokes"`
}

// DescribeLayouts lists the layouts of b, primary layouts first and otherwise
// in registration order.
func DescribeLayouts(b *bank.Bank) []LayoutInfo {
	def := b.Default()
	describe := func(l *layout.Layout) LayoutInfo {
		return LayoutInfo{
			Name:         l.Name(),
			Title:        l.Title(),
			PrimaryLabel: l.PrimaryLabel(),
			Category:     l.Category(),
			Default:      l == def,
			Strokes:      len(l.Strokes()),
		}
	}

	out := make([]LayoutInfo, 0, len(b.Layouts()))
	for _, l := range b.Primary() {
		out = append(out, describe(l))
	}
	for _, l := range b.Layouts() {
		if l.Category() != layout.Primary {
			out = append(out, describe(l))
		}
	}
	return out
}

// connHost collects the emissions of one stroke for the reply.
type connHost struct {
	text    []string
	codes   []keycode.Code
	changed bool
}

func (h *connHost) EmitText(text string) {
	h.text = append(h.text, text)
}

func (h *connHost) EmitKeyCode(code keycode.Code) {
	h.codes = append(h.codes, code)
}

func (h *connHost) StateChanged(*layout.Layout, layout.ShiftState) {
	h.changed = true
}

func (h *connHost) reset() {
	h.text = []string{}
	h.codes = []keycode.Code{}
	h.changed = false
}
