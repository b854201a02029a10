package layout

import (
	"testing"

	"github.com/grovetools/stroke/glyph"
	"github.com/grovetools/stroke/keycode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLayout() *Layout {
	return New(Meta{Name: "test", Title: "Test", PrimaryLabel: "t"}, func(b *Builder) {
		b.Text(Center, LeftTop, "ç", "Ç")
		b.TextLabeled(Center, Center, "ß", "S", "ß", "ss")
		b.TextGlyph(MidBottom, MidBottom, " ", " ", glyph.Space, glyph.Space)
		b.CodeLock(LeftTop, LeftTop, keycode.ShiftLeft,
			GlyphLabel(glyph.Shift), GlyphLabel(glyph.Shift), GlyphLabel(glyph.ShiftLock))
		b.Code(RightTop, RightTop, keycode.Del, TextLabel("del"), TextLabel("DEL"))
		b.Layout(MidTop, OutTop, "other", TextLabel("abc"))
	})
}

func TestTextStroke(t *testing.T) {
	l := testLayout()

	lower, ok := l.Action(RowLower, Center, LeftTop)
	require.True(t, ok)
	assert.Equal(t, TextAction("ç"), lower)

	upper, ok := l.Action(RowUpper, Center, LeftTop)
	require.True(t, ok)
	assert.Equal(t, TextAction("Ç"), upper)

	k, _ := l.Key(RowLower, Center, LeftTop)
	assert.Equal(t, "ç", k.Label.String(), "label defaults to the text")

	k, _ = l.Key(RowUpper, Center, Center)
	assert.Equal(t, "ss", k.Label.Text)
	assert.Equal(t, "S", k.Action.Text)

	k, _ = l.Key(RowLower, MidBottom, MidBottom)
	assert.True(t, k.Label.IsGlyph())
	assert.Equal(t, glyph.Space, k.Label.Glyph)
}

func TestKeyCodeStrokeIsShiftInvariant(t *testing.T) {
	l := testLayout()

	lower, _ := l.Key(RowLower, RightTop, RightTop)
	upper, _ := l.Key(RowUpper, RightTop, RightTop)
	assert.Equal(t, lower.Action, upper.Action)
	assert.Equal(t, keycode.Del, lower.Action.Code)
	assert.NotEqual(t, lower.Label, upper.Label)
}

func TestLockLabel(t *testing.T) {
	l := testLayout()

	upper, ok := l.Key(RowUpper, LeftTop, LeftTop)
	require.True(t, ok)
	assert.Equal(t, glyph.Shift, upper.LabelFor(ShiftOn).Glyph)
	assert.Equal(t, glyph.ShiftLock, upper.LabelFor(ShiftLock).Glyph)

	lower, _ := l.Key(RowLower, LeftTop, LeftTop)
	assert.Equal(t, glyph.Shift, lower.LabelFor(ShiftLock).Glyph, "no lock label falls back")
}

func TestLayoutStrokeIdenticalOnBothRows(t *testing.T) {
	l := testLayout()

	lower, _ := l.Key(RowLower, MidTop, OutTop)
	upper, _ := l.Key(RowUpper, MidTop, OutTop)
	assert.Equal(t, lower, upper)
	assert.Equal(t, LayoutAction("other"), lower.Action)
	assert.Equal(t, []string{"other"}, l.Targets())
}

func TestAbsentCell(t *testing.T) {
	l := testLayout()

	_, ok := l.Key(RowLower, RightBottom, OutLeft)
	assert.False(t, ok)
	_, ok = l.Action(RowUpper, LeftMid, RightMid)
	assert.False(t, ok)
}

func TestKeysAreNotShared(t *testing.T) {
	l := testLayout()

	assert.NotSame(t, l.table[RowLower][MidTop][OutTop], l.table[RowUpper][MidTop][OutTop])
}

func TestBuilderMisusePanics(t *testing.T) {
	var kept *Builder
	l := New(Meta{Name: "x"}, func(b *Builder) {
		b.Text(Center, Center, "a", "A")
		kept = b
	})
	require.NotNil(t, l)

	assert.Panics(t, func() { kept.Text(LeftTop, LeftTop, "b", "B") }, "after construction")
	assert.Panics(t, func() {
		New(Meta{Name: "dup"}, func(b *Builder) {
			b.Text(Center, Center, "a", "A")
			b.Text(Center, Center, "b", "B")
		})
	}, "duplicate cell")
	assert.Panics(t, func() {
		New(Meta{Name: "bad"}, func(b *Builder) {
			b.Text(Zone(0x9), Center, "a", "A")
		})
	}, "invalid zone")
	assert.Panics(t, func() { l.Key(RowLower, Zone(0xF), Center) })
}

func TestStrokesOrdered(t *testing.T) {
	l := testLayout()

	strokes := l.Strokes()
	assert.Len(t, strokes, 12)
	assert.Equal(t, RowLower, strokes[0].Row)
	assert.Equal(t, Center, strokes[0].Start)
	assert.Equal(t, Center, strokes[0].End)
	assert.Equal(t, RowUpper, strokes[len(strokes)-1].Row)
}

func TestShiftCycle(t *testing.T) {
	for _, s := range []ShiftState{ShiftOff, ShiftOn, ShiftLock} {
		assert.Equal(t, s, s.Next().Next().Next())
	}
	assert.Equal(t, ShiftOn, ShiftOff.Next())
	assert.Equal(t, ShiftLock, ShiftOn.Next())
	assert.Equal(t, ShiftOff, ShiftLock.Next())

	assert.Equal(t, RowLower, ShiftOff.Row())
	assert.Equal(t, RowUpper, ShiftOn.Row())
	assert.Equal(t, RowUpper, ShiftLock.Row())
}

func TestParseZone(t *testing.T) {
	tests := map[string]Zone{
		"mc":        Center,
		"LT":        LeftTop,
		"right-mid": RightMid,
		"ob":        OutBottom,
		"0xa":       OutTop,
		"d":         OutLeft,
	}
	for in, want := range tests {
		got, err := ParseZone(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"9", "zz", "0x10", ""} {
		_, err := ParseZone(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseShiftState(t *testing.T) {
	s, err := ParseShiftState("LOCK")
	require.NoError(t, err)
	assert.Equal(t, ShiftLock, s)

	_, err = ParseShiftState("caps")
	assert.Error(t, err)
}
