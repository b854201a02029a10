package layouts

import (
	"testing"

	"github.com/grovetools/stroke/keycode"
	"github.com/grovetools/stroke/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byName(t *testing.T, name string) *layout.Layout {
	t.Helper()
	for _, l := range All() {
		if l.Name() == name {
			return l
		}
	}
	t.Fatalf("layout %q not defined", name)
	return nil
}

func TestDefinitionsBuild(t *testing.T) {
	names := make(map[string]bool)
	for _, d := range Definitions() {
		require.NotPanics(t, func() { d.Build() }, d.Meta.Name)
		assert.False(t, names[d.Meta.Name], "duplicate name %s", d.Meta.Name)
		names[d.Meta.Name] = true
		assert.NotEmpty(t, d.Meta.Title)
		assert.NotEmpty(t, d.Meta.PrimaryLabel)
	}
	assert.True(t, names[Default], "default layout must be defined")
}

func TestDiacriticStrokes(t *testing.T) {
	l := byName(t, "diacritic")
	assert.Equal(t, layout.Secondary, l.Category())

	a, ok := l.Action(layout.RowLower, layout.Center, layout.LeftTop)
	require.True(t, ok)
	assert.Equal(t, "ç", a.Text)

	a, ok = l.Action(layout.RowUpper, layout.Center, layout.LeftTop)
	require.True(t, ok)
	assert.Equal(t, "Ç", a.Text)

	k, ok := l.Key(layout.RowUpper, layout.Center, layout.Center)
	require.True(t, ok)
	assert.Equal(t, "S", k.Action.Text)
	assert.Equal(t, "ss", k.Label.String())

	a, ok = l.Action(layout.RowLower, layout.MidTop, layout.OutTop)
	require.True(t, ok)
	assert.Equal(t, layout.LayoutAction(layout.TargetPrimary), a)

	_, ok = l.Action(layout.RowLower, layout.RightTop, layout.LeftTop)
	assert.False(t, ok, "unassigned diacritic cell stays empty")
}

func TestEveryShiftStrokeIsShiftInvariant(t *testing.T) {
	for _, l := range All() {
		for _, s := range l.Strokes() {
			if s.Key.Action.Kind != layout.ActionKeyCode {
				continue
			}
			other := layout.RowUpper
			if s.Row == layout.RowUpper {
				other = layout.RowLower
			}
			a, ok := l.Action(other, s.Start, s.End)
			require.True(t, ok, "%s %s->%s", l.Name(), s.Start, s.End)
			assert.Equal(t, s.Key.Action, a)
		}
	}
}

func TestPrimaryLayoutsShareControls(t *testing.T) {
	for _, l := range All() {
		if l.Category() != layout.Primary {
			continue
		}
		a, ok := l.Action(layout.RowLower, layout.LeftTop, layout.LeftTop)
		require.True(t, ok, l.Name())
		assert.Equal(t, keycode.ShiftLeft, a.Code)

		a, ok = l.Action(layout.RowUpper, layout.MidTop, layout.OutTop)
		require.True(t, ok, l.Name())
		assert.Equal(t, layout.TargetNext, a.Target)
	}
}

func TestCyrillicUpperCase(t *testing.T) {
	l := byName(t, "cyrillic")
	a, ok := l.Action(layout.RowUpper, layout.LeftMid, layout.LeftBottom)
	require.True(t, ok)
	assert.Equal(t, "Ё", a.Text)
}
