package bank

import (
	"testing"

	"github.com/grovetools/stroke/errors"
	"github.com/grovetools/stroke/layout"
	"github.com/grovetools/stroke/layouts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mk(name string, cat layout.Category, define func(b *layout.Builder)) *layout.Layout {
	if define == nil {
		define = func(*layout.Builder) {}
	}
	return layout.New(layout.Meta{Name: name, Title: name, Category: cat}, define)
}

func TestDefaultBank(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	assert.Equal(t, layouts.Default, b.Default().Name())

	l, err := b.Layout("diacritic")
	require.NoError(t, err)
	assert.Equal(t, "Diacritic Symbols", l.Title())

	var primary []string
	for _, l := range b.Primary() {
		primary = append(primary, l.Name())
	}
	assert.Equal(t, []string{"latin", "cyrillic"}, primary)
	assert.Len(t, b.Layouts(), len(layouts.Definitions()))
}

func TestUnknownLayout(t *testing.T) {
	b := MustDefault()

	_, err := b.Layout("klingon")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownLayout))
	assert.False(t, b.Has("klingon"))
	assert.True(t, b.Has("symbols"))
}

func TestNewRejectsBadAuthoring(t *testing.T) {
	a := mk("a", layout.Primary, nil)

	_, err := New("a", a, mk("a", layout.Secondary, nil))
	assert.True(t, errors.Is(err, errors.ErrCodeDuplicateLayout))

	_, err = New("missing", a)
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownLayout))

	dangling := mk("b", layout.Primary, func(b *layout.Builder) {
		b.Layout(layout.MidTop, layout.OutTop, "nowhere", layout.TextLabel("?"))
	})
	_, err = New("b", dangling)
	require.Error(t, err)
	se, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, "nowhere", se.Details["layout"])
	assert.Equal(t, "b", se.Details["referencedBy"])

	back := mk("s", layout.Secondary, func(b *layout.Builder) {
		b.Layout(layout.MidTop, layout.OutTop, layout.TargetPrimary, layout.TextLabel("abc"))
	})
	_, err = New("s", back)
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownLayout), "reserved target needs a primary layout")

	_, err = New("s", back, a)
	assert.NoError(t, err)
}

func TestStepPrimary(t *testing.T) {
	p1 := mk("p1", layout.Primary, nil)
	s := mk("s", layout.Secondary, nil)
	p2 := mk("p2", layout.Primary, nil)
	p3 := mk("p3", layout.Primary, nil)

	b, err := New("p1", p1, s, p2, p3)
	require.NoError(t, err)

	assert.Same(t, p2, b.StepPrimary(p1, 1))
	assert.Same(t, p1, b.StepPrimary(p3, 1))
	assert.Same(t, p3, b.StepPrimary(p1, -1))
	assert.Same(t, p2, b.StepPrimary(s, 1), "non-primary steps from the first")
}

func TestNewUncheckedAcceptsDanglingTargets(t *testing.T) {
	dangling := mk("b", layout.Primary, func(b *layout.Builder) {
		b.Layout(layout.MidTop, layout.OutTop, "nowhere", layout.TextLabel("?"))
	})

	b, err := NewUnchecked("b", dangling)
	require.NoError(t, err)
	assert.False(t, b.Has("nowhere"))

	_, err = NewUnchecked("b", dangling, dangling)
	assert.True(t, errors.Is(err, errors.ErrCodeDuplicateLayout))
}
