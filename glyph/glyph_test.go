package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlyphText(t *testing.T) {
	assert.Equal(t, "⇧", Shift.Text())
	assert.Equal(t, "shift-lock", ShiftLock.String())
	assert.True(t, Enter.Valid())
	assert.False(t, None.Valid())
	assert.Equal(t, "", None.Text())
	assert.Equal(t, "none", Glyph(99).String())
}
