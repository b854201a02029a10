package keycode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsShift(t *testing.T) {
	assert.True(t, ShiftLeft.IsShift())
	assert.True(t, ShiftRight.IsShift())
	assert.False(t, Enter.IsShift())
	assert.False(t, Del.IsShift())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Code
	}{
		{"enter", Enter},
		{" Backspace ", Del},
		{"66", Enter},
		{"200", Code(200)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Parse("hyper")
	assert.Error(t, err)
	_, err = Parse("-3")
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	assert.Equal(t, "shift", ShiftLeft.String())
	assert.Equal(t, "200", Code(200).String())
	assert.Contains(t, Names(), "enter")
}
