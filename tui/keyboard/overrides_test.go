package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyOverrides(t *testing.T) {
	km := DefaultKeyMap
	ApplyOverrides(&km, map[string][]string{
		"next_layout": {"ctrl+n", "q"},
		"quit":        {"ctrl+q"},
		"clear":       {"s"},
		"inner":       {"1"},
		"unknown":     {"ctrl+x"},
	})

	assert.Equal(t, []string{"ctrl+n"}, km.NextLayout.Keys())
	assert.Equal(t, "ctrl+n", km.NextLayout.Help().Key)
	assert.Equal(t, "next layout", km.NextLayout.Help().Desc)
	assert.Equal(t, []string{"ctrl+q"}, km.Quit.Keys())

	// zone keys are never rebound
	assert.Equal(t, DefaultKeyMap.Clear.Keys(), km.Clear.Keys())
	assert.Equal(t, DefaultKeyMap.Inner.Keys(), km.Inner.Keys())

	// the package default is untouched
	assert.Equal(t, []string{"tab"}, DefaultKeyMap.NextLayout.Keys())
}

func TestCamelToSnake(t *testing.T) {
	assert.Equal(t, "next_layout", camelToSnake("NextLayout"))
	assert.Equal(t, "quit", camelToSnake("Quit"))
}
