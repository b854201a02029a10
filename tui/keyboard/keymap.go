package keyboard

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/stroke/layout"
)

// zoneKeys maps keyboard keys to zones. The nine inner zones sit on the left
// hand's home block; arrows leave the key face.
var zoneKeys = map[string]layout.Zone{
	"q": layout.LeftTop, "w": layout.MidTop, "e": layout.RightTop,
	"a": layout.LeftMid, "s": layout.Center, "d": layout.RightMid,
	"z": layout.LeftBottom, "x": layout.MidBottom, "c": layout.RightBottom,

	"up":    layout.OutTop,
	"right": layout.OutRight,
	"down":  layout.OutBottom,
	"left":  layout.OutLeft,
}

// ZoneForKey returns the zone bound to a key string as reported by
// tea.KeyMsg.String.
func ZoneForKey(k string) (layout.Zone, bool) {
	z, ok := zoneKeys[k]
	return z, ok
}

// KeyMap defines the keybindings for the keyboard TUI.
type KeyMap struct {
	Inner      key.Binding
	Outer      key.Binding
	Cancel     key.Binding
	NextLayout key.Binding
	PrevLayout key.Binding
	Clear      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap is the default set of keybindings.
var DefaultKeyMap = KeyMap{
	Inner: key.NewBinding(
		key.WithKeys("q", "w", "e", "a", "s", "d", "z", "x", "c"),
		key.WithHelp("qwe/asd/zxc", "start or end a stroke"),
	),
	Outer: key.NewBinding(
		key.WithKeys("up", "right", "down", "left"),
		key.WithHelp("←↑→↓", "end outside the key"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel stroke"),
	),
	NextLayout: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next layout"),
	),
	PrevLayout: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-tab", "prev layout"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("C-l", "clear text"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Inner, k.Outer, k.Cancel, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Inner, k.Outer, k.Cancel},
		{k.NextLayout, k.PrevLayout, k.Clear},
		{k.Help, k.Quit},
	}
}
