package layout

import (
	"fmt"

	"github.com/grovetools/stroke/keycode"
)

// ActionKind tags the variant held by an Action.
type ActionKind uint8

const (
	ActionText ActionKind = iota + 1
	ActionKeyCode
	ActionLayout
)

func (k ActionKind) String() string {
	switch k {
	case ActionText:
		return "text"
	case ActionKeyCode:
		return "keycode"
	case ActionLayout:
		return "layout"
	}
	return "none"
}

// Reserved layout targets resolved by the dispatcher against the session
// instead of by name.
const (
	TargetPrimary = "@primary" // last active primary layout
	TargetNext    = "@next"    // next primary layout in bank order
	TargetPrev    = "@prev"    // previous primary layout in bank order
)

// IsReservedTarget reports whether name is one of the reserved targets.
func IsReservedTarget(name string) bool {
	return name == TargetPrimary || name == TargetNext || name == TargetPrev
}

// Action is what a stroke does. Only the field matching Kind is set.
// Actions are plain values; two actions are equal when their fields are.
type Action struct {
	Kind   ActionKind   `json:"kind" yaml:"kind"`
	Text   string       `json:"text,omitempty" yaml:"text,omitempty"`
	Code   keycode.Code `json:"code,omitempty" yaml:"code,omitempty"`
	Target string       `json:"target,omitempty" yaml:"target,omitempty"`
}

// TextAction emits value verbatim.
func TextAction(value string) Action {
	return Action{Kind: ActionText, Text: value}
}

// KeyCodeAction emits a raw key code.
func KeyCodeAction(code keycode.Code) Action {
	return Action{Kind: ActionKeyCode, Code: code}
}

// LayoutAction switches the active layout to target.
func LayoutAction(target string) Action {
	return Action{Kind: ActionLayout, Target: target}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionText:
		return fmt.Sprintf("text(%q)", a.Text)
	case ActionKeyCode:
		return fmt.Sprintf("keycode(%s)", a.Code)
	case ActionLayout:
		return fmt.Sprintf("layout(%s)", a.Target)
	}
	return "none"
}

// MarshalText encodes the kind by name.
func (k ActionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
