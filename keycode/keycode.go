// Package keycode defines the raw key codes a stroke can emit.
// Values follow the Android KeyEvent numbering so a host on that platform can
// forward them unchanged.
package keycode

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Code is a raw key code.
type Code int

const (
	Unknown Code = 0

	DpadUp    Code = 19
	DpadDown  Code = 20
	DpadLeft  Code = 21
	DpadRight Code = 22

	A Code = 29
	C Code = 31
	V Code = 50
	X Code = 52
	Z Code = 54

	AltLeft    Code = 57
	ShiftLeft  Code = 59
	ShiftRight Code = 60
	Tab        Code = 61
	Space      Code = 62
	Enter      Code = 66
	Del        Code = 67 // backspace
	Escape     Code = 111
	ForwardDel Code = 112
	CtrlLeft   Code = 113
	MoveHome   Code = 122
	MoveEnd    Code = 123
)

var names = map[Code]string{
	DpadUp:     "up",
	DpadDown:   "down",
	DpadLeft:   "left",
	DpadRight:  "right",
	A:          "a",
	C:          "c",
	V:          "v",
	X:          "x",
	Z:          "z",
	AltLeft:    "alt",
	ShiftLeft:  "shift",
	ShiftRight: "shift-right",
	Tab:        "tab",
	Space:      "space",
	Enter:      "enter",
	Del:        "backspace",
	Escape:     "escape",
	ForwardDel: "delete",
	CtrlLeft:   "ctrl",
	MoveHome:   "home",
	MoveEnd:    "end",
}

var byName = func() map[string]Code {
	m := make(map[string]Code, len(names))
	for code, name := range names {
		m[name] = code
	}
	return m
}()

// IsShift reports whether the code denotes a shift key.
func (c Code) IsShift() bool {
	return c == ShiftLeft || c == ShiftRight
}

// String returns the key name, or the numeric code when unnamed.
func (c Code) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return strconv.Itoa(int(c))
}

// Parse accepts a key name ("enter") or a decimal code ("66").
func Parse(s string) (Code, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if code, ok := byName[s]; ok {
		return code, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return Unknown, fmt.Errorf("unknown key code %q", s)
	}
	return Code(n), nil
}

// Names returns all known key names, sorted.
func Names() []string {
	out := make([]string, 0, len(byName))
	for name := range byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// MarshalText encodes the code by name when it has one.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
