package layout

import (
	"fmt"
	"strings"
)

// ShiftState is the keyboard's shift mode.
type ShiftState uint8

const (
	ShiftOff  ShiftState = iota // next letter lowercase
	ShiftOn                     // next letter uppercase, then back to Off
	ShiftLock                   // uppercase until toggled off
)

// Row selects one of the two stored rows of a layout's stroke table.
type Row uint8

const (
	RowLower Row = iota
	RowUpper
)

// Next returns the state after a shift stroke: Off -> On -> Lock -> Off.
func (s ShiftState) Next() ShiftState {
	switch s {
	case ShiftOff:
		return ShiftOn
	case ShiftOn:
		return ShiftLock
	default:
		return ShiftOff
	}
}

// Row maps the shift state to the table row it reads from.
func (s ShiftState) Row() Row {
	if s == ShiftOff {
		return RowLower
	}
	return RowUpper
}

func (s ShiftState) String() string {
	switch s {
	case ShiftOff:
		return "off"
	case ShiftOn:
		return "on"
	case ShiftLock:
		return "lock"
	}
	return fmt.Sprintf("shift(%d)", uint8(s))
}

// ParseShiftState parses "off", "on" or "lock".
func ParseShiftState(s string) (ShiftState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "":
		return ShiftOff, nil
	case "on":
		return ShiftOn, nil
	case "lock":
		return ShiftLock, nil
	}
	return ShiftOff, fmt.Errorf("unknown shift state %q (want off, on or lock)", s)
}

func (r Row) String() string {
	if r == RowUpper {
		return "upper"
	}
	return "lower"
}

// MarshalText encodes the shift state by name.
func (s ShiftState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes "off", "on" or "lock".
func (s *ShiftState) UnmarshalText(text []byte) error {
	parsed, err := ParseShiftState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText encodes the row by name.
func (r Row) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
