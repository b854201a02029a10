package errors

import (
	"fmt"
)

// UnknownLayout creates an error for a layout name that is not registered in the bank.
func UnknownLayout(name string) *StrokeError {
	return New(ErrCodeUnknownLayout, fmt.Sprintf("layout '%s' is not registered", name)).
		WithDetail("layout", name)
}

// DuplicateLayout creates an error for a layout name registered twice.
func DuplicateLayout(name string) *StrokeError {
	return New(ErrCodeDuplicateLayout, fmt.Sprintf("layout '%s' is registered more than once", name)).
		WithDetail("layout", name)
}

// InvalidZone creates an error for a stroke whose zones are outside the zone set.
func InvalidZone(start, end int) *StrokeError {
	return New(ErrCodeInvalidZone, fmt.Sprintf("invalid stroke zones %#x -> %#x", start, end)).
		WithDetail("start", start).
		WithDetail("end", end)
}

// ScriptSyntax creates a stroke script parse error
func ScriptSyntax(line int, reason string) *StrokeError {
	return New(ErrCodeScriptSyntax, fmt.Sprintf("line %d: %s", line, reason)).
		WithDetail("line", line)
}

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *StrokeError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *StrokeError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}
