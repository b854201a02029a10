package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
)

// ErrorCode names a failure class. Codes are stable and appear in JSON
// output and WebSocket error frames.
type ErrorCode string

const (
	ErrCodeUnknownLayout   ErrorCode = "UNKNOWN_LAYOUT"
	ErrCodeDuplicateLayout ErrorCode = "DUPLICATE_LAYOUT"
	ErrCodeInvalidZone     ErrorCode = "INVALID_ZONE"

	ErrCodeScriptSyntax ErrorCode = "SCRIPT_SYNTAX"

	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// StrokeError is a coded error with optional details for the CLI and the
// socket protocol.
type StrokeError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

func (e *StrokeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *StrokeError) Unwrap() error {
	return e.Cause
}

// WithDetail records key on e and returns e for chaining.
func (e *StrokeError) WithDetail(key string, value interface{}) *StrokeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON renders e indented, omitting the cause.
func (e *StrokeError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

func New(code ErrorCode, message string) *StrokeError {
	return &StrokeError{Code: code, Message: message}
}

// Wrap attaches code and message to err.
func Wrap(err error, code ErrorCode, message string) *StrokeError {
	return &StrokeError{Code: code, Message: message, Cause: err}
}

// Is reports whether any StrokeError in err's chain carries code.
func Is(err error, code ErrorCode) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the first StrokeError in err's chain, or ""
// when there is none.
func GetCode(err error) ErrorCode {
	if se, ok := As(err); ok {
		return se.Code
	}
	return ""
}

// As returns the first StrokeError in err's chain.
func As(err error) (*StrokeError, bool) {
	var se *StrokeError
	if stderrors.As(err, &se) {
		return se, true
	}
	return nil, false
}
