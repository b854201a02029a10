package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/stroke/errors"
	"github.com/grovetools/stroke/schema"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler writing to stderr
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a message for err based on its code and returns err unchanged.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	strokeErr, _ := errors.As(err)

	switch errors.GetCode(err) {
	case errors.ErrCodeUnknownLayout:
		fmt.Fprintf(h.Out, "❌ Layout '%v' is not registered\n", strokeErr.Details["layout"])
		fmt.Fprintf(h.Out, "Run 'stroke layouts' to see available layouts.\n")

	case errors.ErrCodeDuplicateLayout:
		fmt.Fprintf(h.Out, "❌ Layout '%v' is registered more than once\n", strokeErr.Details["layout"])

	case errors.ErrCodeInvalidZone:
		fmt.Fprintf(h.Out, "❌ %s\n", strokeErr.Message)
		fmt.Fprintf(h.Out, "Zones are lt mt rt lm mc rm lb mb rb, plus ot ol or ob for outer ends.\n")

	case errors.ErrCodeScriptSyntax:
		fmt.Fprintf(h.Out, "❌ Stroke script error, %s\n", strokeErr.Message)

	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(h.Out, "❌ Configuration not found. Create a stroke.yml or pass --config.\n")

	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		fmt.Fprintf(h.Out, "❌ Invalid configuration: %s\n", strokeErr.Message)
		if path, ok := strokeErr.Details["path"]; ok {
			fmt.Fprintf(h.Out, "File: %v\n", path)
		}
		if issues, ok := strokeErr.Details["issues"].(schema.Issues); ok {
			for _, i := range issues {
				fmt.Fprintf(h.Out, "  %s %s\n", i.Pointer, i.Message)
			}
		}

	default:
		fmt.Fprintf(h.Out, "❌ Error: %v\n", err)
	}

	if h.Verbose && strokeErr != nil {
		fmt.Fprintf(h.Out, "\nError details:\n%s\n", strokeErr.ToJSON())
	}
	return err
}
