package errors

import (
	"fmt"
	"testing"
)

func TestStrokeError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeUnknownLayout, "layout not found")
	if err.Code != ErrCodeUnknownLayout {
		t.Errorf("expected code %s, got %s", ErrCodeUnknownLayout, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeConfigInvalid, "config invalid")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeConfigInvalid) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeUnknownLayout) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("layout", "latin").WithDetail("line", 3)
	if detailed.Details["layout"] != "latin" {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	err := UnknownLayout("klingon")
	if err.Code != ErrCodeUnknownLayout {
		t.Errorf("expected code %s, got %s", ErrCodeUnknownLayout, err.Code)
	}
	if err.Details["layout"] != "klingon" {
		t.Error("UnknownLayout should include layout detail")
	}

	err = InvalidZone(0x1, 0xF)
	if err.Code != ErrCodeInvalidZone {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidZone, err.Code)
	}
	if err.Details["end"] != 0xF {
		t.Error("InvalidZone should include end detail")
	}

	err = ScriptSyntax(12, "unknown zone")
	if err.Details["line"] != 12 {
		t.Error("ScriptSyntax should include line detail")
	}
}

func TestGetCodeThroughWrapping(t *testing.T) {
	inner := UnknownLayout("x")
	outer := fmt.Errorf("switching: %w", inner)

	if got := GetCode(outer); got != ErrCodeUnknownLayout {
		t.Errorf("GetCode() = %s, want %s", got, ErrCodeUnknownLayout)
	}

	found, ok := As(outer)
	if !ok || found != inner {
		t.Error("As should find the wrapped StrokeError")
	}

	if _, ok := As(fmt.Errorf("plain")); ok {
		t.Error("As should not find a StrokeError in a plain error")
	}
}
