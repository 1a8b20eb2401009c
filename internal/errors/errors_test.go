package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestPocketError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *PocketError
		expected string
	}{
		{
			name:     "simple message",
			err:      New(ErrConfig, "bad config"),
			expected: "bad config",
		},
		{
			name: "with cause",
			err: &PocketError{
				Kind:    ErrConfig,
				Message: "config error",
				Cause:   errors.New("parse error"),
			},
			expected: "config error: parse error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPocketError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(cause, ErrClipboard, "wrapped error")

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Without cause, should return Kind
	errNoWrap := New(ErrInvalidFormat, "no cause")
	if !errors.Is(errors.Unwrap(errNoWrap), ErrInvalidFormat) {
		t.Errorf("Unwrap() should return Kind when no cause")
	}
}

func TestPocketError_Is(t *testing.T) {
	err := New(ErrInvalidFormat, "bad number")

	if !errors.Is(err, ErrInvalidFormat) {
		t.Error("errors.Is should return true for matching Kind")
	}
	if errors.Is(err, ErrConfig) {
		t.Error("errors.Is should return false for non-matching Kind")
	}

	// Wrapped errors should still match both kinds
	wrapped := Wrap(err, ErrConfig, "wrapped")
	if !errors.Is(wrapped, ErrConfig) {
		t.Error("errors.Is should return true for wrapped error Kind")
	}
	if !errors.Is(wrapped, ErrInvalidFormat) {
		t.Error("errors.Is should see the inner Kind through Cause")
	}
}

func TestPocketError_Format(t *testing.T) {
	err := &PocketError{
		Kind:       ErrConfig,
		Message:    "invalid configuration",
		Suggestion: "Run 'pocket init'",
		Details: map[string]string{
			"path":  "config.yaml",
			"field": "card.balance",
		},
	}

	formatted := err.Format()

	if !strings.Contains(formatted, "Error: invalid configuration") {
		t.Error("Format() should contain error message")
	}
	if !strings.Contains(formatted, "💡 Suggestion: Run 'pocket init'") {
		t.Error("Format() should contain suggestion")
	}
	// Details are sorted by key
	fieldIdx := strings.Index(formatted, "field: card.balance")
	pathIdx := strings.Index(formatted, "path: config.yaml")
	if fieldIdx < 0 || pathIdx < 0 {
		t.Fatalf("Format() should contain details, got:\n%s", formatted)
	}
	if fieldIdx > pathIdx {
		t.Error("Format() should print details in key order")
	}
}

func TestPocketError_WithDetails(t *testing.T) {
	err := New(ErrConfig, "config error")
	err.WithDetails("file", "config.yaml").WithDetails("line", "42")

	if err.Details["file"] != "config.yaml" {
		t.Error("WithDetails should set key")
	}
	if err.Details["line"] != "42" {
		t.Error("WithDetails should allow chaining")
	}
}

func TestPocketError_WithCause(t *testing.T) {
	cause := errors.New("root cause")
	err := New(ErrClipboard, "copy failed").WithCause(cause)

	if !errors.Is(err, cause) {
		t.Error("WithCause should set cause")
	}
}

func TestWithSuggestion(t *testing.T) {
	err := WithSuggestion(ErrNotFound, "missing", "Create it")

	if err.Suggestion != "Create it" {
		t.Error("WithSuggestion should set Suggestion")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("WithSuggestion should set Kind")
	}
}

func TestFormatAny(t *testing.T) {
	if FormatAny(nil) != "" {
		t.Error("FormatAny(nil) should be empty")
	}

	plain := FormatAny(errors.New("boom"))
	if plain != "Error: boom\n" {
		t.Errorf("FormatAny(plain) = %q", plain)
	}

	wrapped := fmt.Errorf("loading: %w", InvalidBalance("7"))
	out := FormatAny(wrapped)
	if !strings.Contains(out, "Suggestion") {
		t.Errorf("FormatAny should use PocketError.Format for wrapped errors, got %q", out)
	}
}
