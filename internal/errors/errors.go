// Package errors provides error types with actionable suggestions for pocket.
// Errors carry a kind for errors.Is matching plus optional details that the
// CLI prints when a command fails.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrInvalidFormat indicates a display string that cannot be formatted.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrClipboard indicates the system clipboard could not be written.
	ErrClipboard = errors.New("clipboard error")
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("not found")
)

// PocketError is the base error type for pocket errors.
// It wraps an underlying error and provides additional context.
type PocketError struct {
	// Kind is the category of error (e.g., ErrConfig, ErrInvalidFormat).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., field name, offending value).
	Details map[string]string
}

// Error implements the error interface.
func (e *PocketError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *PocketError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error's kind matches target.
func (e *PocketError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with details and suggestion.
// Details are printed in key order so output is stable.
func (e *PocketError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n💡 Suggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *PocketError) WithDetails(key, value string) *PocketError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *PocketError) WithCause(cause error) *PocketError {
	e.Cause = cause
	return e
}

// New creates a new PocketError with the given kind and message.
func New(kind error, message string) *PocketError {
	return &PocketError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *PocketError {
	return &PocketError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *PocketError {
	return &PocketError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

// FormatAny renders err with Format when it is (or wraps) a PocketError,
// and as "Error: <msg>" otherwise.
func FormatAny(err error) string {
	if err == nil {
		return ""
	}
	var pe *PocketError
	if errors.As(err, &pe) {
		return pe.Format()
	}
	return "Error: " + err.Error() + "\n"
}
