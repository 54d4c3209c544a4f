package errors

import (
	stderrors "errors"
	"fmt"
)

// Error kinds for the failures the interpreter can report. Every failed
// line maps to exactly one of these.
const (
	// Tokenizer errors
	ErrSyntax        = "SYNTAX_ERROR"
	ErrTooManyTokens = "TOO_MANY_TOKENS"

	// Dispatch errors
	ErrUnknownCommand = "UNKNOWN_COMMAND"
	ErrNotImplemented = "NOT_IMPLEMENTED"

	// Handler validation errors
	ErrUnknownSubcommand = "UNKNOWN_SUBCOMMAND"
	ErrUnknownPort       = "UNKNOWN_PORT"
	ErrUnknownPin        = "UNKNOWN_PIN"
	ErrUnknownDirection  = "UNKNOWN_DIRECTION"
	ErrUnknownSense      = "UNKNOWN_SENSE"
	ErrMissingArgument   = "MISSING_ARGUMENT"
)

// FetchError is a structured error with a kind and optional context.
type FetchError struct {
	Kind    string
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap allows error unwrapping
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// New creates a new FetchError
func New(kind, message string) *FetchError {
	return &FetchError{
		Kind:    kind,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// Newf creates a new FetchError with a formatted message
func Newf(kind, format string, args ...interface{}) *FetchError {
	return New(kind, fmt.Sprintf(format, args...))
}

// Wrap creates a new FetchError wrapping an existing error
func Wrap(kind, message string, cause error) *FetchError {
	return &FetchError{
		Kind:    kind,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds context information to the error
func (e *FetchError) WithContext(key string, value interface{}) *FetchError {
	e.Context[key] = value
	return e
}

// GetContext returns context value by key
func (e *FetchError) GetContext(key string) (interface{}, bool) {
	value, exists := e.Context[key]
	return value, exists
}

// IsKind checks if an error (or anything it wraps) is of a specific kind
func IsKind(err error, kind string) bool {
	var fe *FetchError
	if stderrors.As(err, &fe) {
		return fe.Kind == kind
	}
	return false
}

// KindOf returns the kind of err, or "" when err carries no kind
func KindOf(err error) string {
	var fe *FetchError
	if stderrors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}
