package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures for the top-level handler. Every error is
// converted to exactly one user-facing line; the underlying detail is only
// shown in debug mode.
type ErrorKind string

const (
	KindConfiguration  ErrorKind = "configuration"
	KindNetwork        ErrorKind = "network"
	KindAPI            ErrorKind = "api"
	KindResponseFormat ErrorKind = "response_format"
	KindUsage          ErrorKind = "usage"
	KindUnknown        ErrorKind = "unknown"
)

// Error carries a user-facing message plus the wrapped technical cause.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a classified error.
func NewError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// ConfigurationError marks missing config files or invalid API keys.
func ConfigurationError(message string, err error) *Error {
	return NewError(KindConfiguration, message, err)
}

// NetworkError marks unreachable hosts and timeouts.
func NetworkError(message string, err error) *Error {
	return NewError(KindNetwork, message, err)
}

// APIError marks non-2xx responses from the generative endpoint.
func APIError(message string, err error) *Error {
	return NewError(KindAPI, message, err)
}

// ResponseFormatError marks invalid JSON or schema mismatches in the
// model's output.
func ResponseFormatError(message string, err error) *Error {
	return NewError(KindResponseFormat, message, err)
}

// UsageError marks CLI flag or argument misuse.
func UsageError(message string) *Error {
	return NewError(KindUsage, message, nil)
}

// KindOf extracts the classification from an error chain.
func KindOf(err error) ErrorKind {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}
	return KindUnknown
}

// UserMessage returns the one-line explanation for err. Errors that were
// never classified fall back to a generic message so a raw cause is never
// shown outside debug mode.
func UserMessage(err error) string {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Message
	}
	return "An unexpected error occurred."
}
