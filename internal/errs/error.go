package errs

import "strings"

// Kind classifies an Error.
type Kind string

const (
	KindNotFound      Kind = "not_found"
	KindAlreadyExists Kind = "already_exists"
	KindInvalid       Kind = "invalid"
	KindUnavailable   Kind = "unavailable"
	KindInternal      Kind = "internal"
)

// FieldError represents a field-level error, e.g. a NOT NULL violation.
//
//	{ "field": "email", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Error is the main application error type.
//
// Fields:
//   - Kind: category used for errors.Is matching.
//   - Code: machine-friendly code (e.g. "USER_ALREADY_EXISTS").
//   - Message: human-friendly message.
//   - Override: the message is safe to show to end users as-is.
//   - Errors: per-field errors.
type Error struct {
	Kind     Kind         `json:"kind"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors,omitempty"`

	cause error
}

// Error makes *Error satisfy the built-in `error` interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying driver error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error of the same Kind.
//
// A target with an empty Kind matches any *Error, so the sentinels below
// can be used with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == "" || t.Kind == e.Kind
}

// WithMessage returns a copy of this Error with Message replaced.
func (e *Error) WithMessage(message string) *Error {
	return &Error{
		Kind:     e.Kind,
		Code:     e.Code,
		Message:  message,
		Override: e.Override,
		Errors:   e.Errors,
		cause:    e.cause,
	}
}

// WithCause returns a copy of this Error wrapping cause.
func (e *Error) WithCause(cause error) *Error {
	return &Error{
		Kind:     e.Kind,
		Code:     e.Code,
		Message:  e.Message,
		Override: e.Override,
		Errors:   e.Errors,
		cause:    cause,
	}
}

// Sentinels for errors.Is checks.
var (
	ErrNotFound      = &Error{Kind: KindNotFound}
	ErrAlreadyExists = &Error{Kind: KindAlreadyExists}
	ErrInvalid       = &Error{Kind: KindInvalid}
	ErrUnavailable   = &Error{Kind: KindUnavailable}
	ErrInternal      = &Error{Kind: KindInternal}
)

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
//	"Not Found" -> "NOT_FOUND"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
