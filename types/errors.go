package types

import "errors"

// Kind classifies an error raised by this module. Kinds are stable: callers
// can branch on them without string matching.
type Kind string

const (
	// KindValidation marks an action or menu that failed construction
	// validation.
	KindValidation Kind = "validation"
	// KindEncoding marks a failure while encoding an action into callback data.
	KindEncoding Kind = "encoding"
	// KindMalformed marks callback data that cannot be parsed.
	KindMalformed Kind = "malformed"
	// KindNotFound marks callback data whose stored payload is missing or expired.
	KindNotFound Kind = "not_found"
	// KindStorage marks a storage backend failure.
	KindStorage Kind = "storage"
)

// Error is the structured error type used across the module. It carries a
// stable Kind, a human-readable message, and the causing error when one
// exists.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap exposes the causing error to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError builds an Error with the given kind and message.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError builds an Error that records cause as the underlying error.
func WrapError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// IsKind reports whether err, or any error it wraps, is an Error of the
// given kind.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Unwrap()
	}
	return false
}
