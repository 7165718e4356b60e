package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed client-side error carrying the HTTP status that
// produced it.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrUnauthorized = New("UNAUTHORIZED", http.StatusUnauthorized, "session invalid")
	ErrForbidden    = New("FORBIDDEN", http.StatusForbidden, "forbidden")
	ErrNotFound     = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrValidation   = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrTransport    = New("TRANSPORT_ERROR", 0, "request failed")
	ErrServer       = New("SERVER_ERROR", http.StatusInternalServerError, "server error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrTransport.Code, ErrTransport.Status, ErrTransport.Message)
}

// FromStatus builds an Error from an HTTP response status and the server's
// message body, falling back to a fixed message when the body carried none.
func FromStatus(status int, message string) *Error {
	if message == "" {
		message = fallbackMessage(status)
	}
	switch status {
	case http.StatusUnauthorized:
		return Clone(ErrUnauthorized, message)
	case http.StatusForbidden:
		return Clone(ErrForbidden, message)
	case http.StatusNotFound:
		return Clone(ErrNotFound, message)
	case http.StatusBadRequest:
		return Clone(ErrValidation, message)
	default:
		return &Error{Code: ErrServer.Code, Status: status, Message: message}
	}
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// IsNotFound reports whether err is the tagged 404 error. Callers treat it as
// non-fatal.
func IsNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

// IsUnauthorized reports whether err signals an invalid session.
func IsUnauthorized(err error) bool {
	return statusOf(err) == http.StatusUnauthorized
}

func statusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

func fallbackMessage(status int) string {
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "request failed"
}
