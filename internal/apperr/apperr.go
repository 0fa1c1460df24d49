package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies a service-layer failure for HTTP mapping.
type Code int

const (
	CodeValidation Code = iota + 1
	CodeUnsupportedMediaType
	CodePayloadTooLarge
	CodeNotFound
	CodeUnauthorized
	CodeStorage
	CodeInternal
)

// Error is the service-layer error carried up to the handlers. Fields is
// populated for validation failures so callers can see which inputs were
// rejected.
type Error struct {
	Code    Code
	Message string
	Fields  []string
	cause   error
}

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s (fields: %s)", e.Message, strings.Join(e.Fields, ", "))
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Validation builds a validation error naming the offending fields.
func Validation(message string, fields ...string) *Error {
	return &Error{Code: CodeValidation, Message: message, Fields: fields}
}

func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Code: CodeUnauthorized, Message: message}
}

// Storage wraps an underlying I/O or database failure. The cause is kept
// for logs, the message is what the caller sees.
func Storage(message string, cause error) *Error {
	return &Error{Code: CodeStorage, Message: message, cause: cause}
}

// As extracts an *Error from an error chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is reports whether err is an *Error with the given code.
func Is(err error, code Code) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == code
}
