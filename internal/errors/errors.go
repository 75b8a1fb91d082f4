package errors

import (
	"errors"
	"fmt"
)

// Code categorizes a quick roll failure
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeValidation indicates input that does not match any command grammar
	CodeValidation Code = "validation"

	// CodeNotFound indicates an alias or registered action that does not exist
	CodeNotFound Code = "not_found"

	// CodeOutOfRange indicates a numeric value outside of a lookup table
	CodeOutOfRange Code = "out_of_range"

	// CodeUnavailable indicates a host capability that is not wired up
	CodeUnavailable Code = "unavailable"

	// CodeInvalidArgument indicates a caller supplied an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeInternal indicates an unexpected failure inside a collaborator
	CodeInternal Code = "internal"
)

// Error is an application error carrying a code, a user readable message and metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error, keeping the code of a wrapped *Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var qrErr *Error
	if errors.As(err, &qrErr) {
		return &Error{
			Code:    qrErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(qrErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error and forces the code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// Validation creates a grammar mismatch error
func Validation(message string) *Error {
	return New(CodeValidation, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// OutOfRange creates an out of range error
func OutOfRange(message string) *Error {
	return New(CodeOutOfRange, message)
}

// Unavailable creates a capability unavailable error
func Unavailable(message string) *Error {
	return New(CodeUnavailable, message)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// Is checks if the error carries the given code
func Is(err error, code Code) bool {
	var qrErr *Error
	if errors.As(err, &qrErr) {
		return qrErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsUnavailable checks if the error is an unavailable error
func IsUnavailable(err error) bool {
	return Is(err, CodeUnavailable)
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return Is(err, CodeValidation)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var qrErr *Error
	if errors.As(err, &qrErr) {
		return qrErr.Code
	}
	return CodeUnknown
}

// UserMessage returns the message meant for the person who typed the input.
// Errors that are not an *Error get the fallback.
func UserMessage(err error, fallback string) string {
	var qrErr *Error
	if errors.As(err, &qrErr) && qrErr.Message != "" {
		return qrErr.Message
	}
	return fallback
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
