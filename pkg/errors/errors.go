// Package errors provides coded errors for casement.
//
// Every error that crosses a surface (CLI, terminal form, HTTP) carries a
// [Code] so the surface can tell "fix your input" from "try again later"
// without parsing messages. Validation errors additionally name the spec
// field that failed, which the HTTP surface returns and the form
// highlights.
//
// Codes:
//   - INVALID_*: the caller's input was rejected ([IsValidation])
//   - FILE_NOT_FOUND: a spec or config path does not exist
//   - RENDER_FAILED: a model or quotation could not be produced
//   - UNSUPPORTED: the requested output needs a missing external tool
//   - INTERNAL_ERROR: anything else
//
// Usage:
//
//	err := errors.Invalid(errors.ErrCodeInvalidDimension, "height", "height must be positive, got %v", h)
//	errors.FieldOf(err) // "height"
//
//	err = errors.Wrap(errors.ErrCodeRenderFailed, cause, "convert %s", format)
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidDimension Code = "INVALID_DIMENSION"
	ErrCodeInvalidQuantity  Code = "INVALID_QUANTITY"
	ErrCodeInvalidRate      Code = "INVALID_RATE"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidTemplate  Code = "INVALID_TEMPLATE"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeRenderFailed Code = "RENDER_FAILED"
	ErrCodeUnsupported  Code = "UNSUPPORTED"
	ErrCodeInternal     Code = "INTERNAL_ERROR"
)

var validationCodes = map[Code]bool{
	ErrCodeInvalidInput:     true,
	ErrCodeInvalidDimension: true,
	ErrCodeInvalidQuantity:  true,
	ErrCodeInvalidRate:      true,
	ErrCodeInvalidFormat:    true,
	ErrCodeInvalidTemplate:  true,
	ErrCodeInvalidPath:      true,
}

// Error is a coded error with an optional spec field and cause.
type Error struct {
	Code    Code
	Field   string // spec field that failed validation, if any
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error with code and a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Invalid returns a validation error for one spec field.
func Invalid(code Code, field, format string, args ...any) *Error {
	return &Error{Code: code, Field: field, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an error with code that wraps cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the first *Error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	if e, ok := asError(err); ok {
		return e.Code
	}
	return ""
}

// FieldOf returns the spec field named by the first *Error in err's
// chain, or "".
func FieldOf(err error) string {
	if e, ok := asError(err); ok {
		return e.Field
	}
	return ""
}

// UserMessage returns the message without the code prefix and cause, or
// err.Error() for uncoded errors.
func UserMessage(err error) string {
	if e, ok := asError(err); ok {
		return e.Message
	}
	return err.Error()
}

// IsValidation reports whether err carries one of the INVALID_* codes.
func IsValidation(err error) bool {
	return validationCodes[GetCode(err)]
}

func asError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
