// Package errors provides structured error types for the popper engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// All codes describe construction-time or configuration-time validation
// failures. There is no recoverable runtime error category in the
// positioning path: degenerate geometry produces a defined coordinate
// rather than an error.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidOffsetDistance, "offset must be finite, got %v", offset)
//	if errors.Is(err, errors.ErrCodeInvalidOffsetDistance) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidEnvironment, origErr, "environment is incomplete")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for validation failures.
const (
	// Element validation errors
	ErrCodeInvalidReferenceElement Code = "INVALID_REFERENCE_ELEMENT"
	ErrCodeInvalidPopperElement    Code = "INVALID_POPPER_ELEMENT"
	ErrCodeInvalidTriggerElement   Code = "INVALID_TRIGGER_ELEMENT"
	ErrCodeInvalidContentElement   Code = "INVALID_CONTENT_ELEMENT"

	// Configuration validation errors
	ErrCodeInvalidOffsetDistance Code = "INVALID_OFFSET_DISTANCE"
	ErrCodeInvalidPlacement      Code = "INVALID_PLACEMENT"
	ErrCodeInvalidEnvironment    Code = "INVALID_ENVIRONMENT"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
