// Package errors provides structured error types for logoexport.
//
// Every failure that reaches the operator carries a machine-readable [Code] so
// the CLI can choose an exit message and tests can assert on the error class
// without matching strings.
//
// # Error Codes
//
//   - FILESYSTEM_ERROR: directory creation or file write/read failed
//   - INVALID_*: manifest, path, format or input validation failures
//   - TOOL_MISSING: an external rasterizer binary is not installed
//   - CONVERSION_FAILED: the external rasterizer exited with an error
//   - INTERNAL_ERROR: unexpected internal errors
//
// # Usage
//
//	err := errors.Wrap(errors.ErrCodeFilesystem, pathErr, "create %s", dir)
//	if errors.Is(err, errors.ErrCodeFilesystem) {
//	    // permission denied, read-only mount, disk full, ...
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Filesystem errors
	ErrCodeFilesystem Code = "FILESYSTEM_ERROR"

	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidManifest Code = "INVALID_MANIFEST"
	ErrCodeInvalidPath     Code = "INVALID_PATH"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"

	// External tool errors
	ErrCodeToolMissing Code = "TOOL_MISSING"
	ErrCodeConversion  Code = "CONVERSION_FAILED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
	Hint    string // Suggested fix shown by UserMessage (optional)
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

// WithHint sets a suggested fix, such as the command that creates a missing
// file, and returns e.
func (e *Error) WithHint(format string, args ...any) *Error {
	e.Hint = fmt.Sprintf(format, args...)
	return e
}

// Filesystem wraps a failed filesystem call as a FILESYSTEM_ERROR.
// It returns nil when cause is nil so callers can wrap unconditionally.
func Filesystem(cause error, format string, args ...any) error {
	if cause == nil {
		return nil
	}
	return Wrap(ErrCodeFilesystem, cause, format, args...)
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

// UserMessage returns the message shown to the operator: the message and
// cause without the code prefix, followed by the hint on its own line.
// Errors that are not *Error are returned as-is.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Hint != "" {
		msg += "\n" + e.Hint
	}
	return msg
}
