// Package errors provides structured error types for foldcut.
//
// Every failure surfaced by the generators carries a machine-readable code so
// the CLI can tell an infeasible parameter set apart from an I/O problem:
//   - INVALID_*: configuration validation failures, raised before any
//     geometry is emitted
//   - INFEASIBLE_BRANCH: parameters that leave no room for the lead-in cuts
//   - DEGENERATE_GEOMETRY: numeric domain errors in the geometry kernel
//   - IO / INTERNAL: output and unexpected failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidBeamCount, "beam_count must be >= 1, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidBeamCount) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"
	ErrCodeInvalidGrid      Code = "INVALID_GRID"
	ErrCodeInvalidBeamCount Code = "INVALID_BEAM_COUNT"
	ErrCodeInfeasibleBranch Code = "INFEASIBLE_BRANCH"
	ErrCodeMaskLength       Code = "MASK_LENGTH"
	ErrCodeInvalidPrimitive Code = "INVALID_PRIMITIVE"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidFamily    Code = "INVALID_FAMILY"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	// Numeric domain errors
	ErrCodeDegenerateGeometry Code = "DEGENERATE_GEOMETRY"

	// Resource errors
	ErrCodePresetNotFound Code = "PRESET_NOT_FOUND"
	ErrCodeIO             Code = "IO_ERROR"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message and cause without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + e.Cause.Error()
		}
		return e.Message
	}
	return err.Error()
}

// IsValidation reports whether err is a configuration error, i.e. one that
// is raised before any geometry is emitted.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidConfig, ErrCodeInvalidGrid, ErrCodeInvalidBeamCount,
		ErrCodeInfeasibleBranch, ErrCodeMaskLength, ErrCodeInvalidFormat,
		ErrCodeInvalidFamily, ErrCodeInvalidPath:
		return true
	}
	return false
}
