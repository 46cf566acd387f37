// Package errors provides the coded error type used across sugary.
//
// Codes are stable strings so tests and callers can branch on the kind of
// failure without matching message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Layout errors
	ErrInvalidWidth ErrorCode = "INVALID_WIDTH"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Check suite errors
	ErrStrictFailure ErrorCode = "STRICT_FAILURE"
)

// SugaryError represents a structured error with code and details
type SugaryError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SugaryError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SugaryError) Unwrap() error {
	return e.Wrapped
}

// Is matches any SugaryError carrying the same code.
func (e *SugaryError) Is(target error) bool {
	var targetErr *SugaryError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SugaryError with the given code and message
func New(code ErrorCode, message string) *SugaryError {
	return &SugaryError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SugaryError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SugaryError {
	return &SugaryError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SugaryError
func Wrap(err error, code ErrorCode, message string) *SugaryError {
	if err == nil {
		return nil
	}
	return &SugaryError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SugaryError {
	if err == nil {
		return nil
	}
	return &SugaryError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// InvalidWidth reports a non-positive column count or panel width.
func InvalidWidth(param string, width int) *SugaryError {
	return Newf(ErrInvalidWidth, "%s must be positive, got %d", param, width).
		WithDetail("param", param).
		WithDetail("width", width)
}

// WithDetail adds a detail to the error
func (e *SugaryError) WithDetail(key string, value interface{}) *SugaryError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *SugaryError) WithDetails(details map[string]interface{}) *SugaryError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var sugaryErr *SugaryError
	if errors.As(err, &sugaryErr) {
		return sugaryErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SugaryError
func GetErrorCode(err error) ErrorCode {
	var sugaryErr *SugaryError
	if errors.As(err, &sugaryErr) {
		return sugaryErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SugaryError
func GetErrorDetails(err error) map[string]interface{} {
	var sugaryErr *SugaryError
	if errors.As(err, &sugaryErr) {
		return sugaryErr.Details
	}
	return nil
}
