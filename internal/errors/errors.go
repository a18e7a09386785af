package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents the type of error that occurred
type ErrorCode int

const (
	UnknownErrorCode ErrorCode = iota
	UsageErrorCode
	FileSystemErrorCode
	AnalysisErrorCode
	GenerationErrorCode
)

// String returns the string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case UsageErrorCode:
		return "UsageError"
	case FileSystemErrorCode:
		return "FileSystemError"
	case AnalysisErrorCode:
		return "AnalysisError"
	case GenerationErrorCode:
		return "GenerationError"
	default:
		return "UnknownError"
	}
}

// BaseError carries an error code and optional cause for every tool error
type BaseError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *BaseError) Unwrap() error {
	return e.Cause
}

// New creates a new BaseError without a cause
func New(code ErrorCode, format string, args ...interface{}) *BaseError {
	return &BaseError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new BaseError wrapping a cause
func Wrap(code ErrorCode, message string, cause error) *BaseError {
	return &BaseError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf returns the error code of err, UnknownErrorCode when err carries none
func CodeOf(err error) ErrorCode {
	var base *BaseError
	if errors.As(err, &base) {
		return base.Code
	}
	return UnknownErrorCode
}
