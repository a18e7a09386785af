package errors

import "fmt"

// Common error wrapping patterns used throughout the tool

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	return Wrap(FileSystemErrorCode, fmt.Sprintf("failed to %s '%s'", operation, path), cause)
}

// WrapAnalysisError wraps an error raised while analyzing a source file
func WrapAnalysisError(path string, cause error) *BaseError {
	return Wrap(AnalysisErrorCode, fmt.Sprintf("failed to analyze %s", path), cause)
}

// WrapGenerateError wraps an error raised while generating an output document
func WrapGenerateError(document string, cause error) *BaseError {
	return Wrap(GenerationErrorCode, fmt.Sprintf("failed to generate %s", document), cause)
}

// NewUsageError creates an error for invalid command-line input
func NewUsageError(format string, args ...interface{}) *BaseError {
	return New(UsageErrorCode, format, args...)
}
