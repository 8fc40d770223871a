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
	ErrCancelled    ErrorCode = "CANCELLED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Template errors
	ErrTemplateInvalid  ErrorCode = "TEMPLATE_INVALID"
	ErrTemplateParse    ErrorCode = "TEMPLATE_PARSE"
	ErrGeneratorSyntax  ErrorCode = "GENERATOR_SYNTAX"
	ErrGeneratorUnknown ErrorCode = "GENERATOR_UNKNOWN"
	ErrFilterUnknown    ErrorCode = "FILTER_UNKNOWN"
	ErrFilterFailed     ErrorCode = "FILTER_FAILED"
	ErrVariableMissing  ErrorCode = "VARIABLE_MISSING"
	ErrUnsafePath       ErrorCode = "UNSAFE_PATH"

	// Resource guard errors
	ErrExpansionTooLarge ErrorCode = "EXPANSION_TOO_LARGE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCreate   ErrorCode = "FILE_CREATE"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// FoldergenError represents a structured error with code and details
type FoldergenError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FoldergenError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FoldergenError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FoldergenError) Is(target error) bool {
	var targetErr *FoldergenError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FoldergenError with the given code and message
func New(code ErrorCode, message string) *FoldergenError {
	return &FoldergenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FoldergenError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FoldergenError {
	return &FoldergenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FoldergenError
func Wrap(err error, code ErrorCode, message string) *FoldergenError {
	if err == nil {
		return nil
	}
	return &FoldergenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FoldergenError {
	if err == nil {
		return nil
	}
	return &FoldergenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FoldergenError) WithDetail(key string, value interface{}) *FoldergenError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *FoldergenError) WithDetails(details map[string]interface{}) *FoldergenError {
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
	var fgErr *FoldergenError
	if errors.As(err, &fgErr) {
		return fgErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FoldergenError
func GetErrorCode(err error) ErrorCode {
	var fgErr *FoldergenError
	if errors.As(err, &fgErr) {
		return fgErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FoldergenError
func GetErrorDetails(err error) map[string]interface{} {
	var fgErr *FoldergenError
	if errors.As(err, &fgErr) {
		return fgErr.Details
	}
	return nil
}
