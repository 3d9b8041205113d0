package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeInputUnavailable ErrorType = "INPUT_UNAVAILABLE"
	ErrTypeFileUnreadable   ErrorType = "FILE_UNREADABLE"
	ErrTypeLineUnparseable  ErrorType = "LINE_UNPARSEABLE"
	ErrTypeEmptyResult      ErrorType = "EMPTY_RESULT"
	ErrTypeOutput           ErrorType = "OUTPUT"
	ErrTypeConfig           ErrorType = "CONFIG"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewInputUnavailableError reports a missing or unusable input directory.
func NewInputUnavailableError(dir string, cause error) *AppError {
	return NewAppError(ErrTypeInputUnavailable, fmt.Sprintf("Invalid folder path: %s", dir), cause).
		WithContext("dir", dir)
}

// NewFileUnreadableError reports an input file that could not be read.
func NewFileUnreadableError(path string, cause error) *AppError {
	return NewAppError(ErrTypeFileUnreadable, fmt.Sprintf("cannot read %s", path), cause).
		WithContext("file", path)
}

// NewLineUnparseableError reports a line that is not a number of the expected kind.
func NewLineUnparseableError(line string, cause error) *AppError {
	return NewAppError(ErrTypeLineUnparseable, fmt.Sprintf("invalid data %q", line), cause).
		WithContext("line", line)
}

// NewEmptyResultError reports a file without a single usable value.
func NewEmptyResultError(path string) *AppError {
	return NewAppError(ErrTypeEmptyResult, fmt.Sprintf("%s does not contain valid numerical data", path), nil).
		WithContext("file", path)
}

// NewOutputError creates an error for report writing failures
func NewOutputError(message string, cause error) *AppError {
	return NewAppError(ErrTypeOutput, message, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// TypeOf returns the ErrorType of the first AppError in err's chain, or ""
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

// IsType reports whether err carries an AppError of the given type
func IsType(err error, errType ErrorType) bool {
	return err != nil && TypeOf(err) == errType
}

// Fatal reports whether err must stop a batch run. Per-line, per-file and
// empty-result conditions are skips; everything else aborts.
func Fatal(err error) bool {
	if err == nil {
		return false
	}
	switch TypeOf(err) {
	case ErrTypeFileUnreadable, ErrTypeLineUnparseable, ErrTypeEmptyResult:
		return false
	default:
		return true
	}
}
