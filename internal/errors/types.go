package errors

import (
	"fmt"
)

// ErrorType classifies an application error
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeNotFound
	ErrorTypeDuplicate
	ErrorTypeAuthentication
	ErrorTypeDatabase
	ErrorTypeInvalidInput
	ErrorTypeTimeout
	ErrorTypePermission
)

var errorTypeNames = map[ErrorType]string{
	ErrorTypeValidation:     "validation",
	ErrorTypeNotFound:       "not_found",
	ErrorTypeDuplicate:      "duplicate",
	ErrorTypeAuthentication: "authentication",
	ErrorTypeDatabase:       "database",
	ErrorTypeInvalidInput:   "invalid_input",
	ErrorTypeTimeout:        "timeout",
	ErrorTypePermission:     "permission",
}

// String returns the snake_case name of the error type
func (et ErrorType) String() string {
	if name, ok := errorTypeNames[et]; ok {
		return name
	}
	return "unknown"
}

// AppError is the structured error returned across package boundaries.
// Every AppError is recoverable: callers show GetUserMessage and let the user retry.
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches another AppError with the same type and code, so sentinel-style
// comparisons work with errors.Is.
func (e *AppError) Is(target error) bool {
	if appErr, ok := target.(*AppError); ok {
		return e.Type == appErr.Type && e.Code == appErr.Code
	}
	return false
}

// IsType reports whether the error is of the given type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// WithContext attaches a key/value pair and returns the same error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// GetContext looks up a context value
func (e *AppError) GetContext(key string) (interface{}, bool) {
	if e.Context == nil {
		return nil, false
	}
	value, exists := e.Context[key]
	return value, exists
}
