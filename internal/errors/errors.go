package errors

import (
	"errors"
	"fmt"
)

// NewValidationError reports input that failed validation. The cause is usually a
// *validation.ValidationError listing the offending fields.
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewNotFoundError reports that no resource matched the identifier or query
func NewNotFoundError(resource string, identifier string) *AppError {
	message := fmt.Sprintf("%s not found", resource)
	if identifier != "" {
		message = fmt.Sprintf("%s not found: %s", resource, identifier)
	}
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
		Code:    "NOT_FOUND",
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewDuplicateError reports a unique key collision
func NewDuplicateError(resource string, key string) *AppError {
	return &AppError{
		Type:    ErrorTypeDuplicate,
		Message: fmt.Sprintf("%s already exists: %s", resource, key),
		Code:    "DUPLICATE",
		Context: map[string]interface{}{
			"resource": resource,
			"key":      key,
		},
	}
}

// NewAuthenticationError reports rejected credentials. The username is kept in the
// context only; the message never says which half of the credentials was wrong.
func NewAuthenticationError(username string) *AppError {
	return &AppError{
		Type:    ErrorTypeAuthentication,
		Message: "invalid username or password",
		Code:    "AUTHENTICATION_FAILED",
		Context: map[string]interface{}{
			"username": username,
		},
	}
}

// NewDatabaseError wraps a storage failure
func NewDatabaseError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDatabase,
		Message: fmt.Sprintf("database operation failed: %s", operation),
		Code:    "DATABASE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewInvalidInputError reports a well-formed request that cannot be served
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewTimeoutError reports an operation that ran past its deadline
func NewTimeoutError(operation string, timeout interface{}) *AppError {
	return &AppError{
		Type:    ErrorTypeTimeout,
		Message: fmt.Sprintf("operation timed out: %s", operation),
		Code:    "TIMEOUT",
		Context: map[string]interface{}{
			"operation": operation,
			"timeout":   timeout,
		},
	}
}

// NewPermissionError reports an operation attempted without the required session state
func NewPermissionError(operation string, resource string) *AppError {
	return &AppError{
		Type:    ErrorTypePermission,
		Message: fmt.Sprintf("permission denied for %s on %s", operation, resource),
		Code:    "PERMISSION_DENIED",
		Context: map[string]interface{}{
			"operation": operation,
			"resource":  resource,
		},
	}
}

// WrapError wraps err with a type and message
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// AsAppError extracts the AppError from err's chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType reports whether err carries an AppError of the given type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a message fit to show in the shell
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeDuplicate,
			ErrorTypeAuthentication, ErrorTypeInvalidInput, ErrorTypePermission:
			return appErr.Message
		case ErrorTypeDatabase:
			return "A storage error occurred. Please try again."
		case ErrorTypeTimeout:
			return "The operation timed out. Please try again."
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the AppError code, or UNKNOWN_ERROR
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError separates user mistakes from system failures
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeDuplicate,
			ErrorTypeAuthentication, ErrorTypeInvalidInput, ErrorTypePermission:
			return false
		default:
			return true
		}
	}
	return true
}
