package cli

import (
	"errors"
	"testing"

	apperrors "task-tracker/internal/errors"
	"task-tracker/internal/validation"
)

func TestErrorHandler_HandleSimple(t *testing.T) {
	eh := NewErrorHandler()

	fieldErrors := &validation.ValidationError{}
	fieldErrors.AddRequiredError("description")

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Wrapped field errors",
			err:      apperrors.NewValidationError("invalid task", fieldErrors),
			expected: "description is required",
		},
		{
			name:     "Authentication error",
			err:      apperrors.NewAuthenticationError("admin"),
			expected: "invalid username or password",
		},
		{
			name:     "Permission error",
			err:      apperrors.NewPermissionError("add task", "tasks"),
			expected: "permission denied for add task on tasks",
		},
		{
			name:     "Timeout error",
			err:      apperrors.NewTimeoutError("list", "10s"),
			expected: "The operation timed out. Please try again.",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.HandleSimple(tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.HandleSimple() = %v, want %v", result.Error(), tt.expected)
			}
		})
	}
}
