package validation

import (
	"task-tracker/internal/config"
	"task-tracker/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidatorWithConfig creates a task validator using configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateDescription validates a task description for creation. Only a blank
// description is rejected unless a maximum length is configured.
func (tv *TaskValidator) ValidateDescription(description string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(description)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("description")
		return validationError
	}

	if !tv.validator.IsValidDescriptionLength(trimmed) {
		validationError.AddInvalidLengthError("description", trimmed, 1, tv.validator.getDescriptionMaxLength())
	}

	return validationError.ErrOrNil()
}

// ValidateCategory checks the category is one of the fixed set
func (tv *TaskValidator) ValidateCategory(category domain.Category) error {
	if category.IsValid() {
		return nil
	}
	validationError := NewValidationError()
	if category == "" {
		validationError.AddRequiredError("category")
	} else {
		validationError.AddNotOneOfError("category", category, categoryNames())
	}
	return validationError
}

// ValidateStatus checks the status is Pending or Done
func (tv *TaskValidator) ValidateStatus(status domain.Status) error {
	if status.IsValid() {
		return nil
	}
	validationError := NewValidationError()
	validationError.AddNotOneOfError("status", status, []string{string(domain.StatusPending), string(domain.StatusDone)})
	return validationError
}

// ValidateTaskForCreation validates every field of a new task at once
func (tv *TaskValidator) ValidateTaskForCreation(description string, category domain.Category, dueDate domain.Date) error {
	validationError := NewValidationError()

	validationError.Merge(tv.ValidateDescription(description))
	validationError.Merge(tv.ValidateCategory(category))
	if dueDate.IsZero() {
		validationError.AddRequiredError("due_date")
	} else if !tv.validator.IsValidDueYear(dueDate.Year) {
		validationError.AddInvalidValueError("due_date", dueDate.Year, "year must be between 1 and 9999")
	}

	return validationError.ErrOrNil()
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

func categoryNames() []string {
	categories := domain.Categories()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return names
}
