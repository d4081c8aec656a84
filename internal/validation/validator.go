package validation

import (
	"strings"
	"unicode/utf8"

	"task-tracker/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidatorWithConfig creates a new validator instance with configuration.
// A nil config means no length limits.
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string's length in characters is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidDescriptionLength checks a task description against the configured
// maximum. A maximum of 0 means unlimited.
func (v *Validator) IsValidDescriptionLength(description string) bool {
	max := v.getDescriptionMaxLength()
	if max <= 0 {
		return true
	}
	return v.IsValidStringLength(description, 1, max)
}

// IsValidDueYear checks the year can be written as four YYYY digits
func (v *Validator) IsValidDueYear(year int) bool {
	return year >= 1 && year <= 9999
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

func (v *Validator) getDescriptionMaxLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMaxLength
	}
	return 0
}
