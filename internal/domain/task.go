package domain

import "strings"

// Category groups tasks. The set is fixed.
type Category string

const (
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategoryStudy    Category = "Study"
	CategoryOthers   Category = "Others"
)

// CategoryAll is the list filter that selects every category.
const CategoryAll = "All"

// Categories returns the fixed category set in display order.
func Categories() []Category {
	return []Category{CategoryWork, CategoryPersonal, CategoryStudy, CategoryOthers}
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// IsValid reports whether c is one of the fixed categories.
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Status is the completion state of a task.
type Status string

const (
	StatusPending Status = "Pending"
	StatusDone    Status = "Done"
)

// ParseStatus resolves a status name case-insensitively.
func ParseStatus(s string) (Status, bool) {
	s = strings.TrimSpace(s)
	switch {
	case strings.EqualFold(s, string(StatusPending)):
		return StatusPending, true
	case strings.EqualFold(s, string(StatusDone)):
		return StatusDone, true
	}
	return "", false
}

// IsValid reports whether s is Pending or Done.
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusDone
}

// Task represents a task in the domain model.
// ID is assigned by the store and grows with insertion order, so ordering by ID
// is store order.
type Task struct {
	ID          int64
	Description string
	Category    Category
	DueDate     Date
	Status      Status
}

// NewTask creates a pending task.
func NewTask(description string, category Category, dueDate Date) Task {
	return Task{
		Description: description,
		Category:    category,
		DueDate:     dueDate,
		Status:      StatusPending,
	}
}

// IsDueOn reports whether the task is due on the given calendar date.
func (t Task) IsDueOn(d Date) bool {
	return t.DueDate == d
}

// IsDone reports whether the task has been completed.
func (t Task) IsDone() bool {
	return t.Status == StatusDone
}

// String returns the description for display purposes.
func (t Task) String() string {
	return t.Description
}
