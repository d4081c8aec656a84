package domain

import "strings"

// SearchField selects which task attribute a text search matches against.
type SearchField string

const (
	SearchByDescription SearchField = "description"
	SearchByCategory    SearchField = "category"
)

// ParseSearchField resolves a field name case-insensitively. "task" is accepted
// as an alias for description.
func ParseSearchField(s string) (SearchField, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "description", "task":
		return SearchByDescription, true
	case "category":
		return SearchByCategory, true
	}
	return "", false
}

// TaskStats summarises the task store for the dashboard.
type TaskStats struct {
	Total    int
	Pending  int
	Done     int
	DueToday int
}
