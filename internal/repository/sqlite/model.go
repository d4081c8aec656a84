package sqlite

// Task is the tasks table row. DueDate is stored as YYYY-MM-DD text so that
// equality against a calendar day is a plain string comparison.
type Task struct {
	ID          int64
	Description string
	Category    string
	DueDate     string
	Status      string
}

// User is the users table row
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}
