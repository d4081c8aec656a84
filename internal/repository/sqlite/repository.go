package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"task-tracker/internal/errors"
	"task-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// InMemoryDSN keeps the whole store in process memory for the lifetime of the repository
const InMemoryDSN = ":memory:"

const taskColumns = `id, description, category, due_date, status`

// Repository defines the interface for database operations
type Repository interface {
	// Tasks
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	ListTasksByCategory(ctx context.Context, category string) ([]*Task, error)
	ListTasksDueOn(ctx context.Context, dueDate string) ([]*Task, error)
	UpdateTaskStatus(ctx context.Context, id int64, status string) error

	// Users
	CreateUser(ctx context.Context, user *User) error
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	CountUsers(ctx context.Context) (int, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New opens the database at dsn and brings its schema up to date
func New(ctx context.Context, dsn string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// NewInMemory opens an empty in-memory store
func NewInMemory(ctx context.Context) (*SQLiteRepository, error) {
	return New(ctx, InMemoryDSN)
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask inserts task and sets its ID
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	query := `
	INSERT INTO tasks (description, category, due_date, status)
	VALUES (?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, task.Description, task.Category, task.DueDate, task.Status)
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves all tasks in insertion order
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// ListTasksByCategory retrieves the tasks of one category in insertion order
func (r *SQLiteRepository) ListTasksByCategory(ctx context.Context, category string) ([]*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE category = ? ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", category)
}

// ListTasksDueOn retrieves the tasks whose due date equals dueDate (YYYY-MM-DD)
func (r *SQLiteRepository) ListTasksDueOn(ctx context.Context, dueDate string) ([]*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE due_date = ? ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", dueDate)
}

// UpdateTaskStatus sets the status column of one task
func (r *SQLiteRepository) UpdateTaskStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE tasks SET status = ? WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), status, id)
}

// CreateUser inserts user and sets its ID. A taken username yields a duplicate error.
func (r *SQLiteRepository) CreateUser(ctx context.Context, user *User) error {
	query := `INSERT INTO users (username, password_hash) VALUES (?, ?)`

	result, err := r.db.ExecContext(ctx, query, user.Username, user.PasswordHash)
	if err != nil {
		if IsConstraintViolation(err) {
			return errors.NewDuplicateError("user", user.Username)
		}
		return HandleDatabaseError("create user", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return HandleDatabaseError("get last insert ID", err)
	}

	user.ID = id
	return nil
}

// GetUserByUsername looks up a user by exact username
func (r *SQLiteRepository) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT id, username, password_hash FROM users WHERE username = ?`
	return QuerySingle(ctx, r.db, query, ScanUser, "user", username, username)
}

// CountUsers returns the number of registered users
func (r *SQLiteRepository) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, HandleDatabaseError("count users", err)
	}
	return count, nil
}
