package services

import (
	"context"
	"time"

	"task-tracker/internal/domain"
)

// TaskStore owns the task collection. Store order is insertion order.
type TaskStore interface {
	// Mutations
	Add(ctx context.Context, description string, category domain.Category, dueDate domain.Date) (*domain.Task, error)
	UpdateStatus(ctx context.Context, descriptionQuery string, status domain.Status) (*domain.Task, error)
	UpdateStatusByID(ctx context.Context, id int64, status domain.Status) (*domain.Task, error)

	// Queries
	List(ctx context.Context, filter string) ([]*domain.Task, error)
	Search(ctx context.Context, field domain.SearchField, query string) ([]*domain.Task, error)
	DueToday(ctx context.Context, today time.Time) ([]*domain.Task, error)
	Stats(ctx context.Context, today time.Time) (*domain.TaskStats, error)
}

// UserDirectory owns the username to credential mapping
type UserDirectory interface {
	Register(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) (bool, error)
	SeedDefault(ctx context.Context) error
}

// SessionController owns the session and moves it between pages.
// A transition that is not allowed from the current page returns an error and
// leaves the session unchanged.
type SessionController interface {
	Session() domain.Session

	Login(username string) error
	RequestRegister() error
	RegisterSucceeded() error
	CancelRegister() error
	OpenTaskManager() error
	Logout() error
	Back() error
}

// PageRouter maps a session to the page that may be shown for it
type PageRouter interface {
	Route(session domain.Session) domain.Page
}
