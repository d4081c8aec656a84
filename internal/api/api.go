package api

import (
	"context"
	"time"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/services"
)

// Dashboard is everything the dashboard page shows
type Dashboard struct {
	Username string
	Today    domain.Date
	Stats    domain.TaskStats
	DueToday []*domain.Task
}

// API is what the rendering layer calls: read accessors for the session, task
// lists and reminders, and write accessors for tasks, accounts and page changes.
type API interface {
	// ========== Session ==========

	// Session returns a copy of the current session
	Session() domain.Session

	// ActivePage is the page the router allows for the current session
	ActivePage() domain.Page

	// Today is the calendar date the reminders are computed for
	Today() domain.Date

	// Login checks the credentials and moves to the dashboard
	Login(ctx context.Context, username, password string) error

	// Logout returns to the login page
	Logout(ctx context.Context) error

	// StartRegistration opens the registration form
	StartRegistration(ctx context.Context) error

	// CancelRegistration leaves the registration form
	CancelRegistration(ctx context.Context) error

	// Register creates the account and returns to the login page
	Register(ctx context.Context, username, password string) error

	// OpenTaskManager moves from the dashboard to the task manager
	OpenTaskManager(ctx context.Context) error

	// Back returns from the task manager to the dashboard
	Back(ctx context.Context) error

	// ========== Tasks (authenticated only) ==========

	AddTask(ctx context.Context, description string, category domain.Category, dueDate domain.Date) (*domain.Task, error)
	ListTasks(ctx context.Context, filter string) ([]*domain.Task, error)
	SearchTasks(ctx context.Context, field domain.SearchField, query string) ([]*domain.Task, error)
	UpdateTaskStatus(ctx context.Context, descriptionQuery string, status domain.Status) (*domain.Task, error)
	UpdateTaskStatusByID(ctx context.Context, id int64, status domain.Status) (*domain.Task, error)
	DueToday(ctx context.Context) ([]*domain.Task, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
}

// Option customises an API instance
type Option func(*apiImpl)

// WithClock replaces time.Now as the source of "today"
func WithClock(now func() time.Time) Option {
	return func(a *apiImpl) {
		a.now = now
	}
}

type apiImpl struct {
	workspace *services.Workspace
	now       func() time.Time
}

// New creates a new API instance over workspace
func New(workspace *services.Workspace, opts ...Option) API {
	a := &apiImpl{
		workspace: workspace,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ========== Session ==========

func (a *apiImpl) Session() domain.Session {
	return a.workspace.Session.Session()
}

func (a *apiImpl) ActivePage() domain.Page {
	return a.workspace.ActivePage()
}

func (a *apiImpl) Today() domain.Date {
	return domain.DateOf(a.now())
}

func (a *apiImpl) Login(ctx context.Context, username, password string) error {
	if err := a.requirePage(domain.PageLogin, services.TransitionLogin); err != nil {
		return err
	}

	ok, err := a.workspace.Users.Authenticate(ctx, username, password)
	if err != nil {
		return err
	}
	if !ok {
		logging.Debugf("rejected login for %q\n", username)
		return errors.NewAuthenticationError(username)
	}

	return a.workspace.Session.Login(username)
}

func (a *apiImpl) Logout(ctx context.Context) error {
	return a.workspace.Session.Logout()
}

func (a *apiImpl) StartRegistration(ctx context.Context) error {
	return a.workspace.Session.RequestRegister()
}

func (a *apiImpl) CancelRegistration(ctx context.Context) error {
	return a.workspace.Session.CancelRegister()
}

func (a *apiImpl) Register(ctx context.Context, username, password string) error {
	if err := a.requirePage(domain.PageRegister, services.TransitionRegisterSucceeded); err != nil {
		return err
	}

	if err := a.workspace.Users.Register(ctx, username, password); err != nil {
		return err
	}

	return a.workspace.Session.RegisterSucceeded()
}

func (a *apiImpl) OpenTaskManager(ctx context.Context) error {
	return a.workspace.Session.OpenTaskManager()
}

func (a *apiImpl) Back(ctx context.Context) error {
	return a.workspace.Session.Back()
}

// ========== Tasks ==========

func (a *apiImpl) AddTask(ctx context.Context, description string, category domain.Category, dueDate domain.Date) (*domain.Task, error) {
	if err := a.requireAuthenticated("add task"); err != nil {
		return nil, err
	}
	return a.workspace.Tasks.Add(ctx, description, category, dueDate)
}

func (a *apiImpl) ListTasks(ctx context.Context, filter string) ([]*domain.Task, error) {
	if err := a.requireAuthenticated("list tasks"); err != nil {
		return nil, err
	}
	return a.workspace.Tasks.List(ctx, filter)
}

func (a *apiImpl) SearchTasks(ctx context.Context, field domain.SearchField, query string) ([]*domain.Task, error) {
	if err := a.requireAuthenticated("search tasks"); err != nil {
		return nil, err
	}
	return a.workspace.Tasks.Search(ctx, field, query)
}

func (a *apiImpl) UpdateTaskStatus(ctx context.Context, descriptionQuery string, status domain.Status) (*domain.Task, error) {
	if err := a.requireAuthenticated("update task status"); err != nil {
		return nil, err
	}
	return a.workspace.Tasks.UpdateStatus(ctx, descriptionQuery, status)
}

func (a *apiImpl) UpdateTaskStatusByID(ctx context.Context, id int64, status domain.Status) (*domain.Task, error) {
	if err := a.requireAuthenticated("update task status"); err != nil {
		return nil, err
	}
	return a.workspace.Tasks.UpdateStatusByID(ctx, id, status)
}

func (a *apiImpl) DueToday(ctx context.Context) ([]*domain.Task, error) {
	if err := a.requireAuthenticated("list tasks due today"); err != nil {
		return nil, err
	}
	return a.workspace.Tasks.DueToday(ctx, a.now())
}

func (a *apiImpl) Dashboard(ctx context.Context) (*Dashboard, error) {
	if err := a.requireAuthenticated("view dashboard"); err != nil {
		return nil, err
	}

	now := a.now()
	stats, err := a.workspace.Tasks.Stats(ctx, now)
	if err != nil {
		return nil, err
	}
	due, err := a.workspace.Tasks.DueToday(ctx, now)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Username: a.Session().Username,
		Today:    domain.DateOf(now),
		Stats:    *stats,
		DueToday: due,
	}, nil
}

func (a *apiImpl) requireAuthenticated(operation string) error {
	if !a.Session().Authenticated {
		return errors.NewPermissionError(operation, "tasks")
	}
	return nil
}

// requirePage refuses work meant for another page before any side effect happens
func (a *apiImpl) requirePage(page domain.Page, t services.Transition) error {
	active := a.ActivePage()
	if active == page {
		return nil
	}
	return services.NewTransitionError(active, t)
}
