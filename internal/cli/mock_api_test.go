package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"task-tracker/internal/api"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

// mockAPI implements the API interface for testing. Page changes follow the
// shell's transitions without a state machine; failErr forces the next call to fail.
type mockAPI struct {
	session domain.Session
	users   map[string]string
	tasks   []*domain.Task
	nextID  int64
	today   domain.Date
	failErr error
	calls   []string
}

func newMockAPI() *mockAPI {
	return &mockAPI{
		session: domain.NewSession(),
		users:   map[string]string{"admin": "admin123"},
		nextID:  1,
		today:   domain.NewDate(2024, time.June, 1),
	}
}

// loggedIn puts the mock on page as admin
func (m *mockAPI) loggedIn(page domain.Page) *mockAPI {
	m.session.Authenticated = true
	m.session.Username = "admin"
	m.session.CurrentPage = page
	return m
}

func (m *mockAPI) record(call string) error {
	m.calls = append(m.calls, call)
	if err := m.failErr; err != nil {
		m.failErr = nil
		return err
	}
	return nil
}

func (m *mockAPI) Session() domain.Session { return m.session }

func (m *mockAPI) ActivePage() domain.Page {
	if m.session.CurrentPage.IsProtected() && !m.session.Authenticated {
		return domain.PageLogin
	}
	return m.session.CurrentPage
}

func (m *mockAPI) Today() domain.Date { return m.today }

func (m *mockAPI) Login(ctx context.Context, username, password string) error {
	if err := m.record("Login"); err != nil {
		return err
	}
	if stored, ok := m.users[username]; !ok || stored != password {
		return errors.NewAuthenticationError(username)
	}
	m.session.Authenticated = true
	m.session.Username = username
	m.session.CurrentPage = domain.PageDashboard
	return nil
}

func (m *mockAPI) Logout(ctx context.Context) error {
	if err := m.record("Logout"); err != nil {
		return err
	}
	m.session.Authenticated = false
	m.session.Username = ""
	m.session.CurrentPage = domain.PageLogin
	return nil
}

func (m *mockAPI) StartRegistration(ctx context.Context) error {
	if err := m.record("StartRegistration"); err != nil {
		return err
	}
	m.session.CurrentPage = domain.PageRegister
	return nil
}

func (m *mockAPI) CancelRegistration(ctx context.Context) error {
	if err := m.record("CancelRegistration"); err != nil {
		return err
	}
	m.session.CurrentPage = domain.PageLogin
	return nil
}

func (m *mockAPI) Register(ctx context.Context, username, password string) error {
	if err := m.record("Register"); err != nil {
		return err
	}
	if _, exists := m.users[username]; exists {
		return errors.NewDuplicateError("user", username)
	}
	m.users[username] = password
	m.session.CurrentPage = domain.PageLogin
	return nil
}

func (m *mockAPI) OpenTaskManager(ctx context.Context) error {
	if err := m.record("OpenTaskManager"); err != nil {
		return err
	}
	m.session.CurrentPage = domain.PageTaskManager
	return nil
}

func (m *mockAPI) Back(ctx context.Context) error {
	if err := m.record("Back"); err != nil {
		return err
	}
	m.session.CurrentPage = domain.PageDashboard
	return nil
}

func (m *mockAPI) AddTask(ctx context.Context, description string, category domain.Category, dueDate domain.Date) (*domain.Task, error) {
	if err := m.record(fmt.Sprintf("AddTask %s|%s|%s", description, category, dueDate)); err != nil {
		return nil, err
	}
	if strings.TrimSpace(description) == "" {
		return nil, errors.NewValidationError("description is required", nil)
	}
	if !category.IsValid() {
		return nil, errors.NewValidationError("category must be one of Work, Personal, Study, Others", nil)
	}
	task := domain.NewTask(description, category, dueDate)
	task.ID = m.nextID
	m.nextID++
	m.tasks = append(m.tasks, &task)
	return &task, nil
}

func (m *mockAPI) ListTasks(ctx context.Context, filter string) ([]*domain.Task, error) {
	if err := m.record("ListTasks " + filter); err != nil {
		return nil, err
	}
	result := []*domain.Task{}
	for _, task := range m.tasks {
		if filter == domain.CategoryAll || string(task.Category) == filter {
			result = append(result, task)
		}
	}
	return result, nil
}

func (m *mockAPI) SearchTasks(ctx context.Context, field domain.SearchField, query string) ([]*domain.Task, error) {
	if err := m.record(fmt.Sprintf("SearchTasks %s|%s", field, query)); err != nil {
		return nil, err
	}
	result := []*domain.Task{}
	for _, task := range m.tasks {
		value := task.Description
		if field == domain.SearchByCategory {
			value = string(task.Category)
		}
		if strings.Contains(strings.ToLower(value), strings.ToLower(query)) {
			result = append(result, task)
		}
	}
	return result, nil
}

func (m *mockAPI) UpdateTaskStatus(ctx context.Context, descriptionQuery string, status domain.Status) (*domain.Task, error) {
	if err := m.record(fmt.Sprintf("UpdateTaskStatus %s|%s", descriptionQuery, status)); err != nil {
		return nil, err
	}
	for _, task := range m.tasks {
		if strings.Contains(strings.ToLower(task.Description), strings.ToLower(descriptionQuery)) {
			task.Status = status
			return task, nil
		}
	}
	return nil, errors.NewNotFoundError("task", descriptionQuery)
}

func (m *mockAPI) UpdateTaskStatusByID(ctx context.Context, id int64, status domain.Status) (*domain.Task, error) {
	if err := m.record(fmt.Sprintf("UpdateTaskStatusByID %d|%s", id, status)); err != nil {
		return nil, err
	}
	for _, task := range m.tasks {
		if task.ID == id {
			task.Status = status
			return task, nil
		}
	}
	return nil, errors.NewNotFoundError("task", fmt.Sprint(id))
}

func (m *mockAPI) DueToday(ctx context.Context) ([]*domain.Task, error) {
	if err := m.record("DueToday"); err != nil {
		return nil, err
	}
	result := []*domain.Task{}
	for _, task := range m.tasks {
		if task.IsDueOn(m.today) {
			result = append(result, task)
		}
	}
	return result, nil
}

func (m *mockAPI) Dashboard(ctx context.Context) (*api.Dashboard, error) {
	if err := m.record("Dashboard"); err != nil {
		return nil, err
	}
	dashboard := &api.Dashboard{Username: m.session.Username, Today: m.today}
	for _, task := range m.tasks {
		dashboard.Stats.Total++
		if task.IsDone() {
			dashboard.Stats.Done++
		} else {
			dashboard.Stats.Pending++
		}
		if task.IsDueOn(m.today) {
			dashboard.Stats.DueToday++
			dashboard.DueToday = append(dashboard.DueToday, task)
		}
	}
	return dashboard, nil
}
