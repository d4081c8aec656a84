package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/repository/sqlite"
	"task-tracker/internal/validation"
)

// taskStoreImpl implements the TaskStore interface
type taskStoreImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// NewTaskStore creates a new TaskStore over repo
func NewTaskStore(repo sqlite.Repository, cfg *config.Config) TaskStore {
	return &taskStoreImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidatorWithConfig(cfg),
	}
}

// Add appends a pending task. The store is untouched when validation fails.
func (s *taskStoreImpl) Add(ctx context.Context, description string, category domain.Category, dueDate domain.Date) (*domain.Task, error) {
	if err := s.taskValidator.ValidateTaskForCreation(description, category, dueDate); err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}

	task := domain.NewTask(strings.TrimSpace(description), category, dueDate)
	dbTask := s.mapper.Task.ToDatabase(task)
	if err := s.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	task.ID = dbTask.ID
	logging.Debugf("added task %d %q (%s, due %s)\n", task.ID, task.Description, task.Category, task.DueDate)
	return &task, nil
}

// List returns every task for the "All" filter and the tasks of one category
// otherwise. A filter naming no category gives an empty list.
func (s *taskStoreImpl) List(ctx context.Context, filter string) ([]*domain.Task, error) {
	var (
		dbTasks []*sqlite.Task
		err     error
	)
	if filter == domain.CategoryAll {
		dbTasks, err = s.repo.ListTasks(ctx)
	} else {
		dbTasks, err = s.repo.ListTasksByCategory(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	return s.fromDatabase(dbTasks)
}

// Search does a case-insensitive substring match on one field. A blank query
// matches nothing.
func (s *taskStoreImpl) Search(ctx context.Context, field domain.SearchField, query string) ([]*domain.Task, error) {
	fieldValue, err := searchFieldAccessor(field)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return []*domain.Task{}, nil
	}

	tasks, err := s.List(ctx, domain.CategoryAll)
	if err != nil {
		return nil, err
	}

	matches := make([]*domain.Task, 0)
	for _, task := range tasks {
		if matchesText(fieldValue(task), query) {
			matches = append(matches, task)
		}
	}
	return matches, nil
}

// UpdateStatus sets the status of the first task in store order whose
// description contains descriptionQuery, ignoring case.
func (s *taskStoreImpl) UpdateStatus(ctx context.Context, descriptionQuery string, status domain.Status) (*domain.Task, error) {
	if err := s.taskValidator.ValidateStatus(status); err != nil {
		return nil, errors.NewValidationError("invalid status", err)
	}

	query := strings.TrimSpace(descriptionQuery)
	if query == "" {
		return nil, errors.NewNotFoundError("task", "")
	}

	matches, err := s.Search(ctx, domain.SearchByDescription, query)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, errors.NewNotFoundError("task", query)
	}

	target := matches[0]
	if err := s.repo.UpdateTaskStatus(ctx, target.ID, string(status)); err != nil {
		return nil, err
	}

	target.Status = status
	logging.Debugf("task %d %q marked %s\n", target.ID, target.Description, status)
	return target, nil
}

// UpdateStatusByID sets the status of the task with the given ID
func (s *taskStoreImpl) UpdateStatusByID(ctx context.Context, id int64, status domain.Status) (*domain.Task, error) {
	if err := s.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}
	if err := s.taskValidator.ValidateStatus(status); err != nil {
		return nil, errors.NewValidationError("invalid status", err)
	}

	if err := s.repo.UpdateTaskStatus(ctx, id, string(status)); err != nil {
		return nil, err
	}

	dbTask, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	task, err := s.mapper.Task.FromDatabase(*dbTask)
	if err != nil {
		return nil, errors.NewDatabaseError("read task", err)
	}
	return &task, nil
}

// DueToday returns the tasks due on the calendar date of today, in today's location
func (s *taskStoreImpl) DueToday(ctx context.Context, today time.Time) ([]*domain.Task, error) {
	dbTasks, err := s.repo.ListTasksDueOn(ctx, domain.DateOf(today).String())
	if err != nil {
		return nil, err
	}
	return s.fromDatabase(dbTasks)
}

// Stats counts tasks by status along with those due today
func (s *taskStoreImpl) Stats(ctx context.Context, today time.Time) (*domain.TaskStats, error) {
	tasks, err := s.List(ctx, domain.CategoryAll)
	if err != nil {
		return nil, err
	}

	day := domain.DateOf(today)
	stats := &domain.TaskStats{Total: len(tasks)}
	for _, task := range tasks {
		if task.IsDone() {
			stats.Done++
		} else {
			stats.Pending++
		}
		if task.IsDueOn(day) {
			stats.DueToday++
		}
	}
	return stats, nil
}

func (s *taskStoreImpl) fromDatabase(dbTasks []*sqlite.Task) ([]*domain.Task, error) {
	tasks, err := s.mapper.Task.FromDatabaseSlice(dbTasks)
	if err != nil {
		return nil, errors.NewDatabaseError("read tasks", err)
	}
	return tasks, nil
}

func searchFieldAccessor(field domain.SearchField) (func(*domain.Task) string, error) {
	switch field {
	case domain.SearchByDescription:
		return func(t *domain.Task) string { return t.Description }, nil
	case domain.SearchByCategory:
		return func(t *domain.Task) string { return string(t.Category) }, nil
	}
	return nil, errors.NewInvalidInputError("search field", field,
		fmt.Sprintf("must be %s or %s", domain.SearchByDescription, domain.SearchByCategory))
}

// matchesText reports whether text contains query, ignoring case
func matchesText(text, query string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(query))
}
