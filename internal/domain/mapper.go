package domain

import (
	"fmt"

	"task-tracker/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:          domainTask.ID,
		Description: domainTask.Description,
		Category:    string(domainTask.Category),
		DueDate:     domainTask.DueDate.String(),
		Status:      string(domainTask.Status),
	}
}

// FromDatabase converts a database Task to a domain Task.
// It fails only when the stored due date is not in YYYY-MM-DD form.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) (Task, error) {
	dueDate, err := ParseDate(dbTask.DueDate)
	if err != nil {
		return Task{}, fmt.Errorf("task %d: %w", dbTask.ID, err)
	}
	return Task{
		ID:          dbTask.ID,
		Description: dbTask.Description,
		Category:    Category(dbTask.Category),
		DueDate:     dueDate,
		Status:      Status(dbTask.Status),
	}, nil
}

// FromDatabaseSlice converts database Tasks to domain Tasks, keeping order.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) ([]*Task, error) {
	domainTasks := make([]*Task, 0, len(dbTasks))
	for _, dbTask := range dbTasks {
		task, err := m.FromDatabase(*dbTask)
		if err != nil {
			return nil, err
		}
		domainTasks = append(domainTasks, &task)
	}
	return domainTasks, nil
}

// UserMapper handles conversion between domain and database User models.
type UserMapper struct{}

// NewUserMapper creates a new UserMapper instance.
func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

// ToDatabase converts a domain User to a database User.
func (m *UserMapper) ToDatabase(domainUser User) sqlite.User {
	return sqlite.User{
		ID:           domainUser.ID,
		Username:     domainUser.Username,
		PasswordHash: domainUser.PasswordHash,
	}
}

// FromDatabase converts a database User to a domain User.
func (m *UserMapper) FromDatabase(dbUser sqlite.User) User {
	return User{
		ID:           dbUser.ID,
		Username:     dbUser.Username,
		PasswordHash: dbUser.PasswordHash,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task *TaskMapper
	User *UserMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task: NewTaskMapper(),
		User: NewUserMapper(),
	}
}
