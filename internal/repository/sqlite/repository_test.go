package sqlite

import (
	"context"
	"testing"

	apperrors "task-tracker/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *SQLiteRepository {
	t.Helper()

	repo, err := NewInMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

func createTask(t *testing.T, repo *SQLiteRepository, description, category, dueDate string) *Task {
	t.Helper()
	task := &Task{Description: description, Category: category, DueDate: dueDate, Status: "Pending"}
	require.NoError(t, repo.CreateTask(context.Background(), task))
	return task
}

func TestCreateTask(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	task := createTask(t, repo, "Write report", "Work", "2024-06-01")
	assert.Greater(t, task.ID, int64(0))

	retrieved, err := repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task, retrieved)
}

func TestCreateTask_AssignsIncreasingIDs(t *testing.T) {
	repo := setupTestDB(t)

	first := createTask(t, repo, "One", "Work", "2024-06-01")
	second := createTask(t, repo, "Two", "Work", "2024-06-01")
	assert.Greater(t, second.ID, first.ID)
}

func TestCreateTask_RejectsUnknownCategory(t *testing.T) {
	repo := setupTestDB(t)

	err := repo.CreateTask(context.Background(), &Task{Description: "x", Category: "Hobby", DueDate: "2024-06-01", Status: "Pending"})
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDatabase))
}

func TestGetTask_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetTask(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
	assert.Contains(t, err.Error(), "999")
}

func TestListTasks(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	tasks, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	createTask(t, repo, "Write report", "Work", "2024-06-01")
	createTask(t, repo, "Gym", "Personal", "2024-06-02")
	createTask(t, repo, "Read chapter", "Study", "2024-06-03")

	tasks, err = repo.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "Write report", tasks[0].Description)
	assert.Equal(t, "Gym", tasks[1].Description)
	assert.Equal(t, "Read chapter", tasks[2].Description)
}

func TestListTasksByCategory(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	createTask(t, repo, "Write report", "Work", "2024-06-01")
	createTask(t, repo, "Gym", "Personal", "2024-06-02")
	createTask(t, repo, "Standup", "Work", "2024-06-03")

	tasks, err := repo.ListTasksByCategory(ctx, "Work")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Write report", tasks[0].Description)
	assert.Equal(t, "Standup", tasks[1].Description)

	tasks, err = repo.ListTasksByCategory(ctx, "Others")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestListTasksDueOn(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	createTask(t, repo, "Write report", "Work", "2024-06-01")
	createTask(t, repo, "Gym", "Personal", "2024-06-02")
	createTask(t, repo, "Call mom", "Personal", "2024-06-01")

	tasks, err := repo.ListTasksDueOn(ctx, "2024-06-01")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Write report", tasks[0].Description)
	assert.Equal(t, "Call mom", tasks[1].Description)
}

func TestUpdateTaskStatus(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	task := createTask(t, repo, "Write report", "Work", "2024-06-01")

	require.NoError(t, repo.UpdateTaskStatus(ctx, task.ID, "Done"))
	retrieved, err := repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Done", retrieved.Status)

	// setting the same status again still matches the row
	require.NoError(t, repo.UpdateTaskStatus(ctx, task.ID, "Done"))

	err = repo.UpdateTaskStatus(ctx, 999, "Done")
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
}

func TestCreateUser(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	user := &User{Username: "alice", PasswordHash: "hash"}
	require.NoError(t, repo.CreateUser(ctx, user))
	assert.Greater(t, user.ID, int64(0))

	retrieved, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user, retrieved)

	count, err := repo.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCreateUser_Duplicate(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, &User{Username: "alice", PasswordHash: "first"}))

	err := repo.CreateUser(ctx, &User{Username: "alice", PasswordHash: "second"})
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDuplicate))

	retrieved, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "first", retrieved.PasswordHash)
}

func TestGetUserByUsername(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, &User{Username: "alice", PasswordHash: "hash"}))

	tests := []struct {
		name     string
		username string
		found    bool
	}{
		{name: "exact match", username: "alice", found: true},
		{name: "case differs", username: "Alice", found: false},
		{name: "unknown", username: "bob", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := repo.GetUserByUsername(ctx, tt.username)
			if tt.found {
				require.NoError(t, err)
				assert.Equal(t, tt.username, user.Username)
				return
			}
			assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
		})
	}
}

func TestInMemoryStoresAreIndependent(t *testing.T) {
	first := setupTestDB(t)
	second := setupTestDB(t)

	createTask(t, first, "Only here", "Work", "2024-06-01")

	tasks, err := second.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
