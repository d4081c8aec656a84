package services

import (
	"context"
	"testing"
	"time"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/repository/sqlite"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testConfig keeps bcrypt cheap so authentication tests stay fast
func testConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Auth.BcryptCost = bcrypt.MinCost
	return cfg
}

func setupRepository(t *testing.T) sqlite.Repository {
	t.Helper()
	repo, err := sqlite.NewInMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func setupTaskStore(t *testing.T) TaskStore {
	t.Helper()
	return NewTaskStore(setupRepository(t), testConfig())
}

type taskSeed struct {
	description string
	category    domain.Category
	due         domain.Date
}

func setupTaskStoreWithData(t *testing.T, seeds []taskSeed) (TaskStore, []*domain.Task) {
	t.Helper()
	store := setupTaskStore(t)
	ctx := context.Background()

	tasks := make([]*domain.Task, 0, len(seeds))
	for _, seed := range seeds {
		task, err := store.Add(ctx, seed.description, seed.category, seed.due)
		require.NoError(t, err)
		tasks = append(tasks, task)
	}
	return store, tasks
}

func setupUserDirectory(t *testing.T) UserDirectory {
	t.Helper()
	directory := NewUserDirectory(setupRepository(t), testConfig())
	require.NoError(t, directory.SeedDefault(context.Background()))
	return directory
}

var (
	june1 = domain.NewDate(2024, time.June, 1)
	june2 = domain.NewDate(2024, time.June, 2)
)

func descriptions(tasks []*domain.Task) []string {
	result := make([]string, len(tasks))
	for i, task := range tasks {
		result[i] = task.Description
	}
	return result
}
