package config

import (
	"context"
	"fmt"

	"task-tracker/internal/logging"
	"task-tracker/internal/repository/sqlite"
)

// CreateRepository opens the in-memory store. Opening and migrating the schema is
// bounded by the configured command timeout.
func CreateRepository(ctx context.Context, config *Config) (sqlite.Repository, error) {
	ctx, cancel := context.WithTimeout(ctx, config.GetCommandTimeout())
	defer cancel()

	repo, err := sqlite.NewInMemory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize task store: %w", err)
	}

	logging.Debugln("opened in-memory task store")
	return repo, nil
}
