package services

import (
	"context"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/repository/sqlite"
)

// Workspace holds one session together with the stores it works on.
// Each workspace gets its own session; nothing is shared between workspaces
// except what their repositories share.
type Workspace struct {
	Tasks   TaskStore
	Users   UserDirectory
	Session SessionController
	Router  PageRouter
}

// NewWorkspace wires the services over repo and seeds the default user
func NewWorkspace(ctx context.Context, repo sqlite.Repository, cfg *config.Config) (*Workspace, error) {
	w := &Workspace{
		Tasks:   NewTaskStore(repo, cfg),
		Users:   NewUserDirectory(repo, cfg),
		Session: NewSessionController(),
		Router:  NewPageRouter(),
	}

	if err := w.Users.SeedDefault(ctx); err != nil {
		return nil, err
	}

	return w, nil
}

// ActivePage routes the current session
func (w *Workspace) ActivePage() domain.Page {
	return w.Router.Route(w.Session.Session())
}
