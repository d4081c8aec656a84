package services

import (
	"fmt"
	"strings"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
)

// Transition names a session state change
type Transition string

const (
	TransitionLogin             Transition = "login"
	TransitionRequestRegister   Transition = "request_register"
	TransitionRegisterSucceeded Transition = "register_succeeded"
	TransitionCancelRegister    Transition = "cancel_register"
	TransitionOpenTaskManager   Transition = "open_task_manager"
	TransitionLogout            Transition = "logout"
	TransitionBack              Transition = "back"
)

// allowedTransitions is the page state machine: from page, transition -> to page.
// Anything missing is disallowed.
var allowedTransitions = map[domain.Page]map[Transition]domain.Page{
	domain.PageLogin: {
		TransitionLogin:           domain.PageDashboard,
		TransitionRequestRegister: domain.PageRegister,
	},
	domain.PageRegister: {
		TransitionRegisterSucceeded: domain.PageLogin,
		TransitionCancelRegister:    domain.PageLogin,
	},
	domain.PageDashboard: {
		TransitionOpenTaskManager: domain.PageTaskManager,
		TransitionLogout:          domain.PageLogin,
	},
	domain.PageTaskManager: {
		TransitionBack: domain.PageDashboard,
	},
}

// AllowedTransitions lists the transitions accepted on page, in a fixed order
func AllowedTransitions(page domain.Page) []Transition {
	order := []Transition{
		TransitionLogin,
		TransitionRequestRegister,
		TransitionRegisterSucceeded,
		TransitionCancelRegister,
		TransitionOpenTaskManager,
		TransitionLogout,
		TransitionBack,
	}
	allowed := make([]Transition, 0, 2)
	for _, t := range order {
		if _, ok := allowedTransitions[page][t]; ok {
			allowed = append(allowed, t)
		}
	}
	return allowed
}

// NewTransitionError reports transition t as unavailable on page and lists the
// transitions that page does accept
func NewTransitionError(page domain.Page, t Transition) *errors.AppError {
	allowed := AllowedTransitions(page)
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	reason := fmt.Sprintf("%s is not available on the %s page", t, page)
	if len(names) > 0 {
		reason += fmt.Sprintf(" (available: %s)", strings.Join(names, ", "))
	}
	return errors.NewInvalidInputError("transition", t, reason).
		WithContext("from", page).
		WithContext("transition", t).
		WithContext("allowed", allowed)
}

// sessionControllerImpl implements the SessionController interface
type sessionControllerImpl struct {
	session domain.Session
}

// NewSessionController starts a fresh session on the login page
func NewSessionController() SessionController {
	return &sessionControllerImpl{session: domain.NewSession()}
}

// Session returns a copy of the current session
func (c *sessionControllerImpl) Session() domain.Session {
	return c.session
}

// Login marks the session authenticated as username and moves to the dashboard.
// Credentials are checked by the UserDirectory before this is called.
func (c *sessionControllerImpl) Login(username string) error {
	if strings.TrimSpace(username) == "" {
		return errors.NewInvalidInputError("username", username, "cannot be empty")
	}
	return c.apply(TransitionLogin, func(s *domain.Session) {
		s.Authenticated = true
		s.Username = username
	})
}

// RequestRegister opens the registration form
func (c *sessionControllerImpl) RequestRegister() error {
	return c.apply(TransitionRequestRegister, nil)
}

// RegisterSucceeded returns to the login page; the new user still has to log in
func (c *sessionControllerImpl) RegisterSucceeded() error {
	return c.apply(TransitionRegisterSucceeded, nil)
}

// CancelRegister leaves the registration form without registering
func (c *sessionControllerImpl) CancelRegister() error {
	return c.apply(TransitionCancelRegister, nil)
}

// OpenTaskManager moves from the dashboard to the task manager. It is refused
// for an unauthenticated session.
func (c *sessionControllerImpl) OpenTaskManager() error {
	if !c.session.Authenticated {
		return errors.NewPermissionError("open", string(domain.PageTaskManager))
	}
	return c.apply(TransitionOpenTaskManager, nil)
}

// Logout clears the authentication and returns to the login page
func (c *sessionControllerImpl) Logout() error {
	return c.apply(TransitionLogout, func(s *domain.Session) {
		s.Authenticated = false
		s.Username = ""
	})
}

// Back returns from the task manager to the dashboard
func (c *sessionControllerImpl) Back() error {
	return c.apply(TransitionBack, nil)
}

// apply performs transition t if the table allows it from the current page.
// The session is modified only on success.
func (c *sessionControllerImpl) apply(t Transition, mutate func(*domain.Session)) error {
	from := c.session.CurrentPage
	to, ok := allowedTransitions[from][t]
	if !ok {
		return NewTransitionError(from, t)
	}

	next := c.session
	next.CurrentPage = to
	if mutate != nil {
		mutate(&next)
	}
	c.session = next

	logging.Debugf("session %s: %s -> %s (%s)\n", c.session.ID, from, to, t)
	return nil
}
