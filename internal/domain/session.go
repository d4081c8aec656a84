package domain

import "github.com/google/uuid"

// Page is one of the views the shell can show.
type Page string

const (
	PageLogin       Page = "Login"
	PageRegister    Page = "Register"
	PageDashboard   Page = "Dashboard"
	PageTaskManager Page = "Task Manager"
)

// Pages returns every page.
func Pages() []Page {
	return []Page{PageLogin, PageRegister, PageDashboard, PageTaskManager}
}

// IsProtected reports whether the page needs an authenticated session.
func (p Page) IsProtected() bool {
	return p == PageDashboard || p == PageTaskManager
}

// Session is the authentication and navigation state of one running user.
// Invariant: CurrentPage.IsProtected() implies Authenticated.
type Session struct {
	ID            uuid.UUID
	Authenticated bool
	CurrentPage   Page
	Username      string
}

// NewSession returns a fresh unauthenticated session on the login page.
func NewSession() Session {
	return Session{
		ID:          uuid.New(),
		CurrentPage: PageLogin,
	}
}
