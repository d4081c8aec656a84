package services

import "task-tracker/internal/domain"

// pageRouterImpl implements the PageRouter interface
type pageRouterImpl struct{}

// NewPageRouter creates a new PageRouter
func NewPageRouter() PageRouter {
	return pageRouterImpl{}
}

// Route returns the page to show for session. Protected pages need an
// authenticated session and fall back to the login page otherwise.
func (pageRouterImpl) Route(session domain.Session) domain.Page {
	page := session.CurrentPage
	switch {
	case page == domain.PageLogin, page == domain.PageRegister:
		return page
	case page.IsProtected() && session.Authenticated:
		return page
	}
	return domain.PageLogin
}
