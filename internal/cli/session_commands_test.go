package cli

import (
	"context"
	"testing"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginCommand_Execute(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedPage   domain.Page
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name:         "logs in with valid credentials",
			args:         []string{"admin", "admin123"},
			expectedPage: domain.PageDashboard,
		},
		{
			name:         "rejects wrong password",
			args:         []string{"admin", "nope"},
			expectedPage: domain.PageLogin,
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeAuthentication))
			},
		},
		{
			name:         "requires username and password",
			args:         []string{"admin"},
			expectedPage: domain.PageLogin,
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
				assert.Contains(t, err.Error(), "usage: login")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockAPI()
			app, _ := setupTestApp(t, mock)

			err := NewLoginCommand(app).Execute(context.Background(), tt.args)

			if tt.errorAssertion != nil {
				require.Error(t, err)
				tt.errorAssertion(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expectedPage, mock.ActivePage())
		})
	}
}

func TestSignupCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("registers and returns to login", func(t *testing.T) {
		mock := newMockAPI()
		mock.session.CurrentPage = domain.PageRegister
		app, out := setupTestApp(t, mock)

		err := NewSignupCommand(app).Execute(ctx, []string{"alice", "pw1"})

		require.NoError(t, err)
		assert.Equal(t, "pw1", mock.users["alice"])
		assert.Equal(t, domain.PageLogin, mock.ActivePage())
		assert.Contains(t, out.String(), "Registration successful")
	})

	t.Run("reports a taken username", func(t *testing.T) {
		mock := newMockAPI()
		mock.session.CurrentPage = domain.PageRegister
		app, out := setupTestApp(t, mock)

		err := NewSignupCommand(app).Execute(ctx, []string{"admin", "other"})

		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDuplicate))
		assert.Equal(t, "admin123", mock.users["admin"])
		assert.Empty(t, out.String())
	})
}

func TestNavigationCommands_Execute(t *testing.T) {
	ctx := context.Background()
	mock := newMockAPI()
	app, out := setupTestApp(t, mock)

	require.NoError(t, NewRegisterCommand(app).Execute(ctx, nil))
	assert.Equal(t, domain.PageRegister, mock.ActivePage())

	require.NoError(t, NewCancelCommand(app).Execute(ctx, nil))
	assert.Equal(t, domain.PageLogin, mock.ActivePage())

	mock.loggedIn(domain.PageDashboard)
	require.NoError(t, NewOpenTaskManagerCommand(app).Execute(ctx, nil))
	assert.Equal(t, domain.PageTaskManager, mock.ActivePage())

	require.NoError(t, NewBackCommand(app).Execute(ctx, nil))
	assert.Equal(t, domain.PageDashboard, mock.ActivePage())

	require.NoError(t, NewLogoutCommand(app).Execute(ctx, nil))
	assert.Equal(t, domain.PageLogin, mock.ActivePage())
	assert.False(t, mock.Session().Authenticated)
	assert.Contains(t, out.String(), "Logged out.")

	assert.Equal(t, []string{"StartRegistration", "CancelRegistration", "OpenTaskManager", "Back", "Logout"}, mock.calls)
}
