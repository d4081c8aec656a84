package cli

import (
	"context"
	"strings"
	"testing"

	"task-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_Run(t *testing.T) {
	mock := newMockAPI()
	app, out := setupTestApp(t, mock)

	input := strings.Join([]string{
		"login admin wrong",
		"login admin admin123",
		"",
		"tasks",
		"add Work today Pay bills",
		"logout",
		"back",
		"quit",
		"status",
	}, "\n")

	err := app.Run(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "== Login ==")
	assert.Contains(t, output, "Error: invalid username or password")
	assert.Contains(t, output, "== Dashboard ==")
	assert.Contains(t, output, "Welcome, admin!")
	assert.Contains(t, output, "No tasks due today.")
	assert.Contains(t, output, "== Task Manager ==")
	assert.Contains(t, output, "Task added successfully!")
	assert.Contains(t, output, "logout is not available on the Task Manager page")
	assert.Contains(t, output, "Reminder: 1 task due today:")
	assert.Contains(t, output, "Goodbye.")
	assert.NotContains(t, output, "Logged in as")

	assert.Equal(t, domain.PageDashboard, mock.ActivePage())
	assert.Equal(t, []string{
		"Login",
		"Login",
		"Dashboard",
		"OpenTaskManager",
		"AddTask Pay bills|Work|2024-06-01",
		"Back",
		"Dashboard",
	}, mock.calls)
}

func TestApp_RunStopsAtEOF(t *testing.T) {
	app, out := setupTestApp(t, newMockAPI())

	err := app.Run(context.Background(), strings.NewReader("status\n"))

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Page: Login")
	assert.Contains(t, out.String(), "Not logged in")
}

func TestApp_RunCancelledContext(t *testing.T) {
	app, _ := setupTestApp(t, newMockAPI())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := app.Run(ctx, strings.NewReader("status\n"))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestApp_ExecuteLine(t *testing.T) {
	tests := []struct {
		name           string
		mock           *mockAPI
		line           string
		expectedOutput []string
		expectedPage   domain.Page
	}{
		{
			name:           "ignores blank lines",
			mock:           newMockAPI(),
			line:           "   ",
			expectedPage:   domain.PageLogin,
			expectedOutput: nil,
		},
		{
			name:           "verbs are case-insensitive",
			mock:           newMockAPI(),
			line:           "REGISTER",
			expectedPage:   domain.PageRegister,
			expectedOutput: []string{"== Register =="},
		},
		{
			name:           "reports unknown verbs",
			mock:           newMockAPI(),
			line:           "fly away",
			expectedPage:   domain.PageLogin,
			expectedOutput: []string{"Error:", `unknown command "fly"`},
		},
		{
			name:           "help lists the commands of the page",
			mock:           newMockAPI().loggedIn(domain.PageDashboard),
			line:           "help",
			expectedPage:   domain.PageDashboard,
			expectedOutput: []string{"Commands on the Dashboard page:", "logout", "tasks"},
		},
		{
			name:           "status shows the user",
			mock:           newMockAPI().loggedIn(domain.PageTaskManager),
			line:           "status",
			expectedPage:   domain.PageTaskManager,
			expectedOutput: []string{"Page: Task Manager", "Logged in as: admin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, out := setupTestApp(t, tt.mock)

			app.ExecuteLine(context.Background(), tt.line)

			for _, expected := range tt.expectedOutput {
				assert.Contains(t, out.String(), expected)
			}
			if tt.expectedOutput == nil {
				assert.Empty(t, out.String())
			}
			assert.Equal(t, tt.expectedPage, tt.mock.ActivePage())
		})
	}
}

func TestApp_ExecuteLineKeepsFreeTextSpacing(t *testing.T) {
	t.Run("description", func(t *testing.T) {
		mock := newMockAPI().loggedIn(domain.PageTaskManager)
		app, _ := setupTestApp(t, mock)

		app.ExecuteLine(context.Background(), "add work today Pay  the\tbills")

		assert.Equal(t, []string{"AddTask Pay  the\tbills|Work|2024-06-01"}, mock.calls)
	})

	t.Run("password with spaces", func(t *testing.T) {
		mock := newMockAPI()
		mock.users["alice"] = "open  sesame"
		app, out := setupTestApp(t, mock)

		app.ExecuteLine(context.Background(), "login alice open  sesame")

		assert.NotContains(t, out.String(), "Error:")
		assert.Equal(t, domain.PageDashboard, mock.ActivePage())
	})

	t.Run("quoted username", func(t *testing.T) {
		mock := newMockAPI()
		mock.users["john doe"] = "pw"
		app, _ := setupTestApp(t, mock)

		app.ExecuteLine(context.Background(), `login "john doe" pw`)

		assert.Equal(t, "john doe", mock.Session().Username)
	})
}

func TestApp_ExecuteLineReportsTimeout(t *testing.T) {
	mock := newMockAPI().loggedIn(domain.PageTaskManager)
	mock.failErr = context.DeadlineExceeded
	app, out := setupTestApp(t, mock)

	app.ExecuteLine(context.Background(), "list")

	assert.Contains(t, out.String(), "Error: The operation timed out. Please try again.")
}
