package cli

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"time"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
)

// App is the interactive shell: it reads one command per line and renders the
// active page after every state change.
type App struct {
	api          api.API
	config       *config.Config
	registry     *CommandRegistry
	errorHandler *ErrorHandler
	out          io.Writer
	quit         bool
}

// NewApp creates a new shell over apiInstance writing to out
func NewApp(apiInstance api.API, cfg *config.Config, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	app := &App{
		api:          apiInstance,
		config:       cfg,
		errorHandler: NewErrorHandler(),
		out:          out,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run reads commands from in until EOF, "quit" or ctx is cancelled
func (a *App) Run(ctx context.Context, in io.Reader) error {
	a.renderPage(ctx)

	scanner := bufio.NewScanner(in)
	for !a.quit {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(a.out, a.config.Application.Prompt)
		if !scanner.Scan() {
			break
		}

		a.ExecuteLine(ctx, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read command: %w", err)
	}
	return nil
}

// ExecuteLine runs a single shell line and prints its outcome. Errors are shown
// and never end the shell.
func (a *App) ExecuteLine(ctx context.Context, line string) {
	name, input := splitVerb(line)
	if name == "" {
		return
	}

	before := a.api.ActivePage()

	cmdCtx, cancel := context.WithTimeout(ctx, a.commandTimeout())
	defer cancel()

	logging.Debugf("shell: %s on %s\n", name, before)
	if err := a.registry.Execute(cmdCtx, name, input); err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			err = errors.NewTimeoutError(name, a.commandTimeout())
		}
		fmt.Fprintf(a.out, "Error: %s\n", a.errorHandler.HandleSimple(err))
		return
	}

	if after := a.api.ActivePage(); after != before {
		a.renderPage(ctx)
	}
}

// renderPage prints the active page header, and the due today reminder when the
// dashboard is reached
func (a *App) renderPage(ctx context.Context) {
	page := a.api.ActivePage()
	fmt.Fprintln(a.out, renderHeader(page))
	fmt.Fprintln(a.out, renderHint(a.registry.NamesFor(page)))

	if page != domain.PageDashboard {
		return
	}

	cmdCtx, cancel := context.WithTimeout(ctx, a.commandTimeout())
	defer cancel()

	dashboard, err := a.api.Dashboard(cmdCtx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", a.errorHandler.HandleSimple(err))
		return
	}
	a.printDashboard(dashboard)
}

func (a *App) printDashboard(dashboard *api.Dashboard) {
	fmt.Fprintf(a.out, "Welcome, %s!\n", dashboard.Username)
	fmt.Fprintln(a.out, renderStats(dashboard.Stats))
	fmt.Fprintln(a.out, renderReminder(dashboard.DueToday))
}

func (a *App) printTasks(tasks []*domain.Task, empty string) {
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, empty)
		return
	}
	fmt.Fprint(a.out, renderTaskTable(tasks, a.config.Display.DateFormat))
}

func (a *App) commandTimeout() time.Duration {
	if timeout := a.config.GetCommandTimeout(); timeout > 0 {
		return timeout
	}
	return 10 * time.Second
}
