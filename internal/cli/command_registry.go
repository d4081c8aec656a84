package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

// Command represents a shell verb
type Command interface {
	Execute(ctx context.Context, args []string) error
}

type registeredCommand struct {
	command Command
	usage   string
	arity   int
	pages   []domain.Page
}

// CommandRegistry manages the shell verbs and the pages each one is offered on
type CommandRegistry struct {
	app      *App
	commands map[string]registeredCommand
}

// NewCommandRegistry creates a registry holding every shell verb
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		app:      app,
		commands: make(map[string]registeredCommand),
	}

	login := []domain.Page{domain.PageLogin}
	register := []domain.Page{domain.PageRegister}
	dashboard := []domain.Page{domain.PageDashboard}
	taskManager := []domain.Page{domain.PageTaskManager}
	everywhere := domain.Pages()

	registry.Register("login", "login <username> <password>", 2, NewLoginCommand(app), login...)
	registry.Register("register", "register", 0, NewRegisterCommand(app), login...)
	registry.Register("signup", "signup <username> <password>", 2, NewSignupCommand(app), register...)
	registry.Register("cancel", "cancel", 0, NewCancelCommand(app), register...)
	registry.Register("tasks", "tasks", 0, NewOpenTaskManagerCommand(app), dashboard...)
	registry.Register("logout", "logout", 0, NewLogoutCommand(app), dashboard...)
	registry.Register("back", "back", 0, NewBackCommand(app), taskManager...)
	registry.Register("add", "add <category> <YYYY-MM-DD|today> <description...>", 3, NewAddCommand(app), taskManager...)
	registry.Register("list", "list [category|All]", 1, NewListCommand(app), taskManager...)
	registry.Register("search", "search <description|category> <query...>", 2, NewSearchCommand(app), taskManager...)
	registry.Register("mark", "mark <Pending|Done> <description query...|#id>", 2, NewMarkCommand(app), taskManager...)
	registry.Register("due", "due", 0, NewDueCommand(app), append(dashboard, taskManager...)...)
	registry.Register("status", "status", 0, NewStatusCommand(app), everywhere...)
	registry.Register("help", "help", 0, NewHelpCommand(app), everywhere...)
	registry.Register("quit", "quit", 0, NewQuitCommand(app), everywhere...)

	return registry
}

// Register adds a command offered on the given pages. The command receives at
// most arity arguments and the last one holds the rest of the line.
func (r *CommandRegistry) Register(name, usage string, arity int, command Command, pages ...domain.Page) {
	r.commands[name] = registeredCommand{command: command, usage: usage, arity: arity, pages: pages}
}

// Execute runs the named command on input if the active page offers it
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, input string) error {
	registered, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, fmt.Sprintf("unknown command %q, type help", commandName))
	}

	page := r.app.api.ActivePage()
	if !registered.offeredOn(page) {
		return errors.NewInvalidInputError("command", commandName, fmt.Sprintf("%s is not available on the %s page", commandName, page))
	}

	args, err := splitArgs(input, registered.arity)
	if err != nil {
		return err
	}
	return registered.command.Execute(ctx, args)
}

// NamesFor lists the verbs offered on page in alphabetical order
func (r *CommandRegistry) NamesFor(page domain.Page) []string {
	names := make([]string, 0, len(r.commands))
	for name, registered := range r.commands {
		if registered.offeredOn(page) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// GetUsage returns one usage line per verb offered on page
func (r *CommandRegistry) GetUsage(page domain.Page) string {
	var b strings.Builder
	for _, name := range r.NamesFor(page) {
		fmt.Fprintf(&b, "  %s\n", r.commands[name].usage)
	}
	return b.String()
}

func (c registeredCommand) offeredOn(page domain.Page) bool {
	for _, p := range c.pages {
		if p == page {
			return true
		}
	}
	return false
}
