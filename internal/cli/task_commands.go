package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute runs the add command: add <category> <date|today> <description...>
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("arguments", args, "usage: add <category> <YYYY-MM-DD|today> <description...>")
	}

	category, ok := domain.ParseCategory(args[0])
	if !ok {
		// Let validation report the allowed categories
		category = domain.Category(args[0])
	}

	dueDate, err := c.parseDueDate(args[1])
	if err != nil {
		return err
	}

	description := strings.Join(args[2:], " ")
	if _, err := c.app.api.AddTask(ctx, description, category, dueDate); err != nil {
		return err
	}

	fmt.Fprintln(c.app.out, "Task added successfully!")
	return nil
}

func (c *AddCommand) parseDueDate(value string) (domain.Date, error) {
	if strings.EqualFold(value, "today") {
		return c.app.api.Today(), nil
	}
	date, err := domain.ParseDate(value)
	if err != nil {
		return domain.Date{}, errors.NewInvalidInputError("due_date", value, "expected YYYY-MM-DD or today")
	}
	return date, nil
}

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute runs the list command: list [category|All]
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	filter := domain.CategoryAll
	if len(args) > 0 {
		filter = canonicalFilter(strings.Join(args, " "))
	}

	tasks, err := c.app.api.ListTasks(ctx, filter)
	if err != nil {
		return err
	}

	c.app.printTasks(tasks, "No tasks found.")
	return nil
}

// canonicalFilter maps a case-insensitive category name or "all" to its stored spelling
func canonicalFilter(value string) string {
	if strings.EqualFold(value, domain.CategoryAll) {
		return domain.CategoryAll
	}
	if category, ok := domain.ParseCategory(value); ok {
		return string(category)
	}
	return value
}

// SearchCommand handles the search command
type SearchCommand struct {
	app *App
}

// NewSearchCommand creates a new search command handler
func NewSearchCommand(app *App) *SearchCommand {
	return &SearchCommand{app: app}
}

// Execute runs the search command: search <description|category> <query...>
func (c *SearchCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("arguments", args, "usage: search <description|category> <query...>")
	}

	field, ok := domain.ParseSearchField(args[0])
	if !ok {
		return errors.NewInvalidInputError("field", args[0], "expected description or category")
	}
	query := strings.Join(args[1:], " ")

	tasks, err := c.app.api.SearchTasks(ctx, field, query)
	if err != nil {
		return err
	}

	c.app.printTasks(tasks, fmt.Sprintf("No tasks found matching %s: %s", field, query))
	return nil
}

// MarkCommand handles the mark command
type MarkCommand struct {
	app *App
}

// NewMarkCommand creates a new mark command handler
func NewMarkCommand(app *App) *MarkCommand {
	return &MarkCommand{app: app}
}

// Execute runs the mark command: mark <Pending|Done> <description query...|#id>
func (c *MarkCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("arguments", args, "usage: mark <Pending|Done> <description query...|#id>")
	}

	status, ok := domain.ParseStatus(args[0])
	if !ok {
		return errors.NewInvalidInputError("status", args[0], "expected Pending or Done")
	}

	var (
		task *domain.Task
		err  error
	)
	if id, isID := parseTaskRef(args[1:]); isID {
		task, err = c.app.api.UpdateTaskStatusByID(ctx, id, status)
	} else {
		task, err = c.app.api.UpdateTaskStatus(ctx, strings.Join(args[1:], " "), status)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(c.app.out, "Task %q marked as %s!\n", task.Description, task.Status)
	return nil
}

// parseTaskRef recognises a single "#<id>" argument
func parseTaskRef(args []string) (int64, bool) {
	if len(args) != 1 || !strings.HasPrefix(args[0], "#") {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(args[0], "#"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// DueCommand prints the tasks due today
type DueCommand struct {
	app *App
}

// NewDueCommand creates a new due command handler
func NewDueCommand(app *App) *DueCommand {
	return &DueCommand{app: app}
}

// Execute runs the due command
func (c *DueCommand) Execute(ctx context.Context, args []string) error {
	tasks, err := c.app.api.DueToday(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.app.out, renderReminder(tasks))
	return nil
}
