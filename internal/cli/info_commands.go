package cli

import (
	"context"
	"fmt"
)

// StatusCommand prints the current session
type StatusCommand struct {
	app *App
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(app *App) *StatusCommand {
	return &StatusCommand{app: app}
}

// Execute runs the status command
func (c *StatusCommand) Execute(ctx context.Context, args []string) error {
	session := c.app.api.Session()

	fmt.Fprintf(c.app.out, "Page: %s\n", c.app.api.ActivePage())
	if session.Authenticated {
		fmt.Fprintf(c.app.out, "Logged in as: %s\n", session.Username)
	} else {
		fmt.Fprintln(c.app.out, "Not logged in")
	}
	fmt.Fprintf(c.app.out, "Session: %s\n", session.ID)
	return nil
}

// HelpCommand lists the commands of the active page
type HelpCommand struct {
	app *App
}

// NewHelpCommand creates a new help command handler
func NewHelpCommand(app *App) *HelpCommand {
	return &HelpCommand{app: app}
}

// Execute runs the help command
func (c *HelpCommand) Execute(ctx context.Context, args []string) error {
	page := c.app.api.ActivePage()
	fmt.Fprintf(c.app.out, "Commands on the %s page:\n", page)
	fmt.Fprint(c.app.out, c.app.registry.GetUsage(page))
	return nil
}

// QuitCommand ends the shell
type QuitCommand struct {
	app *App
}

// NewQuitCommand creates a new quit command handler
func NewQuitCommand(app *App) *QuitCommand {
	return &QuitCommand{app: app}
}

// Execute runs the quit command
func (c *QuitCommand) Execute(ctx context.Context, args []string) error {
	c.app.quit = true
	fmt.Fprintln(c.app.out, "Goodbye.")
	return nil
}
