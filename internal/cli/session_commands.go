package cli

import (
	"context"
	"fmt"

	"task-tracker/internal/api"
	"task-tracker/internal/errors"
)

// requireArgs reports a usage error unless exactly n arguments were given
func requireArgs(args []string, n int, usage string) error {
	if len(args) != n {
		return errors.NewInvalidInputError("arguments", args, "usage: "+usage)
	}
	return nil
}

// LoginCommand handles the login command
type LoginCommand struct {
	api api.API
}

// NewLoginCommand creates a new login command handler
func NewLoginCommand(app *App) *LoginCommand {
	return &LoginCommand{api: app.api}
}

// Execute runs the login command
func (c *LoginCommand) Execute(ctx context.Context, args []string) error {
	if err := requireArgs(args, 2, "login <username> <password>"); err != nil {
		return err
	}
	return c.api.Login(ctx, args[0], args[1])
}

// RegisterCommand opens the registration form
type RegisterCommand struct {
	api api.API
}

// NewRegisterCommand creates a new register command handler
func NewRegisterCommand(app *App) *RegisterCommand {
	return &RegisterCommand{api: app.api}
}

// Execute runs the register command
func (c *RegisterCommand) Execute(ctx context.Context, args []string) error {
	return c.api.StartRegistration(ctx)
}

// SignupCommand submits the registration form
type SignupCommand struct {
	app *App
}

// NewSignupCommand creates a new signup command handler
func NewSignupCommand(app *App) *SignupCommand {
	return &SignupCommand{app: app}
}

// Execute runs the signup command
func (c *SignupCommand) Execute(ctx context.Context, args []string) error {
	if err := requireArgs(args, 2, "signup <username> <password>"); err != nil {
		return err
	}
	if err := c.app.api.Register(ctx, args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintln(c.app.out, "Registration successful! Please log in.")
	return nil
}

// CancelCommand leaves the registration form
type CancelCommand struct {
	api api.API
}

// NewCancelCommand creates a new cancel command handler
func NewCancelCommand(app *App) *CancelCommand {
	return &CancelCommand{api: app.api}
}

// Execute runs the cancel command
func (c *CancelCommand) Execute(ctx context.Context, args []string) error {
	return c.api.CancelRegistration(ctx)
}

// OpenTaskManagerCommand moves from the dashboard to the task manager
type OpenTaskManagerCommand struct {
	api api.API
}

// NewOpenTaskManagerCommand creates a new tasks command handler
func NewOpenTaskManagerCommand(app *App) *OpenTaskManagerCommand {
	return &OpenTaskManagerCommand{api: app.api}
}

// Execute runs the tasks command
func (c *OpenTaskManagerCommand) Execute(ctx context.Context, args []string) error {
	return c.api.OpenTaskManager(ctx)
}

// BackCommand returns to the dashboard
type BackCommand struct {
	api api.API
}

// NewBackCommand creates a new back command handler
func NewBackCommand(app *App) *BackCommand {
	return &BackCommand{api: app.api}
}

// Execute runs the back command
func (c *BackCommand) Execute(ctx context.Context, args []string) error {
	return c.api.Back(ctx)
}

// LogoutCommand ends the authenticated session
type LogoutCommand struct {
	app *App
}

// NewLogoutCommand creates a new logout command handler
func NewLogoutCommand(app *App) *LogoutCommand {
	return &LogoutCommand{app: app}
}

// Execute runs the logout command
func (c *LogoutCommand) Execute(ctx context.Context, args []string) error {
	if err := c.app.api.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(c.app.out, "Logged out.")
	return nil
}
