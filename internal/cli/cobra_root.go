package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
	"task-tracker/internal/logging"
	"task-tracker/internal/services"
)

// Version is printed by the version command
var Version = "dev"

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd        *cobra.Command
	configFile string
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand() *RootCommand {
	root := &RootCommand{}

	root.cmd = &cobra.Command{
		Use:   "tasks",
		Short: "An interactive task manager",
		Long: `tasks is an interactive task manager shell.

Log in, then open the task manager to add, list, search and complete tasks.
Tasks due today are shown on the dashboard. Nothing is written to disk: all
tasks and accounts live for as long as the shell runs.

EXAMPLES:
  tasks                                    # Start the shell
  tasks --default-user me --default-password secret
  tasks --config ~/.tasks.yaml

Inside the shell:
  login admin admin123
  tasks
  add Work today Pay bills
  list
  mark Done pay
  help

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults

    TASKS_CONFIG                           YAML config file
    TASKS_DEFAULT_USERNAME                 Seeded username (default: admin)
    TASKS_DEFAULT_PASSWORD                 Seeded password (default: admin123)
    TASKS_BCRYPT_COST                      Password hashing cost (default: 10)
    TASKS_DESCRIPTION_MAX                  Max task description length (default: 0, unlimited)
    TASKS_DATE_FORMAT                      Due date display layout (default: 2006-01-02)
    TASKS_APP_TIMEOUT                      Per-command timeout (default: 10s)
    TASKS_APP_VERBOSE                      Enable verbose output (default: false)
    TASKS_PROMPT                           Shell prompt (default: "> ")
    TASKS_DEBUG                            Print debug output to stderr`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.runShell(cmd)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Command exposes the cobra command, mainly for tests
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command
func (r *RootCommand) Execute(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.StringVar(&r.configFile, "config", "", "YAML config file (overrides TASKS_CONFIG)")

	// Auth configuration
	flags.String("default-user", "", "Seeded username (overrides TASKS_DEFAULT_USERNAME)")
	flags.String("default-password", "", "Seeded password (overrides TASKS_DEFAULT_PASSWORD)")
	flags.Int("bcrypt-cost", 0, "Password hashing cost (overrides TASKS_BCRYPT_COST)")

	// Validation configuration
	flags.Int("description-max-length", 0, "Maximum task description length (overrides TASKS_DESCRIPTION_MAX)")

	// Display configuration
	flags.String("date-format", "", "Due date display layout (overrides TASKS_DATE_FORMAT)")

	// Application configuration
	flags.Duration("timeout", 0, "Per-command timeout (overrides TASKS_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TASKS_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive shell (default)",
		Long: `Start the interactive shell. Commands are read one per line from
standard input; type help for the commands of the current page.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runShell(cmd)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "tasks %s\n", Version)
			return nil
		},
	}

	r.cmd.AddCommand(shellCmd, versionCmd)
}

// runShell builds the store, services and API from configuration and runs the shell
func (r *RootCommand) runShell(cmd *cobra.Command) error {
	cfg, err := r.loadConfig()
	if err != nil {
		return err
	}
	if cfg.Application.Verbose {
		logging.Enable(true)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	repo, err := config.CreateRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	workspace, err := services.NewWorkspace(ctx, repo, cfg)
	if err != nil {
		return fmt.Errorf("failed to seed default user: %w", err)
	}

	app := NewApp(api.New(workspace), cfg, cmd.OutOrStdout())
	return app.Run(ctx, cmd.InOrStdin())
}

// loadConfig runs the config cascade with the flags given on the command line
func (r *RootCommand) loadConfig() (*config.Config, error) {
	overrides, err := r.getOverridesFromFlags()
	if err != nil {
		return nil, err
	}
	return config.NewLoader().WithConfigFile(r.configFile).LoadWithOverrides(overrides)
}

// getOverridesFromFlags collects only the flags the user actually set
func (r *RootCommand) getOverridesFromFlags() (*config.ConfigOverrides, error) {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("default-user") {
		v, err := flags.GetString("default-user")
		if err != nil {
			return nil, err
		}
		overrides.DefaultUsername = &v
	}
	if flags.Changed("default-password") {
		v, err := flags.GetString("default-password")
		if err != nil {
			return nil, err
		}
		overrides.DefaultPassword = &v
	}
	if flags.Changed("bcrypt-cost") {
		v, err := flags.GetInt("bcrypt-cost")
		if err != nil {
			return nil, err
		}
		overrides.BcryptCost = &v
	}
	if flags.Changed("description-max-length") {
		v, err := flags.GetInt("description-max-length")
		if err != nil {
			return nil, err
		}
		overrides.DescriptionMaxLength = &v
	}
	if flags.Changed("date-format") {
		v, err := flags.GetString("date-format")
		if err != nil {
			return nil, err
		}
		overrides.DateFormat = &v
	}
	if flags.Changed("timeout") {
		v, err := flags.GetDuration("timeout")
		if err != nil {
			return nil, err
		}
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, err := flags.GetBool("verbose")
		if err != nil {
			return nil, err
		}
		overrides.Verbose = &v
	}

	return overrides, nil
}
