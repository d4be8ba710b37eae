package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/daybook-cli/daybook/internal/cli"
	"github.com/daybook-cli/daybook/internal/cli/backups"
	"github.com/daybook-cli/daybook/internal/cli/days"
	"github.com/daybook-cli/daybook/internal/cli/money"
	"github.com/daybook-cli/daybook/internal/cli/slots"
	"github.com/daybook-cli/daybook/internal/cli/statistics"
	"github.com/daybook-cli/daybook/internal/cli/system"
	"github.com/daybook-cli/daybook/internal/cli/todos"
	"github.com/daybook-cli/daybook/internal/cli/trackers"
	"github.com/daybook-cli/daybook/internal/constants"
	"github.com/daybook-cli/daybook/internal/errors"
	"github.com/daybook-cli/daybook/internal/keyring"
	"github.com/daybook-cli/daybook/internal/logger"
	"github.com/daybook-cli/daybook/internal/planner"
	"github.com/daybook-cli/daybook/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Data path or PostgreSQL connection string. Use a .db path for SQLite, a directory for per-day JSON files, or postgres:// (credentials must NOT be embedded; use ${env}, .pgpass, or the OS keyring)." default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init    system.InitCmd   `cmd:"" help:"Initialize daybook storage."`
	Doctor  system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Day     days.DayCmd      `cmd:"" help:"Show the record for a day."`
	History days.HistoryCmd  `cmd:"" help:"List all recorded days."`
	Todo    struct {
		Add    todos.TodoAddCmd    `cmd:"" help:"Add a todo for a day."`
		List   todos.TodoListCmd   `cmd:"" help:"List a day's todos." default:"1"`
		Toggle todos.TodoToggleCmd `cmd:"" help:"Toggle a todo's completion."`
		Delete todos.TodoDeleteCmd `cmd:"" help:"Delete a todo."`
	} `cmd:"" help:"Manage todos."`
	Money struct {
		Add    money.MoneyAddCmd    `cmd:"" help:"Record an income or expense entry."`
		List   money.MoneyListCmd   `cmd:"" help:"List a day's money entries." default:"1"`
		Delete money.MoneyDeleteCmd `cmd:"" help:"Delete a money entry."`
	} `cmd:"" help:"Track income and expenses."`
	Slot struct {
		Set   slots.SlotSetCmd   `cmd:"" help:"Set the activity for an hour slot."`
		Clear slots.SlotClearCmd `cmd:"" help:"Clear an hour slot."`
		List  slots.SlotListCmd  `cmd:"" help:"List a day's hour slots." default:"1"`
	} `cmd:"" help:"Manage the hourly schedule."`
	Water struct {
		Add  trackers.WaterAddCmd  `cmd:"" help:"Log water intake." default:"1"`
		Sub  trackers.WaterSubCmd  `cmd:"" help:"Remove logged water intake."`
		Goal trackers.WaterGoalCmd `cmd:"" help:"Set the daily water goal."`
	} `cmd:"" help:"Track water intake."`
	Meal      trackers.MealSetCmd   `cmd:"" help:"Set a meal plan entry."`
	Exercise  trackers.ExerciseCmd  `cmd:"" help:"Log exercise hours."`
	Rate      trackers.RateCmd      `cmd:"" help:"Rate a day from 1 to 5."`
	Highlight trackers.HighlightCmd `cmd:"" help:"Set a day's highlight."`
	Stats     statistics.StatsCmd   `cmd:"" help:"Show aggregated statistics."`
	Backup    struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage data backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store the database connection string in the OS keyring."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the connection string from the OS keyring."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check keyring availability and stored credentials."`
	} `cmd:"" help:"Manage stored database credentials."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal daily planner: todos, schedule, money, and trackers"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
			"env":         constants.EnvConnectionVar,
		},
	)

	configPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir(configPath)}); err != nil {
		errors.Fatalf("failed to initialize logging: %v", err)
	}

	backend, err := selectBackend(configPath)
	if err != nil {
		errors.Fatal(err)
	}
	defer backend.Close()

	command := ctx.Command()
	if command != "init" && !strings.HasPrefix(command, "keyring") {
		if err := backend.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", errors.Format(err))
			fmt.Fprintf(os.Stderr, "Run '%s init' to initialize storage.\n", constants.AppName)
			os.Exit(1)
		}
	}

	appCtx := &cli.Context{
		Backend: backend,
		Store:   planner.New(backend),
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

// selectBackend picks a storage backend from the config value: a PostgreSQL
// connection string, the literal "postgres" (resolved from the environment or
// the OS keyring), a .db file for SQLite, or a directory of per-day JSON files.
func selectBackend(configPath string) (storage.Backend, error) {
	if configPath == "postgres" {
		connStr, err := resolveConnectionString()
		if err != nil {
			return nil, err
		}
		configPath = connStr
	}

	if strings.HasPrefix(configPath, "postgres://") || strings.HasPrefix(configPath, "postgresql://") {
		if storage.HasEmbeddedCredentials(configPath) {
			return nil, fmt.Errorf("PostgreSQL connection strings with embedded credentials are not allowed; "+
				"store credentials with '%s keyring set' or the %s environment variable",
				constants.AppName, constants.EnvConnectionVar)
		}
		return storage.NewPostgresBackend(configPath), nil
	}

	if strings.HasSuffix(configPath, ".db") {
		return storage.NewSQLiteBackend(configPath), nil
	}

	return storage.NewFileBackend(configPath), nil
}

func resolveConnectionString() (string, error) {
	if connStr := os.Getenv(constants.EnvConnectionVar); connStr != "" {
		return connStr, nil
	}
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		return "", fmt.Errorf("no connection string found: set %s or run '%s keyring set' (%v)",
			constants.EnvConnectionVar, constants.AppName, err)
	}
	return connStr, nil
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// configDir returns the directory logs live under. Connection strings are not
// paths, so those fall back to the default config directory.
func configDir(configPath string) string {
	if strings.HasPrefix(configPath, "postgres") {
		return filepath.Dir(expandHome(constants.DefaultConfigPath))
	}
	return filepath.Dir(configPath)
}
