package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/chime/internal/cli"
	"github.com/alexanderramin/chime/internal/db"
	"github.com/alexanderramin/chime/internal/repository"
	"github.com/alexanderramin/chime/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.chime/chime.db
	dbPath := os.Getenv("CHIME_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".chime", "chime.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	app := &cli.App{
		Schedules: service.NewScheduleService(scheduleRepo),
		Status:    service.NewStatusService(scheduleRepo, settingsRepo),
		Settings:  service.NewSettingsService(settingsRepo),
	}

	// Detect interactive terminal for setup/watch entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
