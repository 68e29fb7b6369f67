// Package main implements the entry point for the PostCraft API server,
// the backend-for-frontend that manages users, brand blueprints, and
// social post drafts, and exposes the AI writing assistant.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	migrateCmd := flag.String(
		"migrate",
		"",
		"Run a database migration command (up, down, reset, status, version, create) and exit",
	)
	migrationName := flag.String(
		"migration-name",
		"",
		"Name for the new migration when using -migrate create",
	)
	migrationsDir := flag.String(
		"migrations-dir",
		defaultMigrationsDir,
		"Directory containing goose SQL migrations",
	)
	flag.Parse()

	if err := run(*migrateCmd, *migrationName, *migrationsDir); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

// run wires the application together and either executes a migration
// command or starts the HTTP server.
func run(migrateCmd, migrationName, migrationsDir string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := setupAppLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	slog.SetDefault(appLogger)

	if migrateCmd != "" {
		return runMigrations(cfg, appLogger, migrateCmd, migrationName, migrationsDir)
	}

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		// newApplication does not take ownership of the connection until
		// it succeeds.
		if closeErr := db.Close(); closeErr != nil {
			appLogger.Error("Error closing database connection", "error", closeErr)
		}
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if err := app.Run(ctx); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "PostCraft API server stopped")
	return nil
}
