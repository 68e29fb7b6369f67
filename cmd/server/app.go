package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/postcraft/postcraft-api/internal/config"
	"github.com/postcraft/postcraft-api/internal/generation"
	"github.com/postcraft/postcraft-api/internal/platform/llm"
	"github.com/postcraft/postcraft-api/internal/platform/postgres"
	"github.com/postcraft/postcraft-api/internal/platform/supabase"
	"github.com/postcraft/postcraft-api/internal/service"
	"github.com/postcraft/postcraft-api/internal/service/auth"
	"github.com/postcraft/postcraft-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore      store.UserStore
	postStore      store.PostStore
	blueprintStore store.BlueprintStore
	objectStore    store.ObjectStore

	// Service interfaces
	jwtService        auth.JWTService
	passwordVerifier  auth.PasswordVerifier
	postService       service.PostService
	blueprintService  service.BlueprintService
	generationService service.GenerationService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize JWT service
	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes,
		"refresh_token_lifetime_minutes", cfg.Auth.RefreshTokenLifetimeMinutes)

	// Initialize password verifier
	app.passwordVerifier = auth.NewBcryptVerifier()

	// Initialize stores
	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.postStore = postgres.NewPostgresPostStore(db, logger)
	app.blueprintStore = postgres.NewPostgresBlueprintStore(db, logger)

	// Object storage is optional; without it, image uploads are rejected
	// with a service unavailable response.
	if cfg.Storage.SupabaseURL != "" {
		objectStore, err := supabase.NewSupabaseObjectStore(cfg.Storage, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize object storage: %w", err)
		}
		app.objectStore = objectStore
		logger.Info("Object storage initialized", "bucket", cfg.Storage.Bucket)
	} else {
		logger.Warn("Object storage not configured, image uploads disabled")
	}

	// Initialize post service
	app.postService, err = service.NewPostService(app.postStore, app.objectStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create post service: %w", err)
	}

	// Initialize blueprint service
	app.blueprintService, err = service.NewBlueprintService(app.blueprintStore, db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create blueprint service: %w", err)
	}

	// Initialize the AI generation pipeline: provider adapter, resilient
	// completion client, brand context loader, and the orchestrating service.
	provider, err := llm.NewProvider(cfg.LLM, logger.With("component", "llm_provider"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM provider: %w", err)
	}
	logger.Info("LLM provider initialized", "provider", cfg.LLM.Provider)

	completionClient := generation.NewResilientClient(provider, cfg.LLM, logger)

	contextLoader, err := service.NewBrandContextLoader(app.blueprintStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create brand context loader: %w", err)
	}

	app.generationService, err = service.NewGenerationService(completionClient, contextLoader, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
