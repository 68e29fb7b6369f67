package main

import (
	"fmt"
	"log/slog"

	"github.com/postcraft/postcraft-api/internal/config"
)

// loadAppConfig loads the application configuration from environment
// variables or a config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"llm_provider", cfg.LLM.Provider)

	if cfg.Database.URL != "" {
		slog.Debug("Database configuration", "url_present", true)
	}
	if cfg.Auth.JWTSecret != "" {
		slog.Debug("Auth configuration", "jwt_secret_present", true)
	}
	if cfg.Storage.SupabaseURL != "" {
		slog.Debug("Storage configuration", "supabase_url_present", true, "bucket", cfg.Storage.Bucket)
	}

	return cfg, nil
}
