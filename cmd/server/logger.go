package main

import (
	"fmt"
	"log/slog"

	"github.com/postcraft/postcraft-api/internal/config"
	"github.com/postcraft/postcraft-api/internal/platform/logger"
)

// setupAppLogger configures the application logger from the server config.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	return l, nil
}
