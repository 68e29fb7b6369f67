// Package logger provides structured logging functionality for the application.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/postcraft/postcraft-api/internal/config"
)

// Setup builds the application's JSON logger at the configured level, installs
// it as the slog default, and returns it for explicit injection.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	return setup(cfg, os.Stdout)
}

// setup is the testable core of Setup, writing to the given output.
func setup(cfg config.ServerConfig, out io.Writer) (*slog.Logger, error) {
	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)
	return logger, nil
}

// parseLevel maps the configured name to a slog level, case-insensitively.
// An unrecognized name falls back to info with a warning rather than failing
// startup over a typo.
func parseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	slog.New(slog.NewTextHandler(os.Stderr, nil)).Warn(
		"invalid log level configured, using default level",
		"configured_level", name,
		"default_level", "info")
	return slog.LevelInfo
}
