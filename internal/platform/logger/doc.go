// Package logger configures log/slog for the application: JSON output, a
// level picked from configuration, and helpers for carrying a logger through
// a context.
package logger
