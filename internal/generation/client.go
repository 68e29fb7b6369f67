package generation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/postcraft/postcraft-api/internal/config"
	"github.com/postcraft/postcraft-api/internal/platform/logger"
)

// retryDelays is the backoff schedule. One delay follows each failed
// attempt, the last one before the client gives up, so the number of
// attempts equals len(retryDelays).
var retryDelays = []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}

// ResilientClient wraps a Provider with retry logic and default request
// parameters. All assist actions go through it.
type ResilientClient struct {
	provider    Provider
	maxTokens   int
	temperature float64
	logger      *slog.Logger

	// sleep waits for the given duration or until the context is done.
	// Overridable in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewResilientClient creates a ResilientClient around the given provider,
// taking token and temperature defaults from the configuration.
func NewResilientClient(provider Provider, cfg config.LLMConfig, log *slog.Logger) *ResilientClient {
	if log == nil {
		log = slog.Default()
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 700
	}

	return &ResilientClient{
		provider:    provider,
		maxTokens:   maxTokens,
		temperature: cfg.Temperature,
		logger:      log,
		sleep:       sleepContext,
	}
}

// GenerateCompletion sends the prompt to the provider, retrying failed
// attempts with exponential backoff (1s, 2s, 4s). When every attempt fails
// it returns ErrServiceUnavailable wrapping the last provider error.
func (c *ResilientClient) GenerateCompletion(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	log := logger.FromContextOrDefault(ctx, c.logger)
	maxAttempts := len(retryDelays)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		log.InfoContext(ctx, "LLM generation attempt",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", maxAttempts),
			slog.String("provider", c.provider.Name()))

		result, err := c.provider.GenerateCompletion(ctx, prompt, c.maxTokens, c.temperature)
		if err == nil {
			log.InfoContext(ctx, "LLM generation successful",
				slog.Int("attempt", attempt))
			return result, nil
		}

		lastErr = err
		log.WarnContext(ctx, "LLM generation attempt failed",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))

		delay := retryDelays[attempt-1]
		log.InfoContext(ctx, "backing off after failed attempt",
			slog.Duration("delay", delay))
		if err := c.sleep(ctx, delay); err != nil {
			return "", err
		}
	}

	log.ErrorContext(ctx, "all LLM generation attempts failed",
		slog.Int("attempts", maxAttempts),
		slog.String("error", lastErr.Error()))

	return "", fmt.Errorf("%w: last error: %v", ErrServiceUnavailable, lastErr)
}

// sleepContext blocks for d or until ctx is done, returning the context
// error in the latter case.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
