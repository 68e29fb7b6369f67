package llm

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/postcraft/postcraft-api/internal/config"
	"github.com/postcraft/postcraft-api/internal/generation"
)

// NewProvider selects and constructs the configured generation.Provider.
// Returns generation.ErrInvalidConfig when the provider name is unknown or
// the matching API key is missing.
func NewProvider(cfg config.LLMConfig, log *slog.Logger) (generation.Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("%w: openai API key not set", generation.ErrInvalidConfig)
		}
		return NewOpenAIProvider(cfg, log), nil

	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("%w: anthropic API key not set", generation.ErrInvalidConfig)
		}
		return NewAnthropicProvider(cfg, log), nil

	default:
		return nil, fmt.Errorf("%w: unknown provider %q (supported: openai, anthropic)",
			generation.ErrInvalidConfig, cfg.Provider)
	}
}
