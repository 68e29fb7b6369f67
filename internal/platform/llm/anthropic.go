package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/postcraft/postcraft-api/internal/config"
	"github.com/postcraft/postcraft-api/internal/platform/logger"
)

// defaultAnthropicModel is used when no model override is configured.
const defaultAnthropicModel = "claude-3-5-sonnet-20241022"

// AnthropicProvider implements generation.Provider using the Anthropic
// messages API.
type AnthropicProvider struct {
	client anthropic.Client
	model  string
	logger *slog.Logger
}

// NewAnthropicProvider creates an Anthropic-backed provider from the
// configuration. The request timeout from the configuration is applied to
// every call.
func NewAnthropicProvider(cfg config.LLMConfig, log *slog.Logger) *AnthropicProvider {
	if log == nil {
		log = slog.Default()
	}

	model := cfg.Model
	if model == "" {
		model = defaultAnthropicModel
	}

	client := anthropic.NewClient(
		option.WithAPIKey(cfg.AnthropicAPIKey),
		option.WithRequestTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second),
	)

	return &AnthropicProvider{
		client: client,
		model:  model,
		logger: log,
	}
}

// GenerateCompletion implements generation.Provider.
func (p *AnthropicProvider) GenerateCompletion(
	ctx context.Context,
	prompt string,
	maxTokens int,
	temperature float64,
) (string, error) {
	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(p.model),
		MaxTokens:   int64(maxTokens),
		Temperature: anthropic.Float(temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic completion failed: %w", err)
	}
	if len(msg.Content) == 0 {
		return "", fmt.Errorf("anthropic returned no content blocks")
	}

	log := logger.FromContextOrDefault(ctx, p.logger)
	log.InfoContext(ctx, "anthropic token usage",
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens))

	return msg.Content[0].Text, nil
}

// Name implements generation.Provider.
func (p *AnthropicProvider) Name() string {
	return "anthropic"
}
