package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/postcraft/postcraft-api/internal/config"
	"github.com/postcraft/postcraft-api/internal/platform/logger"
)

// defaultOpenAIModel is used when no model override is configured.
const defaultOpenAIModel = "gpt-4o-mini"

// systemMessage frames every chat completion request.
const systemMessage = "You are a professional LinkedIn content creator helping users write engaging posts."

// OpenAIProvider implements generation.Provider using the OpenAI chat
// completions API.
type OpenAIProvider struct {
	client openai.Client
	model  string
	logger *slog.Logger
}

// NewOpenAIProvider creates an OpenAI-backed provider from the configuration.
// The request timeout from the configuration is applied to every call.
func NewOpenAIProvider(cfg config.LLMConfig, log *slog.Logger) *OpenAIProvider {
	if log == nil {
		log = slog.Default()
	}

	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}

	client := openai.NewClient(
		option.WithAPIKey(cfg.OpenAIAPIKey),
		option.WithRequestTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second),
	)

	return &OpenAIProvider{
		client: client,
		model:  model,
		logger: log,
	}
}

// GenerateCompletion implements generation.Provider.
func (p *OpenAIProvider) GenerateCompletion(
	ctx context.Context,
	prompt string,
	maxTokens int,
	temperature float64,
) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemMessage),
			openai.UserMessage(prompt),
		},
		MaxTokens:   openai.Int(int64(maxTokens)),
		Temperature: openai.Float(temperature),
	})
	if err != nil {
		return "", fmt.Errorf("openai completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	log := logger.FromContextOrDefault(ctx, p.logger)
	log.InfoContext(ctx, "openai token usage",
		slog.Int64("prompt_tokens", resp.Usage.PromptTokens),
		slog.Int64("completion_tokens", resp.Usage.CompletionTokens),
		slog.Int64("total_tokens", resp.Usage.TotalTokens))

	return resp.Choices[0].Message.Content, nil
}

// Name implements generation.Provider.
func (p *OpenAIProvider) Name() string {
	return "openai"
}
