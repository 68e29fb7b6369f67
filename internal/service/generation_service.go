package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/postcraft/postcraft-api/internal/domain"
	"github.com/postcraft/postcraft-api/internal/generation"
	"github.com/postcraft/postcraft-api/internal/platform/logger"
)

// CompletionClient is the completion interface the generation service
// depends on, satisfied by generation.ResilientClient.
type CompletionClient interface {
	GenerateCompletion(ctx context.Context, prompt string) (string, error)
}

// GenerationService orchestrates the AI assist actions over a user's draft.
type GenerationService interface {
	// Assist runs the given action on the user's draft text and returns the
	// structured result.
	//
	// It returns ErrEmptyText for empty or whitespace-only input,
	// domain.ErrUnknownAction for an unregistered action,
	// generation.ErrServiceUnavailable when the provider stays unreachable,
	// and generation.ErrInvalidModelOutput when the model answer cannot be
	// parsed.
	Assist(ctx context.Context, userID uuid.UUID, action domain.Action, text string) (*generation.Result, error)
}

// GenerationServiceError wraps errors from the generation service with context.
type GenerationServiceError struct {
	// Operation is the operation that failed (e.g., "assist")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for GenerationServiceError.
func (e *GenerationServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("generation service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *GenerationServiceError) Unwrap() error {
	return e.Err
}

// generationServiceImpl implements the GenerationService interface
type generationServiceImpl struct {
	client        CompletionClient
	contextLoader BrandContextLoader
	logger        *slog.Logger
}

// NewGenerationService creates a new GenerationService.
// It returns an error if any of the required dependencies are nil.
func NewGenerationService(
	client CompletionClient,
	contextLoader BrandContextLoader,
	log *slog.Logger,
) (GenerationService, error) {
	if client == nil {
		return nil, &GenerationServiceError{
			Operation: "create_service",
			Message:   "completion client cannot be nil",
		}
	}
	if contextLoader == nil {
		return nil, &GenerationServiceError{
			Operation: "create_service",
			Message:   "context loader cannot be nil",
		}
	}
	if log == nil {
		log = slog.Default()
	}

	return &generationServiceImpl{
		client:        client,
		contextLoader: contextLoader,
		logger:        log.With("component", "generation_service"),
	}, nil
}

// Assist implements GenerationService.
func (s *generationServiceImpl) Assist(
	ctx context.Context,
	userID uuid.UUID,
	action domain.Action,
	text string,
) (*generation.Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// 1. Reject empty input before anything reaches the provider.
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	if !action.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, action)
	}

	log.InfoContext(ctx, "running assist action",
		slog.String("action", string(action)),
		slog.String("user_id", userID.String()),
		slog.Int("text_length", len(text)))

	// 2. Merge the user's brand context into the action's prompt template.
	brand := s.contextLoader.Load(ctx, userID)

	prompt, err := generation.RenderAction(action, brand, text)
	if err != nil {
		if errors.Is(err, generation.ErrUnknownTemplate) {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, action)
		}
		return nil, &GenerationServiceError{
			Operation: "assist",
			Message:   "failed to render prompt",
			Err:       err,
		}
	}

	// 3. One provider round-trip per request; retries live in the client.
	raw, err := s.client.GenerateCompletion(ctx, prompt)
	if err != nil {
		return nil, err
	}

	// 4. Enforce the JSON response contract.
	result, err := generation.ParseResult(raw)
	if err != nil {
		log.ErrorContext(ctx, "failed to parse model response",
			slog.String("action", string(action)),
			slog.String("error", err.Error()))
		return nil, err
	}

	// Continue returns the full post: the original draft with the new
	// paragraphs appended after a blank line.
	if action == domain.ActionContinue {
		result.Content = text + "\n\n" + result.Content
	}

	log.InfoContext(ctx, "assist action completed",
		slog.String("action", string(action)),
		slog.Int("content_length", len(result.Content)),
		slog.Int("hashtag_count", len(result.Hashtags)))

	return result, nil
}
