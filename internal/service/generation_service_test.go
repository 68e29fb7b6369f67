package service_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/postcraft/postcraft-api/internal/config"
	"github.com/postcraft/postcraft-api/internal/domain"
	"github.com/postcraft/postcraft-api/internal/generation"
	"github.com/postcraft/postcraft-api/internal/mocks"
	"github.com/postcraft/postcraft-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCompletionClient lets tests drive the generation service without the
// retry layer in between.
type stubCompletionClient struct {
	response string
	err      error
	prompts  []string
}

func (s *stubCompletionClient) GenerateCompletion(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func newGenerationService(t *testing.T, client service.CompletionClient, blueprints *mocks.MockBlueprintStore) service.GenerationService {
	t.Helper()

	if blueprints == nil {
		blueprints = &mocks.MockBlueprintStore{}
	}
	loader, err := service.NewBrandContextLoader(blueprints, nil)
	require.NoError(t, err)

	svc, err := service.NewGenerationService(client, loader, nil)
	require.NoError(t, err)
	return svc
}

func TestAssistRejectsEmptyInput(t *testing.T) {
	// Use the real retry client so the call-count assertion proves no
	// network attempt was made for invalid input.
	provider := &mocks.MockProvider{Response: `{"content": "never"}`}
	client := generation.NewResilientClient(provider, config.LLMConfig{MaxTokens: 700}, nil)
	svc := newGenerationService(t, client, nil)

	for _, action := range domain.Actions() {
		for _, input := range []string{"", "   "} {
			t.Run(fmt.Sprintf("%s %q", action, input), func(t *testing.T) {
				result, err := svc.Assist(context.Background(), uuid.New(), action, input)
				assert.Nil(t, result)
				assert.ErrorIs(t, err, service.ErrEmptyText)
			})
		}
	}

	assert.Zero(t, provider.CallCount(), "invalid input must never reach the provider")
}

func TestAssistUnknownAction(t *testing.T) {
	client := &stubCompletionClient{response: `{"content": "x"}`}
	svc := newGenerationService(t, client, nil)

	result, err := svc.Assist(context.Background(), uuid.New(), domain.Action("translate"), "some text")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrUnknownAction)
	assert.Empty(t, client.prompts)
}

func TestAssistContinueAppendsToDraft(t *testing.T) {
	client := &stubCompletionClient{
		response: `{"content": "more text", "hashtags": ["Writing"], "hook": "A better opener"}`,
	}
	svc := newGenerationService(t, client, nil)

	result, err := svc.Assist(context.Background(), uuid.New(), domain.ActionContinue, "Hello world")
	require.NoError(t, err)

	// The continuation is appended to the original draft after a blank line.
	assert.Equal(t, "Hello world\n\nmore text", result.Content)
	assert.Equal(t, []string{"Writing"}, result.Hashtags)
	assert.Equal(t, "A better opener", result.Hook)
}

func TestAssistRephraseReturnsModelContentOnly(t *testing.T) {
	client := &stubCompletionClient{
		response: `{"content": "Said differently.", "hashtags": [], "hook": ""}`,
	}
	svc := newGenerationService(t, client, nil)

	result, err := svc.Assist(context.Background(), uuid.New(), domain.ActionRephrase, "Original wording.")
	require.NoError(t, err)
	assert.Equal(t, "Said differently.", result.Content, "only continue concatenates the input draft")
}

func TestAssistGrammarScenario(t *testing.T) {
	userID := uuid.New()
	blueprints := &mocks.MockBlueprintStore{
		GetByUserIDFn: func(ctx context.Context, id uuid.UUID) (*domain.BrandBlueprint, error) {
			return &domain.BrandBlueprint{
				ID:     uuid.New(),
				UserID: id,
				Tone:   "Witty",
				Topics: []string{"Marketing"},
				Goal:   "Grow an audience",
			}, nil
		},
	}
	client := &stubCompletionClient{
		response: "```json\n{\"content\": \"I am writing this post.\", \"hashtags\": [\"Writing\"], \"hook\": \"Typos undermine trust.\"}\n```",
	}
	svc := newGenerationService(t, client, blueprints)

	result, err := svc.Assist(context.Background(), userID, domain.ActionGrammar, "I are writing this post.")
	require.NoError(t, err)

	assert.Equal(t, "I am writing this post.", result.Content)
	assert.Equal(t, []string{"Writing"}, result.Hashtags)
	assert.Equal(t, "Typos undermine trust.", result.Hook)

	// The grammar prompt carries the draft but deliberately no blueprint.
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "I are writing this post.")
	assert.NotContains(t, client.prompts[0], "Witty")
}

func TestAssistMergesBrandContextIntoPrompt(t *testing.T) {
	blueprints := &mocks.MockBlueprintStore{
		GetByUserIDFn: func(ctx context.Context, id uuid.UUID) (*domain.BrandBlueprint, error) {
			return &domain.BrandBlueprint{
				ID:     uuid.New(),
				UserID: id,
				Tone:   "Bold",
				Topics: []string{"Fintech", "Payments"},
				Goal:   "Win enterprise deals",
			}, nil
		},
	}
	client := &stubCompletionClient{response: `{"content": "x", "hashtags": [], "hook": ""}`}
	svc := newGenerationService(t, client, blueprints)

	_, err := svc.Assist(context.Background(), uuid.New(), domain.ActionEngagement, "My draft.")
	require.NoError(t, err)

	require.Len(t, client.prompts, 1)
	prompt := client.prompts[0]
	assert.Contains(t, prompt, "Tone: Bold")
	assert.Contains(t, prompt, "Topics: Fintech, Payments")
	assert.Contains(t, prompt, "Goal: Win enterprise deals")
	assert.Contains(t, prompt, "My draft.")
	assert.False(t, strings.Contains(prompt, "{tone}"), "no unresolved placeholders may leak into prompts")
}

func TestAssistPropagatesServiceUnavailable(t *testing.T) {
	client := &stubCompletionClient{
		err: fmt.Errorf("%w: last error: connection reset", generation.ErrServiceUnavailable),
	}
	svc := newGenerationService(t, client, nil)

	result, err := svc.Assist(context.Background(), uuid.New(), domain.ActionShorter, "A long draft.")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, generation.ErrServiceUnavailable)
}

func TestAssistRejectsMalformedModelOutput(t *testing.T) {
	client := &stubCompletionClient{response: "Sure! Here's a better version of your post:"}
	svc := newGenerationService(t, client, nil)

	result, err := svc.Assist(context.Background(), uuid.New(), domain.ActionRephrase, "Draft.")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, generation.ErrInvalidModelOutput)
}

func TestNewGenerationServiceValidatesDependencies(t *testing.T) {
	loader, err := service.NewBrandContextLoader(&mocks.MockBlueprintStore{}, nil)
	require.NoError(t, err)

	_, err = service.NewGenerationService(nil, loader, nil)
	assert.Error(t, err)

	_, err = service.NewGenerationService(&stubCompletionClient{}, nil, nil)
	assert.Error(t, err)
}
