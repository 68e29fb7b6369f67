package mocks

import (
	"context"
	"sync"

	"github.com/postcraft/postcraft-api/internal/generation"
)

// MockProvider implements generation.Provider for testing
type MockProvider struct {
	// GenerateCompletionFn allows test cases to mock the completion behavior
	GenerateCompletionFn func(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)

	// Default response values
	Response string
	Err      error

	// ProviderName is returned by Name; defaults to "mock" when empty.
	ProviderName string

	// Call tracking for verification
	GenerateCompletionCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times GenerateCompletion was called
		Count int

		// Prompts contains all prompts passed to GenerateCompletion calls
		Prompts []string

		// MaxTokens contains the token limit of each call
		MaxTokens []int

		// Temperatures contains the temperature of each call
		Temperatures []float64
	}
}

// GenerateCompletion implements the generation.Provider interface
func (m *MockProvider) GenerateCompletion(
	ctx context.Context,
	prompt string,
	maxTokens int,
	temperature float64,
) (string, error) {
	// Track call details for verification
	m.GenerateCompletionCalls.mu.Lock()
	m.GenerateCompletionCalls.Count++
	m.GenerateCompletionCalls.Prompts = append(m.GenerateCompletionCalls.Prompts, prompt)
	m.GenerateCompletionCalls.MaxTokens = append(m.GenerateCompletionCalls.MaxTokens, maxTokens)
	m.GenerateCompletionCalls.Temperatures = append(m.GenerateCompletionCalls.Temperatures, temperature)
	m.GenerateCompletionCalls.mu.Unlock()

	// Use custom function if provided
	if m.GenerateCompletionFn != nil {
		return m.GenerateCompletionFn(ctx, prompt, maxTokens, temperature)
	}

	// Return default values
	return m.Response, m.Err
}

// Name implements the generation.Provider interface
func (m *MockProvider) Name() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

// CallCount returns how many times GenerateCompletion was called.
func (m *MockProvider) CallCount() int {
	m.GenerateCompletionCalls.mu.Lock()
	defer m.GenerateCompletionCalls.mu.Unlock()
	return m.GenerateCompletionCalls.Count
}

// Verify interface compliance at compile time
var _ generation.Provider = (*MockProvider)(nil)
