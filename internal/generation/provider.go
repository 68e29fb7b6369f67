package generation

import "context"

// Provider defines the interface for a single AI text completion vendor.
// This interface serves as a boundary between the application core and
// external LLM services, following the hexagonal architecture pattern.
// Implementations live in internal/platform/llm.
type Provider interface {
	// GenerateCompletion sends the prompt to the vendor and returns the raw
	// model output text.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can be used for cancellation
	//   - prompt: The fully rendered prompt to send
	//   - maxTokens: Upper bound on generated tokens
	//   - temperature: Sampling temperature
	//
	// Returns the raw response text or an error if the call fails.
	GenerateCompletion(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)

	// Name returns the vendor name, e.g. "openai" or "anthropic".
	Name() string
}
