package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrInvalidConfig is returned when the provider configuration is invalid,
	// for example an unknown provider name or a missing API key.
	ErrInvalidConfig = errors.New("invalid generation configuration")

	// ErrServiceUnavailable is returned when the AI provider could not be
	// reached after all retry attempts were exhausted.
	ErrServiceUnavailable = errors.New("AI service temporarily unavailable")

	// ErrInvalidModelOutput is returned when the model response cannot be
	// parsed into the expected JSON structure.
	ErrInvalidModelOutput = errors.New("invalid response from language model")

	// ErrUnknownTemplate is returned when no prompt template is registered
	// for the requested action.
	ErrUnknownTemplate = errors.New("no prompt template for action")

	// ErrMissingVariable is returned when a prompt template still contains
	// an unresolved placeholder after rendering.
	ErrMissingVariable = errors.New("missing template variable")

	// ErrEmptyPrompt is returned when an empty prompt is passed to the
	// completion client.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
)
