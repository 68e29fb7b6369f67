// Package llm contains the vendor-specific generation.Provider adapters
// (OpenAI, Anthropic) and the factory that selects one from configuration.
// Each adapter maps the single-prompt completion call onto its vendor's
// native API shape, enforces the configured request timeout, and logs token
// usage.
package llm
