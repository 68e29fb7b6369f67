// Package generation talks to the LLM providers behind the post assistance
// features. It hides the OpenAI and Anthropic SDKs behind a single Provider
// interface so handlers and services stay provider-agnostic.
package generation
