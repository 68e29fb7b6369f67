// Package config loads and validates application settings from environment
// variables and optional config files, giving the rest of the code typed
// access to server, database, auth, and LLM configuration.
package config
