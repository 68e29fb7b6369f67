package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm" validate:"required"`
	Storage  StorageConfig  `mapstructure:"storage"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`
	// TokenLifetimeMinutes defines how long issued access tokens remain
	// valid, in minutes.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	// RefreshTokenLifetimeMinutes defines how long issued refresh tokens
	// remain valid, in minutes.
	RefreshTokenLifetimeMinutes int `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gt=0"`
}

// LLMConfig contains all AI text generation related settings.
// Exactly one provider is active at a time; its API key must be set.
type LLMConfig struct {
	Provider        string  `mapstructure:"provider"         validate:"required,oneof=openai anthropic"`
	OpenAIAPIKey    string  `mapstructure:"openai_api_key"   validate:"required_if=Provider openai"`
	AnthropicAPIKey string  `mapstructure:"anthropic_api_key" validate:"required_if=Provider anthropic"`
	// Model overrides the provider's default model when non-empty.
	Model          string  `mapstructure:"model"`
	MaxTokens      int     `mapstructure:"max_tokens" validate:"required,gt=0"`
	Temperature    float64 `mapstructure:"temperature" validate:"gte=0,lte=1"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds" validate:"required,gt=0"`
}

// StorageConfig contains object storage settings for post image uploads.
// When left empty, image uploads are disabled.
type StorageConfig struct {
	SupabaseURL string `mapstructure:"supabase_url" validate:"omitempty,url"`
	SupabaseKey string `mapstructure:"supabase_key"`
	Bucket      string `mapstructure:"bucket"`
}
