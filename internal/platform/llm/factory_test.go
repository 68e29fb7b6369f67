package llm_test

import (
	"testing"

	"github.com/postcraft/postcraft-api/internal/config"
	"github.com/postcraft/postcraft-api/internal/generation"
	"github.com/postcraft/postcraft-api/internal/platform/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.LLMConfig
		wantName string
		wantErr  bool
	}{
		{
			name:     "openai provider",
			cfg:      config.LLMConfig{Provider: "openai", OpenAIAPIKey: "sk-test", TimeoutSeconds: 30},
			wantName: "openai",
		},
		{
			name:     "anthropic provider",
			cfg:      config.LLMConfig{Provider: "anthropic", AnthropicAPIKey: "sk-ant-test", TimeoutSeconds: 30},
			wantName: "anthropic",
		},
		{
			name:     "provider name is case-insensitive",
			cfg:      config.LLMConfig{Provider: "OpenAI", OpenAIAPIKey: "sk-test", TimeoutSeconds: 30},
			wantName: "openai",
		},
		{
			name:    "openai without API key",
			cfg:     config.LLMConfig{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "anthropic without API key",
			cfg:     config.LLMConfig{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			cfg:     config.LLMConfig{Provider: "mistral", OpenAIAPIKey: "sk-test"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := llm.NewProvider(tt.cfg, nil)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, generation.ErrInvalidConfig)
				assert.Nil(t, provider)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, provider.Name())
		})
	}
}
