package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearLLMEnv blanks every variable the config loaders read.
func clearLLMEnv(t *testing.T) {
	t.Helper()
	t.Setenv("QUIZGEN_LLM_PROVIDER", "")
	t.Setenv("QUIZGEN_LLM_TIMEOUT", "")
	t.Setenv("QUIZGEN_OPENAI_BASE_URL", "")
	t.Setenv("QUIZGEN_OPENROUTER_BASE_URL", "")
	for _, p := range keyedProviders {
		t.Setenv(p.standard, "")
		t.Setenv("QUIZGEN_"+p.env+"_API_KEY", "")
		t.Setenv("QUIZGEN_"+p.env+"_MODEL", "")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		cfg     Config
		wantErr string
	}{
		{Config{Provider: ProviderAnthropic}, "QUIZGEN_ANTHROPIC_API_KEY is required for the anthropic provider"},
		{Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "sk"}}, ""},
		{Config{Provider: ProviderOpenAI}, "QUIZGEN_OPENAI_API_KEY"},
		{Config{Provider: ProviderOpenAI, OpenAI: OpenAIConfig{APIKey: "sk"}}, ""},
		{Config{Provider: ProviderGemini}, "QUIZGEN_GEMINI_API_KEY"},
		{Config{Provider: ProviderOpenRouter}, "QUIZGEN_OPENROUTER_API_KEY"},
		{Config{Provider: ProviderNone}, ""},
		{Config{Provider: ProviderMock}, ""},
		{Config{}, ""},
		{Config{Provider: "llama"}, `unknown LLM provider: "llama"`},
	}
	for _, tt := range tests {
		t.Run(tt.cfg.Provider, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("QUIZGEN_LLM_PROVIDER", "openrouter")
	t.Setenv("QUIZGEN_OPENROUTER_API_KEY", "sk-or")
	t.Setenv("QUIZGEN_OPENROUTER_MODEL", "meta/llama")
	t.Setenv("QUIZGEN_OPENROUTER_BASE_URL", "http://localhost:9000/v1")
	t.Setenv("QUIZGEN_GEMINI_MODEL", "gemini-pro")
	t.Setenv("QUIZGEN_LLM_TIMEOUT", "5s")

	cfg := ConfigFromEnv()
	assert.Equal(t, ProviderOpenRouter, cfg.Provider)
	assert.Equal(t, "sk-or", cfg.OpenRouter.APIKey)
	assert.Equal(t, "meta/llama", cfg.Model())
	assert.Equal(t, "http://localhost:9000/v1", cfg.OpenRouter.BaseURL)
	assert.Equal(t, "gemini-pro", cfg.Gemini.Model)
	assert.Equal(t, "claude-haiku", cfg.Anthropic.Model)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnv_BadTimeoutKeepsDefault(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("QUIZGEN_LLM_TIMEOUT", "soon")
	assert.Equal(t, DefaultConfig().Timeout, ConfigFromEnv().Timeout)
}

func TestResolveConfig(t *testing.T) {
	t.Run("nothing configured", func(t *testing.T) {
		clearLLMEnv(t)
		cfg := ResolveConfig()
		assert.False(t, cfg.Enabled(), "provider %q", cfg.Provider)
	})

	t.Run("discovery order", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
		t.Setenv("GEMINI_API_KEY", "g-key")
		cfg := ResolveConfig()
		assert.Equal(t, ProviderGemini, cfg.Provider)
		assert.Equal(t, "g-key", cfg.Gemini.APIKey)
		assert.Empty(t, cfg.Anthropic.APIKey)
	})

	t.Run("discovers openai first", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("OPENROUTER_API_KEY", "sk-or")
		t.Setenv("OPENAI_API_KEY", "sk-test")
		cfg := ResolveConfig()
		assert.Equal(t, ProviderOpenAI, cfg.Provider)
		assert.Equal(t, "gpt-4o-mini", cfg.Model())
	})

	t.Run("explicit provider wins", func(t *testing.T) {
		clearLLMEnv(t)
		t.Setenv("OPENAI_API_KEY", "sk-test")
		t.Setenv("QUIZGEN_LLM_PROVIDER", "mock")
		cfg := ResolveConfig()
		assert.Equal(t, ProviderMock, cfg.Provider)
		assert.Equal(t, "mock", cfg.Model())
	})
}

func TestConfig_SetModel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderGemini
	cfg.SetModel("gemini-pro")
	assert.Equal(t, "gemini-pro", cfg.Model())

	cfg.SetModel("")
	assert.Equal(t, "gemini-pro", cfg.Model(), "empty model should not override")

	cfg.Provider = ProviderNone
	cfg.SetModel("anything")
	assert.Equal(t, "", cfg.Model())
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
}

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	_, err := NewProvider(ctx, DefaultConfig(), nil, nil)
	assert.True(t, errors.Is(err, ErrNoProvider), "got %v", err)

	p, err := NewProvider(ctx, Config{Provider: ProviderMock}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())

	cfg := DefaultConfig()
	cfg.Provider = ProviderOpenRouter
	cfg.OpenRouter.APIKey = "sk-or"
	p, err = NewProvider(ctx, cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "openai/gpt-4o-mini", p.ModelID())
	_, wrapped := p.(*TimeoutProvider)
	assert.True(t, wrapped, "real providers should carry the middleware chain")

	_, err = NewProvider(ctx, Config{Provider: ProviderAnthropic}, nil, nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "API_KEY"))
}
