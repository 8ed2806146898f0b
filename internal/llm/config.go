package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"

	// ProviderNone disables the LLM; quizzes come from the fallback bank.
	ProviderNone = "none"
)

// Config selects a provider and carries the settings of every provider,
// so switching with QUIZGEN_LLM_PROVIDER needs no other change.
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig

	Retry RetryConfig

	// Timeout bounds one Generate call including its retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // for OpenAI-compatible servers
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig shapes the exponential backoff of RetryProvider.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// keyedProviders lists the providers that need an API key, in the order
// DiscoverConfig probes them. env is the infix of QUIZGEN_<env>_API_KEY
// and QUIZGEN_<env>_MODEL; standard is the vendor's own key variable.
var keyedProviders = []struct {
	name     string
	env      string
	standard string
}{
	{ProviderOpenAI, "OPENAI", "OPENAI_API_KEY"},
	{ProviderGemini, "GEMINI", "GEMINI_API_KEY"},
	{ProviderAnthropic, "ANTHROPIC", "ANTHROPIC_API_KEY"},
	{ProviderOpenRouter, "OPENROUTER", "OPENROUTER_API_KEY"},
}

// slot returns pointers to the key and model of provider, or nils for
// providers without a key.
func (c *Config) slot(provider string) (key, model *string) {
	switch provider {
	case ProviderAnthropic:
		return &c.Anthropic.APIKey, &c.Anthropic.Model
	case ProviderOpenAI:
		return &c.OpenAI.APIKey, &c.OpenAI.Model
	case ProviderGemini:
		return &c.Gemini.APIKey, &c.Gemini.Model
	case ProviderOpenRouter:
		return &c.OpenRouter.APIKey, &c.OpenRouter.Model
	}
	return nil, nil
}

// DefaultConfig has every model preset and the LLM switched off.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderNone,
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "openai/gpt-4o-mini"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 30 * time.Second,
	}
}

func setFromEnv(dst *string, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

// ConfigFromEnv overlays the QUIZGEN_* variables on DefaultConfig.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	setFromEnv(&cfg.Provider, "QUIZGEN_LLM_PROVIDER")
	for _, p := range keyedProviders {
		key, model := cfg.slot(p.name)
		setFromEnv(key, "QUIZGEN_"+p.env+"_API_KEY")
		setFromEnv(model, "QUIZGEN_"+p.env+"_MODEL")
	}
	setFromEnv(&cfg.OpenAI.BaseURL, "QUIZGEN_OPENAI_BASE_URL")
	setFromEnv(&cfg.OpenRouter.BaseURL, "QUIZGEN_OPENROUTER_BASE_URL")
	if d, err := time.ParseDuration(os.Getenv("QUIZGEN_LLM_TIMEOUT")); err == nil {
		cfg.Timeout = d
	}
	return cfg
}

// DiscoverConfig selects the first provider whose standard key variable
// (OPENAI_API_KEY, GEMINI_API_KEY, ...) is set.
func DiscoverConfig() (Config, bool) {
	for _, p := range keyedProviders {
		k := os.Getenv(p.standard)
		if k == "" {
			continue
		}
		cfg := DefaultConfig()
		cfg.Provider = p.name
		key, _ := cfg.slot(p.name)
		*key = k
		return cfg, true
	}
	return Config{}, false
}

// ResolveConfig prefers an explicit QUIZGEN_LLM_PROVIDER, then a
// discovered vendor key, then the disabled default.
func ResolveConfig() Config {
	if os.Getenv("QUIZGEN_LLM_PROVIDER") == "" {
		if cfg, ok := DiscoverConfig(); ok {
			return cfg
		}
	}
	return ConfigFromEnv()
}

// Enabled reports whether a provider (mock included) is selected.
func (c Config) Enabled() bool {
	return c.Provider != "" && c.Provider != ProviderNone
}

// Model is the model name of the selected provider.
func (c Config) Model() string {
	if c.Provider == ProviderMock {
		return "mock"
	}
	if _, model := c.slot(c.Provider); model != nil {
		return *model
	}
	return ""
}

// SetModel overrides the selected provider's model. Empty is ignored.
func (c *Config) SetModel(name string) {
	if _, model := c.slot(c.Provider); model != nil && name != "" {
		*model = name
	}
}

// Validate checks that the selected provider is known and has its key.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderMock, ProviderNone, "":
		return nil
	}
	for _, p := range keyedProviders {
		if p.name != c.Provider {
			continue
		}
		if key, _ := c.slot(p.name); *key == "" {
			return fmt.Errorf("QUIZGEN_%s_API_KEY is required for the %s provider", p.env, p.name)
		}
		return nil
	}
	return fmt.Errorf("unknown LLM provider: %q", c.Provider)
}
