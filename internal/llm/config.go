package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	Anthropic  = "anthropic"
	OpenAI     = "openai"
	Gemini     = "gemini"
	OpenRouter = "openrouter"
)

// Config selects a provider and carries the settings for each of them.
type Config struct {
	Provider string `mapstructure:"provider"`

	Anthropic  ProviderConfig `mapstructure:"anthropic"`
	OpenAI     ProviderConfig `mapstructure:"openai"`
	Gemini     ProviderConfig `mapstructure:"gemini"`
	OpenRouter ProviderConfig `mapstructure:"openrouter"`
	Retry      RetryConfig    `mapstructure:"retry"`

	// Timeout bounds one Generate call including retries. Zero means no
	// limit beyond the caller's context.
	Timeout time.Duration `mapstructure:"timeout"`
}

// ProviderConfig holds the credentials and model of one provider. Model
// may be a short alias such as "claude-haiku" or a full model ID.
type ProviderConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	InitialWait time.Duration `mapstructure:"initial_wait"`
	MaxWait     time.Duration `mapstructure:"max_wait"`
	Multiplier  float64       `mapstructure:"multiplier"`
}

// providerEnv lists the API key variables probed by DiscoverConfig, in
// priority order.
var providerEnv = []struct {
	name string
	env  string
}{
	{Gemini, "GEMINI_API_KEY"},
	{OpenAI, "OPENAI_API_KEY"},
	{Anthropic, "ANTHROPIC_API_KEY"},
	{OpenRouter, "OPENROUTER_API_KEY"},
}

func DefaultConfig() Config {
	return Config{
		Provider:   Anthropic,
		Anthropic:  ProviderConfig{Model: "claude-haiku"},
		OpenAI:     ProviderConfig{Model: "gpt-4o-mini"},
		Gemini:     ProviderConfig{Model: "gemini-flash"},
		OpenRouter: ProviderConfig{Model: "google/gemini-2.0-flash-001"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 90 * time.Second,
	}
}

// DiscoverConfig returns the default config switched to the first provider
// whose API key is set in the environment.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	for _, p := range providerEnv {
		key := os.Getenv(p.env)
		if key == "" {
			continue
		}
		cfg.Provider = p.name
		pc, _ := cfg.provider(p.name)
		pc.APIKey = key
		return cfg, true
	}
	return Config{}, false
}

// provider returns the settings block for name.
func (c *Config) provider(name string) (*ProviderConfig, bool) {
	switch name {
	case Anthropic:
		return &c.Anthropic, true
	case OpenAI:
		return &c.OpenAI, true
	case Gemini:
		return &c.Gemini, true
	case OpenRouter:
		return &c.OpenRouter, true
	}
	return nil, false
}

// Validate checks that the selected provider is known and has a key.
func (c Config) Validate() error {
	pc, ok := c.provider(c.Provider)
	if !ok {
		return fmt.Errorf("unknown LLM provider %q", c.Provider)
	}
	if pc.APIKey == "" {
		return fmt.Errorf("llm.%s.api_key is required (or set NMT_%s_API_KEY)", c.Provider, strings.ToUpper(c.Provider))
	}
	return nil
}
