package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearKeys(t *testing.T) {
	for _, p := range providerEnv {
		t.Setenv(p.env, "")
	}
}

func TestDiscoverConfig(t *testing.T) {
	clearKeys(t)
	_, ok := DiscoverConfig()
	assert.False(t, ok)

	t.Setenv("OPENROUTER_API_KEY", "or-key")
	t.Setenv("ANTHROPIC_API_KEY", "an-key")
	cfg, ok := DiscoverConfig()
	require.True(t, ok)
	assert.Equal(t, Anthropic, cfg.Provider)
	assert.Equal(t, "an-key", cfg.Anthropic.APIKey)
	assert.Empty(t, cfg.OpenRouter.APIKey)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.EqualError(t, cfg.Validate(), "llm.anthropic.api_key is required (or set NMT_ANTHROPIC_API_KEY)")

	cfg.Provider = "mock"
	assert.Error(t, cfg.Validate())

	cfg.Provider = Gemini
	cfg.Gemini.APIKey = "g"
	assert.NoError(t, cfg.Validate())
}
