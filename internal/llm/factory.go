package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/nmt/internal/store"
)

// NewProvider builds the configured provider. Calls go through retries,
// then logging, then the schema check, so every attempt is recorded and
// a reply that fails the schema counts as a failed attempt.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, log *zap.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pc, _ := cfg.provider(cfg.Provider)

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case Anthropic:
		base, err = NewAnthropicProvider(*pc)
	case OpenAI:
		base, err = NewOpenAIProvider(*pc)
	case OpenRouter:
		base, err = NewOpenRouterProvider(*pc)
	case Gemini:
		base, err = NewGeminiProvider(ctx, *pc)
	}
	if err != nil {
		return nil, fmt.Errorf("init %s: %w", cfg.Provider, err)
	}
	return Wrap(base, cfg, events, log), nil
}

// Wrap applies the retry, logging and schema-check layers to p.
func Wrap(p Provider, cfg Config, events store.EventRepo, log *zap.Logger) Provider {
	return withRetry(withLogging(checked{p}, events, log), cfg.Retry, cfg.Timeout)
}
