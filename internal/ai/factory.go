package ai

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Vovarama1992/promoly-ai/internal/config"
	"github.com/Vovarama1992/promoly-ai/internal/metrics"
)

// NewInvoker picks the provider client named by cfg and wraps it with
// metrics.
func NewInvoker(ctx context.Context, cfg config.LLM, m *metrics.Metrics, log *zap.Logger) (Invoker, error) {
	var inv Invoker
	switch cfg.Provider {
	case config.ProviderOpenAI:
		inv = NewOpenAIClient(cfg.OpenAIKey, cfg.Model, cfg.OpenAIBaseURL, log)
	case config.ProviderGemini:
		g, err := NewGeminiClient(ctx, cfg.GeminiKey, cfg.Model, log)
		if err != nil {
			return nil, err
		}
		inv = g
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}

	return Instrument(inv, cfg.Provider, m), nil
}
