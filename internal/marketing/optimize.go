package marketing

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Vovarama1992/promoly-ai/internal/ai"
)

// SuggestOptimizations asks the model for a JSON list of suggestions and
// keeps only those passing validation. Upstream or parse failures switch
// to RuleBasedSuggestions; nothing escapes to the caller.
func (s *service) SuggestOptimizations(ctx context.Context, campaign *Campaign, performance *PerformanceMetrics) Optimization {
	prompt := fmt.Sprintf(optimizationAnalysisPrompt, formatCampaign(campaign), formatPerformance(performance))

	raw, err := s.ai.Invoke(ctx, []ai.Message{
		ai.System(optimizationSystemPrompt),
		ai.User(prompt),
	}, analyticTemperature)
	if err != nil {
		return Optimization{
			Suggestions: RuleBasedSuggestions(performance),
			Outcome:     s.degrade(ctx, "optimization", err),
		}
	}

	suggestions, rejected, err := ParseSuggestions(raw)
	if err != nil {
		s.logger(ctx).Debug("unparseable suggestions", zap.String("raw", ai.Short(raw)))
		return Optimization{
			Suggestions: RuleBasedSuggestions(performance),
			Outcome:     s.degrade(ctx, "optimization", err),
		}
	}

	log := s.logger(ctx)
	for _, r := range rejected {
		log.Info("suggestion dropped", zap.Error(r))
	}

	return Optimization{Suggestions: suggestions}
}
