package marketing

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Vovarama1992/promoly-ai/internal/ai"
	"github.com/Vovarama1992/promoly-ai/internal/knowledge"
	"github.com/Vovarama1992/promoly-ai/internal/metrics"
)

const (
	creativeTemperature = 0.7
	analyticTemperature = 0.3
)

const (
	AdCopyFallback         = "Unable to generate ad copy at this time."
	ChatFallback           = "I'm having trouble processing your request right now. Please try again."
	KnowledgeFallback      = "I'm unable to access the knowledge base right now. Please try again later."
	GeneralKnowledgeSource = "General Marketing Knowledge"
)

type service struct {
	ai      ai.Invoker
	kb      *knowledge.Store
	metrics *metrics.Metrics
	log     *zap.Logger
}

// NewService wires the pipelines. kb is shared read-only by every request.
func NewService(aiClient ai.Invoker, kb *knowledge.Store, m *metrics.Metrics, log *zap.Logger) Service {
	return &service{
		ai:      aiClient,
		kb:      kb,
		metrics: m,
		log:     log.Named("marketing"),
	}
}

// logger tags log lines with the request ID carried by ctx.
func (s *service) logger(ctx context.Context) *zap.Logger {
	return s.log.With(zap.String("request_id", RequestIDFrom(ctx)))
}

// degrade records a fallback result. It is the only WARN line a degraded
// request produces.
func (s *service) degrade(ctx context.Context, pipeline string, cause error) Outcome {
	s.metrics.Fallback(pipeline)
	s.logger(ctx).Warn("pipeline degraded", zap.String("pipeline", pipeline), zap.Error(cause))
	return Outcome{Degraded: true, Cause: cause}
}

// parseLines turns a free-form list reply into at most limit entries,
// skipping blank lines and "#" headings.
func parseLines(text string, limit int) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
		if len(out) == limit {
			break
		}
	}
	return out
}
