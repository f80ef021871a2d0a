package ai

import (
	"context"
	"time"

	"github.com/Vovarama1992/promoly-ai/internal/metrics"
)

type instrumented struct {
	next     Invoker
	provider string
	metrics  *metrics.Metrics
}

// Instrument records count and latency of every call made through next.
func Instrument(next Invoker, provider string, m *metrics.Metrics) Invoker {
	return &instrumented{next: next, provider: provider, metrics: m}
}

func (i *instrumented) Invoke(ctx context.Context, messages []Message, temperature float32) (string, error) {
	start := time.Now()
	out, err := i.next.Invoke(ctx, messages, temperature)

	status := "ok"
	if err != nil {
		status = string(KindProvider)
		if kind, ok := KindOf(err); ok {
			status = string(kind)
		}
	}
	i.metrics.ObserveInvocation(i.provider, status, time.Since(start))

	return out, err
}
