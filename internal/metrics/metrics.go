package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors shared by the model invoker and the
// pipelines. A nil *Metrics is valid and records nothing.
type Metrics struct {
	LLMRequests *prometheus.CounterVec
	LLMDuration *prometheus.HistogramVec
	Fallbacks   *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		LLMRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "promoly_llm_requests_total",
			Help: "Model invocations by provider and outcome.",
		}, []string{"provider", "status"}),
		LLMDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "promoly_llm_request_duration_seconds",
			Help:    "Latency of model invocations.",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}, []string{"provider"}),
		Fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "promoly_pipeline_fallbacks_total",
			Help: "Degraded results returned by each pipeline.",
		}, []string{"pipeline"}),
	}
	reg.MustRegister(m.LLMRequests, m.LLMDuration, m.Fallbacks)
	return m
}

func (m *Metrics) ObserveInvocation(provider, status string, took time.Duration) {
	if m == nil {
		return
	}
	m.LLMRequests.WithLabelValues(provider, status).Inc()
	m.LLMDuration.WithLabelValues(provider).Observe(took.Seconds())
}

func (m *Metrics) Fallback(pipeline string) {
	if m == nil {
		return
	}
	m.Fallbacks.WithLabelValues(pipeline).Inc()
}
