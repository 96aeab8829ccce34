package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all Prometheus metrics.
type Registry struct {
	*prometheus.Registry

	queriesTotal   *prometheus.CounterVec
	queryDuration  prometheus.Histogram
	toolCallsTotal *prometheus.CounterVec
	llmRequests    *prometheus.CounterVec
	llmDuration    prometheus.Histogram
	llmTokens      *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec
	sessionsActive prometheus.Gauge
}

// NewRegistry creates a new metrics registry with all metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	// Register Go runtime metrics
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Registry{
		Registry: reg,

		queriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finsight_queries_total",
				Help: "Total number of queries processed, by routing target",
			},
			[]string{"route"},
		),
		queryDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "finsight_query_duration_seconds",
				Help:    "End-to-end query duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		toolCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finsight_tool_calls_total",
				Help: "Total number of financial tool invocations",
			},
			[]string{"tool", "status"},
		),
		llmRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finsight_llm_requests_total",
				Help: "Total number of LLM requests",
			},
			[]string{"provider", "status"},
		),
		llmDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "finsight_llm_request_duration_seconds",
				Help:    "LLM request duration in seconds",
				Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60},
			},
		),
		llmTokens: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finsight_llm_tokens_total",
				Help: "Total tokens consumed by LLM requests",
			},
			[]string{"provider", "direction"},
		),
		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finsight_errors_total",
				Help: "Total errors by taxonomy code",
			},
			[]string{"code"},
		),
		sessionsActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "finsight_sessions_active",
				Help: "Number of live conversation sessions",
			},
		),
	}

	reg.MustRegister(r.queriesTotal)
	reg.MustRegister(r.queryDuration)
	reg.MustRegister(r.toolCallsTotal)
	reg.MustRegister(r.llmRequests)
	reg.MustRegister(r.llmDuration)
	reg.MustRegister(r.llmTokens)
	reg.MustRegister(r.errorsTotal)
	reg.MustRegister(r.sessionsActive)

	return r
}

// RecordQuery records a processed query and its duration.
func (r *Registry) RecordQuery(route string, duration float64) {
	r.queriesTotal.WithLabelValues(route).Inc()
	r.queryDuration.Observe(duration)
}

// RecordToolCall records a financial tool invocation.
func (r *Registry) RecordToolCall(tool, status string) {
	r.toolCallsTotal.WithLabelValues(tool, status).Inc()
}

// RecordLLMRequest records an LLM round trip.
func (r *Registry) RecordLLMRequest(provider, status string, duration float64, inputTokens, outputTokens int) {
	r.llmRequests.WithLabelValues(provider, status).Inc()
	r.llmDuration.Observe(duration)
	r.llmTokens.WithLabelValues(provider, "input").Add(float64(inputTokens))
	r.llmTokens.WithLabelValues(provider, "output").Add(float64(outputTokens))
}

// RecordError records an error by taxonomy code.
func (r *Registry) RecordError(code string) {
	r.errorsTotal.WithLabelValues(code).Inc()
}

// SetSessionsActive sets the live session count.
func (r *Registry) SetSessionsActive(n int) {
	r.sessionsActive.Set(float64(n))
}

// Handler returns an http.Handler serving the registry.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.Registry, promhttp.HandlerOpts{})
}
