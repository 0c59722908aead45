package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricNamespace = "tokenkeep"

// Outcome labels recorded per operation.
const (
	OutcomeBadRequest = "bad_request"
	OutcomeRejected   = "rejected"
	OutcomeIssued     = "issued"
	OutcomeVerified   = "verified"
	OutcomeFault      = "fault"
	OutcomeError      = "error"
)

// Metrics owns a private registry so tests can build routers side by side.
type Metrics struct {
	registry *prometheus.Registry

	requestLatency *prometheus.HistogramVec
	outcomes       *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricNamespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Histogram of latencies for HTTP requests.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"handler", "method", "code"},
		),
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricNamespace,
				Name:      "outcomes_total",
				Help:      "Count of credential and token check outcomes.",
			},
			[]string{"operation", "outcome"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestLatency,
		m.outcomes,
	)
	return m
}

// Instrument records request latency for h under the given handler label.
func (m *Metrics) Instrument(name string, h http.Handler) http.Handler {
	return promhttp.InstrumentHandlerDuration(
		m.requestLatency.MustCurryWith(prometheus.Labels{"handler": name}),
		h,
	)
}

// Outcome counts one result of operation. Safe on a nil receiver.
func (m *Metrics) Outcome(operation, outcome string) {
	if m == nil {
		return
	}
	m.outcomes.WithLabelValues(operation, outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
