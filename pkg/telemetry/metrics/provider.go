package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// UpstreamMetrics tracks calls to the completion API.
//
// Metrics:
//   - botchat_upstream_requests_total: upstream responses by model and status
//   - botchat_upstream_latency_seconds: upstream exchange latency by model
//   - botchat_upstream_errors_total: failed upstream calls by kind
//   - botchat_upstream_health: 1 when healthy, 0 after repeated failures
type UpstreamMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	errors   *prometheus.CounterVec
	health   prometheus.Gauge
}

// NewUpstreamMetrics creates and registers upstream metrics.
func NewUpstreamMetrics(namespace string, registry *prometheus.Registry) *UpstreamMetrics {
	um := &UpstreamMetrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_requests_total",
				Help:      "Total number of upstream responses by model and status",
			},
			[]string{"model", "status"},
		),

		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_latency_seconds",
				Help:      "Upstream API call latency in seconds",
				Buckets:   durationBuckets,
			},
			[]string{"model"},
		),

		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_errors_total",
				Help:      "Total number of failed upstream calls by error kind",
			},
			[]string{"kind"},
		),

		health: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "upstream_health",
				Help:      "Upstream health status (1=healthy, 0=unhealthy)",
			},
		),
	}

	registry.MustRegister(um.requests, um.latency, um.errors, um.health)

	// Healthy until proven otherwise
	um.health.Set(1)

	return um
}

// RecordCall records an upstream response.
func (um *UpstreamMetrics) RecordCall(model, status string, latency time.Duration) {
	um.requests.WithLabelValues(model, status).Inc()
	um.latency.WithLabelValues(model).Observe(latency.Seconds())
}

// RecordError increments the error counter for kind.
func (um *UpstreamMetrics) RecordError(kind string) {
	um.errors.WithLabelValues(kind).Inc()
}

// UpdateHealth sets the health gauge.
func (um *UpstreamMetrics) UpdateHealth(healthy bool) {
	if healthy {
		um.health.Set(1)
		return
	}
	um.health.Set(0)
}
