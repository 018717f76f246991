package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RequestMetrics tracks inbound HTTP traffic.
//
// Metrics:
//   - botchat_http_requests_total: requests by route, method and status
//   - botchat_http_request_duration_seconds: request latency by route and method
//   - botchat_http_requests_in_flight: requests currently being served
type RequestMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

// NewRequestMetrics creates and registers request metrics.
func NewRequestMetrics(namespace string, registry *prometheus.Registry) *RequestMetrics {
	rm := &RequestMetrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),

		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   durationBuckets,
			},
			[]string{"route", "method"},
		),

		inFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Number of HTTP requests currently being served",
			},
		),
	}

	registry.MustRegister(rm.requests, rm.duration, rm.inFlight)

	return rm
}

// Record records a completed request.
func (rm *RequestMetrics) Record(route, method, status string, duration time.Duration) {
	rm.requests.WithLabelValues(route, method, status).Inc()
	rm.duration.WithLabelValues(route, method).Observe(duration.Seconds())
}
