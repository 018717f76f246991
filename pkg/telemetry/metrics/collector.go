package metrics

import (
	"strconv"
	"time"

	"mercator-hq/botchat/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector owns every Prometheus metric BotChat exposes. A nil Collector
// and a Collector built from a disabled config both discard all updates.
type Collector struct {
	enabled  bool
	registry *prometheus.Registry

	requestMetrics  *RequestMetrics
	upstreamMetrics *UpstreamMetrics
}

// durationBuckets cover proxy and upstream latencies up to the 60s upstream
// timeout.
var durationBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60}

// NewCollector creates a collector and registers its metrics with registry.
// If registry is nil, a fresh registry is created.
//
// Example:
//
//	collector := metrics.NewCollector(cfg.Telemetry.Metrics, nil)
//	mux.Handle(cfg.Telemetry.Metrics.Path, collector.Handler())
func NewCollector(cfg config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = config.DefaultMetricsNamespace
	}

	return &Collector{
		enabled:         cfg.IsEnabled(),
		registry:        registry,
		requestMetrics:  NewRequestMetrics(namespace, registry),
		upstreamMetrics: NewUpstreamMetrics(namespace, registry),
	}
}

func (c *Collector) active() bool {
	return c != nil && c.enabled
}

// Enabled reports whether updates are recorded.
func (c *Collector) Enabled() bool {
	return c.active()
}

// RecordHTTPRequest records one completed inbound request.
func (c *Collector) RecordHTTPRequest(route, method string, status int, duration time.Duration) {
	if !c.active() {
		return
	}
	c.requestMetrics.Record(route, method, strconv.Itoa(status), duration)
}

// TrackInFlight increments the in-flight gauge and returns a func that
// decrements it.
func (c *Collector) TrackInFlight() func() {
	if !c.active() {
		return func() {}
	}
	c.requestMetrics.inFlight.Inc()
	return c.requestMetrics.inFlight.Dec
}

// RecordUpstreamCall records one upstream exchange that produced an HTTP
// status. Transport failures have no status and are recorded through
// RecordUpstreamError only.
func (c *Collector) RecordUpstreamCall(model string, status int, latency time.Duration) {
	if !c.active() {
		return
	}
	c.upstreamMetrics.RecordCall(model, strconv.Itoa(status), latency)
}

// RecordUpstreamError records a failed upstream call by error kind, e.g.
// "timeout", "transport", "upstream_status", "malformed".
func (c *Collector) RecordUpstreamError(kind string) {
	if !c.active() {
		return
	}
	c.upstreamMetrics.RecordError(kind)
}

// UpdateUpstreamHealth sets the upstream health gauge.
func (c *Collector) UpdateUpstreamHealth(healthy bool) {
	if !c.active() {
		return
	}
	c.upstreamMetrics.UpdateHealth(healthy)
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
