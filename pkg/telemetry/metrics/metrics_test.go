package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mercator-hq/botchat/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestCollector(enabled bool) *Collector {
	return NewCollector(config.MetricsConfig{Enabled: &enabled, Namespace: "test"}, prometheus.NewRegistry())
}

func TestCollector_RecordHTTPRequest(t *testing.T) {
	collector := newTestCollector(true)

	collector.RecordHTTPRequest("/api/chat", "POST", 200, 120*time.Millisecond)
	collector.RecordHTTPRequest("/api/chat", "POST", 200, 80*time.Millisecond)
	collector.RecordHTTPRequest("/api/chat", "GET", 405, time.Millisecond)

	if got := testutil.ToFloat64(collector.requestMetrics.requests.WithLabelValues("/api/chat", "POST", "200")); got != 2 {
		t.Errorf("expected 2 POST requests, got %v", got)
	}
	if got := testutil.ToFloat64(collector.requestMetrics.requests.WithLabelValues("/api/chat", "GET", "405")); got != 1 {
		t.Errorf("expected 1 GET request, got %v", got)
	}
	if got := testutil.CollectAndCount(collector.requestMetrics.duration); got != 2 {
		t.Errorf("expected 2 duration series, got %d", got)
	}
}

func TestCollector_TrackInFlight(t *testing.T) {
	collector := newTestCollector(true)

	done := collector.TrackInFlight()
	if got := testutil.ToFloat64(collector.requestMetrics.inFlight); got != 1 {
		t.Errorf("expected 1 in flight, got %v", got)
	}
	done()
	if got := testutil.ToFloat64(collector.requestMetrics.inFlight); got != 0 {
		t.Errorf("expected 0 in flight, got %v", got)
	}
}

func TestCollector_Upstream(t *testing.T) {
	collector := newTestCollector(true)

	if got := testutil.ToFloat64(collector.upstreamMetrics.health); got != 1 {
		t.Errorf("expected initial health 1, got %v", got)
	}

	collector.RecordUpstreamCall("deepseek-chat", 429, 300*time.Millisecond)
	collector.RecordUpstreamError("upstream_status")
	collector.RecordUpstreamError("timeout")
	collector.RecordUpstreamError("timeout")
	collector.UpdateUpstreamHealth(false)

	if got := testutil.ToFloat64(collector.upstreamMetrics.requests.WithLabelValues("deepseek-chat", "429")); got != 1 {
		t.Errorf("expected 1 upstream 429, got %v", got)
	}
	if got := testutil.ToFloat64(collector.upstreamMetrics.errors.WithLabelValues("timeout")); got != 2 {
		t.Errorf("expected 2 timeouts, got %v", got)
	}
	if got := testutil.ToFloat64(collector.upstreamMetrics.health); got != 0 {
		t.Errorf("expected health 0, got %v", got)
	}
}

func TestCollector_Disabled(t *testing.T) {
	collector := newTestCollector(false)
	if collector.Enabled() {
		t.Fatal("expected disabled collector")
	}

	collector.RecordHTTPRequest("/api/chat", "POST", 200, time.Millisecond)
	collector.RecordUpstreamError("timeout")
	collector.TrackInFlight()()

	if got := testutil.ToFloat64(collector.requestMetrics.requests.WithLabelValues("/api/chat", "POST", "200")); got != 0 {
		t.Errorf("disabled collector recorded %v requests", got)
	}
}

func TestCollector_Nil(t *testing.T) {
	var collector *Collector

	// None of these may panic
	collector.RecordHTTPRequest("/api/chat", "POST", 200, time.Millisecond)
	collector.RecordUpstreamCall("m", 200, time.Millisecond)
	collector.RecordUpstreamError("transport")
	collector.UpdateUpstreamHealth(true)
	collector.TrackInFlight()()

	if collector.Enabled() {
		t.Error("nil collector should be disabled")
	}
}

func TestCollector_DefaultNamespace(t *testing.T) {
	collector := NewCollector(config.MetricsConfig{}, nil)
	collector.RecordUpstreamError("malformed")

	families, err := collector.Registry().Gather()
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for _, mf := range families {
		if mf.GetName() == "botchat_upstream_errors_total" {
			found = true
		}
	}
	if !found {
		t.Error("expected botchat_upstream_errors_total to be registered")
	}
}

func TestHandler(t *testing.T) {
	collector := newTestCollector(true)
	collector.RecordHTTPRequest("/api/chat", "POST", 500, time.Second)

	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `test_http_requests_total{method="POST",route="/api/chat",status="500"} 1`) {
		t.Errorf("metric missing from scrape:\n%s", body)
	}
}
