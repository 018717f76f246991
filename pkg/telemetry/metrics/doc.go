// Package metrics provides Prometheus metrics for the BotChat proxy.
//
// # Metrics
//
//   - botchat_http_requests_total{route,method,status}
//   - botchat_http_request_duration_seconds{route,method}
//   - botchat_http_requests_in_flight
//   - botchat_upstream_requests_total{model,status}
//   - botchat_upstream_latency_seconds{model}
//   - botchat_upstream_errors_total{kind}
//   - botchat_upstream_health
//
// Labels are drawn from small fixed sets (configured routes, the configured
// model, HTTP status codes, error kinds), so no cardinality limiting is needed.
//
// # Usage
//
//	collector := metrics.NewCollector(cfg.Telemetry.Metrics, nil)
//	collector.RecordUpstreamCall("deepseek-chat", 200, 1200*time.Millisecond)
//	mux.Handle("/metrics", collector.Handler())
package metrics
