// Package telemetry groups the observability packages of BotChat.
//
// # Components
//
//   - logging: log/slog setup with request ID correlation and key redaction
//   - metrics: Prometheus request and upstream metrics
//   - tracing: OpenTelemetry spans from inbound request to upstream call
//   - health: liveness, readiness and version endpoints
//
// Each package is configured from its section of config.TelemetryConfig and
// is safe to leave disabled: nil or disabled collectors and tracers record
// nothing.
package telemetry
