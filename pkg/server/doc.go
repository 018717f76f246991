// Package server assembles the BotChat proxy HTTP server.
//
// # Usage
//
//	srv := server.NewServer(cfg, server.Dependencies{
//	    Credentials: credential,
//	    Upstream:    providers.NewClient(cfg.Upstream),
//	    Metrics:     metrics.NewCollector(cfg.Telemetry.Metrics, nil),
//	    Tracer:      tracer,
//	    Version:     health.NewVersionInfo(version, commit, buildTime),
//	})
//	if err := srv.Start(ctx); err != nil {
//	    return err
//	}
//
// Start blocks until ctx is canceled and then shuts down gracefully: the
// listener closes and in-flight requests get server.shutdown_timeout to
// finish. Signal handling belongs to the caller (see cli.SetupSignalHandler).
//
// # Routes
//
//   - POST server.chat_path (default /api/chat): the chat proxy
//   - GET /health: liveness
//   - GET /ready: readiness, 503 without an API key
//   - GET /version: build information
//   - GET telemetry.metrics.path (default /metrics): Prometheus, when enabled
//
// # Middleware Chain
//
// From outermost to innermost:
//  1. Recovery: turns panics into a 500 error envelope
//  2. CORS: headers on every response, 204 for preflight
//  3. RequestID: X-Request-ID accepted or generated
//  4. Tracing: continues the caller's W3C trace
//  5. Logging: one access log line per request
//  6. Metrics: request counters and latency histogram
//
// TLS is not terminated here; BotChat is meant to sit behind a host or
// reverse proxy that does.
package server
