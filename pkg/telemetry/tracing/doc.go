// Package tracing provides OpenTelemetry tracing for the BotChat proxy.
//
// # Overview
//
// Each proxied chat request produces a server span, opened by
// HTTPMiddleware, and a child span around the upstream call. The W3C trace
// context is read from the inbound request and written to the upstream
// request, so a trace started by the caller continues through the proxy.
//
// Tracing is off by default. When enabled, spans are exported over OTLP gRPC:
//
//	telemetry:
//	  tracing:
//	    enabled: true
//	    endpoint: "localhost:4317"
//	    insecure: true
//	    sampler: ratio
//	    sample_ratio: 0.1
//
// # Usage
//
//	tracer, err := tracing.New(cfg.Telemetry.Tracing)
//	if err != nil {
//	    return err
//	}
//	defer tracer.Shutdown(context.Background())
//
//	ctx, span := tracer.Start(ctx, "upstream.chat_completion")
//	defer span.End()
//
// A nil *Tracer behaves like Noop, which keeps call sites free of checks.
package tracing
