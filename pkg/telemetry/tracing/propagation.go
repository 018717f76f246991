package tracing

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// TraceIDHeader carries the trace ID back to callers for log correlation.
const TraceIDHeader = "X-Trace-ID"

// Extract reads W3C trace context (traceparent, tracestate) from headers.
func Extract(ctx context.Context, headers http.Header) context.Context {
	return otel.GetTextMapPropagator().Extract(ctx, propagation.HeaderCarrier(headers))
}

// Inject writes the trace context of ctx into outgoing headers.
func Inject(ctx context.Context, headers http.Header) {
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(headers))
}

// HTTPMiddleware extracts the caller's trace context and opens a server span
// named after the route. The trace ID is echoed in X-Trace-ID.
func HTTPMiddleware(t *Tracer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := Extract(r.Context(), r.Header)
			ctx, span := t.Start(ctx, r.Method+" "+r.URL.Path)
			defer span.End()

			SetHTTPAttributes(span, r.Method, r.URL.Path)
			if traceID := TraceID(ctx); traceID != "" {
				w.Header().Set(TraceIDHeader, traceID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
