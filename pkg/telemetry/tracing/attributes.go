package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys. Custom keys use the "botchat.*" namespace.
const (
	AttrModel        = "botchat.model"
	AttrMessageCount = "botchat.messages"
	AttrRequestID    = "botchat.request_id"
	AttrErrorKind    = "botchat.error.kind"

	AttrHTTPMethod     = "http.request.method"
	AttrHTTPRoute      = "http.route"
	AttrHTTPStatusCode = "http.response.status_code"
	AttrErrorMessage   = "error.message"
)

// SetUpstreamAttributes describes an upstream completion call.
func SetUpstreamAttributes(span trace.Span, model string, messages int) {
	span.SetAttributes(
		attribute.String(AttrModel, model),
		attribute.Int(AttrMessageCount, messages),
	)
}

// SetHTTPAttributes describes an inbound request.
func SetHTTPAttributes(span trace.Span, method, route string) {
	span.SetAttributes(
		attribute.String(AttrHTTPMethod, method),
		attribute.String(AttrHTTPRoute, route),
	)
}

// SetStatusCode records an HTTP status code.
func SetStatusCode(span trace.Span, status int) {
	span.SetAttributes(attribute.Int(AttrHTTPStatusCode, status))
}

// SetRequestID links the span to the request ID used in logs.
func SetRequestID(span trace.Span, requestID string) {
	if requestID != "" {
		span.SetAttributes(attribute.String(AttrRequestID, requestID))
	}
}

// SetErrorKind records the error class of a failed request.
func SetErrorKind(span trace.Span, kind string) {
	span.SetAttributes(attribute.String(AttrErrorKind, kind))
}
