package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"mercator-hq/botchat/pkg/chat"
	"mercator-hq/botchat/pkg/providers"
	"mercator-hq/botchat/pkg/proxy"
	"mercator-hq/botchat/pkg/security/secrets"
	"mercator-hq/botchat/pkg/telemetry/logging"
	"mercator-hq/botchat/pkg/telemetry/metrics"
	"mercator-hq/botchat/pkg/telemetry/tracing"
)

// Upstream is the completion API as seen by the handler.
// *providers.Client implements it.
type Upstream interface {
	NewRequest(messages []chat.Turn) providers.CompletionRequest
	SendCompletion(ctx context.Context, apiKey string, req providers.CompletionRequest) (*providers.Completion, error)
	Model() string
	IsHealthy() bool
}

// ChatHandler is the stateless proxy endpoint. It shares only immutable
// configuration, the credential snapshot and concurrency-safe collectors,
// so one instance serves all requests.
type ChatHandler struct {
	credentials secrets.CredentialProvider
	upstream    Upstream
	metrics     *metrics.Collector
	tracer      *tracing.Tracer
}

// Option customizes a ChatHandler.
type Option func(*ChatHandler)

// WithMetrics records upstream outcomes in collector.
func WithMetrics(collector *metrics.Collector) Option {
	return func(h *ChatHandler) {
		h.metrics = collector
	}
}

// WithTracer wraps each request in a "chat.proxy" span.
func WithTracer(t *tracing.Tracer) Option {
	return func(h *ChatHandler) {
		h.tracer = t
	}
}

// NewChatHandler creates the proxy handler.
func NewChatHandler(credentials secrets.CredentialProvider, upstream Upstream, opts ...Option) *ChatHandler {
	h := &ChatHandler{
		credentials: credentials,
		upstream:    upstream,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP forwards the posted transcript upstream. Preflight requests are
// answered by the CORS middleware in front of it.
//
// The upstream call is detached from the inbound request: a client that
// disconnects does not cancel it. It stays bounded by upstream.timeout.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "chat.proxy")
	defer span.End()
	tracing.SetRequestID(span, logging.GetRequestID(ctx))

	if r.Method != http.MethodPost {
		h.fail(ctx, w, &proxy.MethodError{Method: r.Method})
		return
	}

	apiKey, ok := h.credentials.APIKey()
	if !ok {
		h.fail(ctx, w, proxy.ErrMissingCredential)
		return
	}

	chatReq, err := proxy.ParseChatRequest(r)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	slog.InfoContext(ctx, "forwarding transcript upstream",
		"model", h.upstream.Model(),
		"messages", len(chatReq.Messages),
	)

	start := time.Now()
	completion, err := h.upstream.SendCompletion(context.WithoutCancel(ctx), apiKey, h.upstream.NewRequest(chatReq.Messages))
	h.recordUpstream(completion, err, time.Since(start))

	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	slog.InfoContext(ctx, "upstream completion succeeded",
		"status", completion.StatusCode,
		"latency_ms", completion.Latency.Milliseconds(),
		"reply_chars", len(completion.Message.Content),
	)

	tracing.SetStatusCode(span, http.StatusOK)
	proxy.WriteRawJSON(w, http.StatusOK, completion.Body)
}

// fail writes the envelope for err and records it.
func (h *ChatHandler) fail(ctx context.Context, w http.ResponseWriter, err error) {
	kind := proxy.ErrorKind(err)
	status := proxy.WriteError(w, err)

	span := tracing.SpanFromContext(ctx)
	tracing.SetErrorKind(span, kind)
	tracing.SetStatusCode(span, status)
	tracing.SetError(span, err)
	tracing.SetStatus(span, err)

	level := slog.LevelError
	if status < http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	slog.Log(ctx, level, "chat request failed",
		"kind", kind,
		"status", status,
		"error", err,
	)
}

// recordUpstream feeds the upstream metrics. Only exchanges that produced
// an HTTP status are counted as calls. Failures rejected before the
// upstream call never reach here.
func (h *ChatHandler) recordUpstream(completion *providers.Completion, err error, elapsed time.Duration) {
	defer h.metrics.UpdateUpstreamHealth(h.upstream.IsHealthy())

	if err != nil {
		h.metrics.RecordUpstreamError(proxy.ErrorKind(err))
	}

	if completion != nil {
		h.metrics.RecordUpstreamCall(h.upstream.Model(), completion.StatusCode, completion.Latency)
		return
	}

	var upErr *providers.UpstreamError
	if errors.As(err, &upErr) {
		h.metrics.RecordUpstreamCall(h.upstream.Model(), upErr.StatusCode, elapsed)
		return
	}

	var malformed *providers.MalformedResponseError
	if errors.As(err, &malformed) {
		h.metrics.RecordUpstreamCall(h.upstream.Model(), http.StatusOK, elapsed)
	}
}
