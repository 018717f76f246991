package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"mercator-hq/botchat/pkg/chat"
	"mercator-hq/botchat/pkg/config"
	"mercator-hq/botchat/pkg/telemetry/tracing"
)

// maxResponseBytes caps how much of an upstream body is read.
const maxResponseBytes = 10 << 20

// Client calls an OpenAI-compatible chat completion endpoint. Each call is a
// single attempt bounded by the configured upstream timeout; retrying is left
// to the chat client.
//
// A Client is safe for concurrent use.
type Client struct {
	// cfg holds model, sampling and timeout settings
	cfg config.UpstreamConfig

	// endpoint is BaseURL + "/chat/completions"
	endpoint string

	// client is the HTTP client with connection pooling
	client *http.Client

	tracer *tracing.Tracer

	// health tracks upstream reachability from real calls
	health   Health
	healthMu sync.RWMutex
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the pooled HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithTracer records a span for every upstream call.
func WithTracer(t *tracing.Tracer) Option {
	return func(c *Client) {
		c.tracer = t
	}
}

// NewClient creates a client for the upstream described by cfg.
func NewClient(cfg config.UpstreamConfig, opts ...Option) *Client {
	// Create HTTP transport with connection pooling
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	c := &Client{
		cfg:      cfg,
		endpoint: strings.TrimRight(cfg.BaseURL, "/") + "/chat/completions",
		// No client-level timeout: every call carries its own deadline.
		client: &http.Client{Transport: transport},
		health: Health{Healthy: true},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL completions are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.cfg.Model
}

// NewRequest builds the upstream body for a transcript.
func (c *Client) NewRequest(messages []chat.Turn) CompletionRequest {
	return CompletionRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	}
}

// SendCompletion posts req with apiKey as bearer token and validates the
// answer. It returns *TransportError, *UpstreamError or
// *MalformedResponseError on failure.
//
// The call is bounded by the upstream timeout regardless of ctx's deadline.
func (c *Client) SendCompletion(ctx context.Context, apiKey string, req CompletionRequest) (*Completion, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	ctx, span := c.tracer.Start(ctx, "upstream.chat_completion")
	defer span.End()
	tracing.SetUpstreamAttributes(span, c.cfg.Model, len(req.Messages))

	completion, err := c.do(ctx, apiKey, req)
	c.updateHealth(err)

	if completion != nil {
		tracing.SetStatusCode(span, completion.StatusCode)
	} else {
		var upErr *UpstreamError
		if errors.As(err, &upErr) {
			tracing.SetStatusCode(span, upErr.StatusCode)
		}
	}
	tracing.SetError(span, err)
	tracing.SetStatus(span, err)

	return completion, err
}

func (c *Client) do(ctx context.Context, apiKey string, req CompletionRequest) (*Completion, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)
	tracing.Inject(ctx, httpReq.Header)

	slog.DebugContext(ctx, "sending request to upstream",
		"url", c.endpoint,
		"model", req.Model,
		"messages", len(req.Messages),
	)

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, c.transportError(ctx, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	latency := time.Since(start)
	if err != nil {
		return nil, c.transportError(ctx, fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: respBody}
	}

	var shape completionShape
	if err := json.Unmarshal(respBody, &shape); err != nil {
		return nil, &MalformedResponseError{RawResponse: respBody, Cause: err}
	}
	if len(shape.Choices) == 0 || shape.Choices[0].Message == nil {
		return nil, &MalformedResponseError{RawResponse: respBody}
	}

	return &Completion{
		Body:       respBody,
		Message:    *shape.Choices[0].Message,
		StatusCode: resp.StatusCode,
		Latency:    latency,
	}, nil
}

func (c *Client) transportError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &TransportError{Timeout: true, Limit: c.cfg.Timeout, Cause: err}
	}
	return &TransportError{Cause: err}
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.client.CloseIdleConnections()
	return nil
}
