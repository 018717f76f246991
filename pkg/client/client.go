package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"mercator-hq/botchat/pkg/chat"
	"mercator-hq/botchat/pkg/proxy"
	"mercator-hq/botchat/pkg/telemetry/tracing"

	"github.com/google/uuid"
)

// maxResponseBytes caps how much of a proxy response is read.
const maxResponseBytes = 10 << 20

// ProxyClient posts transcripts to the BotChat proxy. It implements
// chat.Sender and makes exactly one attempt per Send; the session owns retry
// and the overall deadline.
type ProxyClient struct {
	url    string
	client *http.Client
}

// Option customizes a ProxyClient.
type Option func(*ProxyClient)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *ProxyClient) {
		c.client = hc
	}
}

// New creates a client for the proxy endpoint at url, e.g.
// "http://127.0.0.1:8080/api/chat".
func New(url string, opts ...Option) *ProxyClient {
	c := &ProxyClient{
		url:    url,
		client: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the proxy endpoint.
func (c *ProxyClient) URL() string {
	return c.url
}

// Send posts {"messages": transcript} and returns choices[0].message.
//
// Errors: *TransportError for network failures, *ResponseError for non-200
// answers, ErrInvalidResponse for a 200 without a message, and ctx.Err()
// when the context ends first.
func (c *ProxyClient) Send(ctx context.Context, transcript []chat.Turn) (chat.Turn, error) {
	body, err := json.Marshal(proxy.ChatRequest{Messages: transcript})
	if err != nil {
		return chat.Turn{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return chat.Turn{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(proxy.RequestIDHeader, uuid.NewString())
	tracing.Inject(ctx, req.Header)

	resp, err := c.client.Do(req)
	if err != nil {
		return chat.Turn{}, c.transportError(ctx, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return chat.Turn{}, c.transportError(ctx, err)
	}

	if resp.StatusCode != http.StatusOK {
		respErr := &ResponseError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(respBody, &respErr.Envelope); err != nil {
			slog.DebugContext(ctx, "proxy error body is not an envelope",
				"status", resp.StatusCode,
				"error", err,
			)
		}
		return chat.Turn{}, respErr
	}

	var shape struct {
		Choices []struct {
			Message *chat.Turn `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &shape); err != nil {
		return chat.Turn{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if len(shape.Choices) == 0 || shape.Choices[0].Message == nil {
		return chat.Turn{}, ErrInvalidResponse
	}

	return *shape.Choices[0].Message, nil
}

// transportError prefers the context error so the session can tell a
// deadline from a network failure.
func (c *ProxyClient) transportError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return &TransportError{Cause: err}
}
