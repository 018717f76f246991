package providers

import (
	"time"

	"mercator-hq/botchat/pkg/chat"
)

// CompletionRequest is the body posted to {base_url}/chat/completions.
// It is built fresh for every call.
type CompletionRequest struct {
	// Model is the upstream model identifier, e.g. "deepseek-chat".
	Model string `json:"model"`

	// Messages is the client transcript, forwarded unchanged.
	Messages []chat.Turn `json:"messages"`

	// Temperature is the sampling temperature.
	Temperature float64 `json:"temperature"`

	// MaxTokens is the completion token ceiling.
	MaxTokens int `json:"max_tokens"`
}

// Completion is a validated upstream reply.
type Completion struct {
	// Body is the upstream response body, byte for byte.
	Body []byte

	// Message is choices[0].message decoded from Body.
	Message chat.Turn

	// StatusCode is the upstream 2xx status.
	StatusCode int

	// Latency is the duration of the HTTP exchange.
	Latency time.Duration
}

// completionShape is the only part of an upstream response that is
// inspected. Everything else passes through untouched.
type completionShape struct {
	Choices []struct {
		Message *chat.Turn `json:"message"`
	} `json:"choices"`
}

// Health is a passive view of upstream reachability built from real
// traffic. The proxy never probes the upstream on its own.
type Health struct {
	// Healthy is false after three consecutive failed calls.
	Healthy bool `json:"healthy"`

	// ConsecutiveFailures counts failed calls since the last success.
	ConsecutiveFailures int `json:"consecutive_failures"`

	// TotalRequests and FailedRequests count every call made.
	TotalRequests  int64 `json:"total_requests"`
	FailedRequests int64 `json:"failed_requests"`

	// LastSuccess is the time of the last successful call.
	LastSuccess time.Time `json:"last_success,omitempty"`

	// LastError is the message of the most recent failure.
	LastError string `json:"last_error,omitempty"`
}
