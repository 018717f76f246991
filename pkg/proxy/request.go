package proxy

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"mercator-hq/botchat/pkg/chat"
)

const (
	// MaxRequestBodySize is the maximum allowed request body size (10MB).
	MaxRequestBodySize = 10 * 1024 * 1024

	// RequestIDHeader is the HTTP header for request ID propagation.
	RequestIDHeader = "X-Request-ID"
)

// ChatRequest is the inbound proxy body. Only messages is read.
type ChatRequest struct {
	Messages []chat.Turn `json:"messages"`
}

// ParseChatRequest decodes the request body. The transcript is returned
// as sent: roles and contents are forwarded upstream untouched.
func ParseChatRequest(r *http.Request) (*ChatRequest, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxRequestBodySize+1))
	if err != nil {
		return nil, &RequestError{Message: "failed to read request body", Cause: err}
	}

	if len(body) > MaxRequestBodySize {
		return nil, &RequestError{
			Message: fmt.Sprintf("request body exceeds maximum size of %d bytes", MaxRequestBodySize),
		}
	}

	var req ChatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, &RequestError{Message: fmt.Sprintf("invalid JSON: %v", err), Cause: err}
	}

	if req.Messages == nil {
		return nil, &RequestError{Message: "messages is required"}
	}

	return &req, nil
}

// RequestError represents an unreadable or invalid inbound body.
type RequestError struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error for error chain support.
func (e *RequestError) Unwrap() error {
	return e.Cause
}
