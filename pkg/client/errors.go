package client

import (
	"errors"
	"fmt"

	"mercator-hq/botchat/pkg/proxy"
)

// ErrInvalidResponse is returned for a 200 answer without choices[0].message.
var ErrInvalidResponse = errors.New("invalid response format")

// TransportError means the proxy could not be reached or the response could
// not be read. It is the only failure worth another attempt.
type TransportError struct {
	Cause error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("network error: %v", e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// Retryable marks transport failures for the chat session's retry policy.
func (e *TransportError) Retryable() bool {
	return true
}

// ResponseError is a non-200 answer from the proxy.
type ResponseError struct {
	// StatusCode is the HTTP status of the proxy response.
	StatusCode int

	// Envelope is the decoded error body. Its Error field is empty when the
	// body was not an envelope.
	Envelope proxy.ErrorEnvelope
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

// Detail returns the envelope's error label, shown in parentheses in the
// chat transcript.
func (e *ResponseError) Detail() string {
	return e.Envelope.Error
}

// Timeout reports whether the proxy gave up waiting on the upstream.
func (e *ResponseError) Timeout() bool {
	return e.Envelope.Error == proxy.ErrMsgUpstreamTimeout
}
