package providers

import (
	"fmt"
	"time"
)

// TransportError means no HTTP response was obtained: the connection failed,
// the request timed out, or the body could not be read.
type TransportError struct {
	// Timeout is set when the upstream bound expired.
	Timeout bool

	// Limit is the configured upstream timeout.
	Limit time.Duration

	// Cause is the underlying error
	Cause error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("upstream request timed out after %s", e.Limit)
	}
	return fmt.Sprintf("upstream request failed: %v", e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// UpstreamError is a non-2xx answer from the upstream API.
type UpstreamError struct {
	// StatusCode is the HTTP status the upstream returned.
	StatusCode int

	// Body is the raw response body.
	Body []byte
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned HTTP status %d", e.StatusCode)
}

// MalformedResponseError is a 2xx answer without choices[0].message.
type MalformedResponseError struct {
	// RawResponse is the body that failed validation.
	RawResponse []byte

	// Cause is the decode error, if the body was not valid JSON.
	Cause error
}

// Error implements the error interface.
func (e *MalformedResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid response format from upstream API: %v", e.Cause)
	}
	return "invalid response format from upstream API"
}

// Unwrap returns the underlying error for error chain support.
func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}
