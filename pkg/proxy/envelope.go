package proxy

import (
	"encoding/json"
	"time"
)

// Envelope error strings. Clients match on these.
const (
	ErrMsgMissingCredential = "API key is not configured"
	ErrMsgUpstream          = "Error calling upstream API"
	ErrMsgUpstreamTimeout   = "Upstream request timed out"
	ErrMsgInvalidResponse   = "Invalid response format"
	ErrMsgInvalidRequest    = "Invalid request body"
	ErrMsgMethodNotAllowed  = "Method not allowed"
	ErrMsgInternal          = "Internal Server Error"
)

// TimestampFormat is ISO-8601 in UTC with millisecond precision.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// ErrorEnvelope is the body of every failed proxy response.
//
// Example:
//
//	{
//	    "error": "Error calling upstream API",
//	    "message": "upstream returned HTTP status 429",
//	    "status": 429,
//	    "details": {"error": {"message": "Rate limit exceeded"}},
//	    "timestamp": "2026-01-20T10:30:00.000Z"
//	}
type ErrorEnvelope struct {
	// Error is a fixed, human-readable category.
	Error string `json:"error"`

	// Message describes this particular failure.
	Message string `json:"message,omitempty"`

	// Status is the upstream HTTP status, when there was one.
	Status int `json:"status,omitempty"`

	// Details is the upstream error body: parsed JSON when possible,
	// otherwise the raw text.
	Details interface{} `json:"details,omitempty"`

	// Timestamp is when the envelope was built.
	Timestamp string `json:"timestamp,omitempty"`
}

// NewErrorEnvelope builds an envelope stamped with the current time.
func NewErrorEnvelope(errMsg, message string) *ErrorEnvelope {
	return &ErrorEnvelope{
		Error:     errMsg,
		Message:   message,
		Timestamp: Timestamp(time.Now()),
	}
}

// Timestamp formats t with TimestampFormat in UTC.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}

// upstreamDetails turns an upstream error body into the envelope's details.
func upstreamDetails(body []byte) interface{} {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}
