package proxy

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"mercator-hq/botchat/pkg/providers"
)

// Error kinds used as metric labels and log attributes.
const (
	KindMissingCredential = "missing_credential"
	KindBadRequest        = "bad_request"
	KindMethodNotAllowed  = "method_not_allowed"
	KindTimeout           = "timeout"
	KindTransport         = "transport"
	KindUpstreamStatus    = "upstream_status"
	KindMalformed         = "malformed"
	KindInternal          = "internal"
)

// ErrMissingCredential means no upstream API key is configured.
var ErrMissingCredential = errors.New("upstream API key is not configured")

// MethodError is returned for any method other than POST.
type MethodError struct {
	Method string
}

// Error implements the error interface.
func (e *MethodError) Error() string {
	return fmt.Sprintf("method %s is not allowed", e.Method)
}

// HandleError converts any handler failure into a status code and envelope.
// Upstream non-2xx answers keep their real status; everything else the
// proxy could not complete is a 500.
//
// Example usage:
//
//	if err != nil {
//	    status, envelope := HandleError(err)
//	    WriteErrorResponse(w, status, envelope)
//	    return
//	}
func HandleError(err error) (int, *ErrorEnvelope) {
	if errors.Is(err, ErrMissingCredential) {
		env := NewErrorEnvelope(ErrMsgMissingCredential, "")
		return http.StatusInternalServerError, env
	}

	var methodErr *MethodError
	if errors.As(err, &methodErr) {
		return http.StatusMethodNotAllowed, NewErrorEnvelope(ErrMsgMethodNotAllowed, methodErr.Error())
	}

	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return http.StatusInternalServerError, NewErrorEnvelope(ErrMsgInvalidRequest, reqErr.Error())
	}

	var upErr *providers.UpstreamError
	if errors.As(err, &upErr) {
		env := NewErrorEnvelope(ErrMsgUpstream, upErr.Error())
		env.Status = upErr.StatusCode
		env.Details = upstreamDetails(upErr.Body)
		return upErr.StatusCode, env
	}

	var malformed *providers.MalformedResponseError
	if errors.As(err, &malformed) {
		return http.StatusInternalServerError, NewErrorEnvelope(ErrMsgInvalidResponse, malformed.Error())
	}

	var transportErr *providers.TransportError
	if errors.As(err, &transportErr) {
		if transportErr.Timeout {
			return http.StatusInternalServerError, NewErrorEnvelope(ErrMsgUpstreamTimeout, transportErr.Error())
		}
		return http.StatusInternalServerError, NewErrorEnvelope(ErrMsgUpstream, transportErr.Error())
	}

	return http.StatusInternalServerError, NewErrorEnvelope(ErrMsgInternal, err.Error())
}

// ErrorKind classifies err for metrics and logs.
func ErrorKind(err error) string {
	var (
		methodErr    *MethodError
		reqErr       *RequestError
		upErr        *providers.UpstreamError
		malformed    *providers.MalformedResponseError
		transportErr *providers.TransportError
	)

	switch {
	case errors.Is(err, ErrMissingCredential):
		return KindMissingCredential
	case errors.As(err, &methodErr):
		return KindMethodNotAllowed
	case errors.As(err, &reqErr):
		return KindBadRequest
	case errors.As(err, &upErr):
		return KindUpstreamStatus
	case errors.As(err, &malformed):
		return KindMalformed
	case errors.As(err, &transportErr):
		if transportErr.Timeout {
			return KindTimeout
		}
		return KindTransport
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	default:
		return KindInternal
	}
}
