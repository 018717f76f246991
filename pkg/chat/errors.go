package chat

import (
	"context"
	"errors"
)

var (
	// ErrEmptyInput is returned by Submit for blank input. Nothing is sent.
	ErrEmptyInput = errors.New("input is empty")

	// ErrRequestInFlight is returned by Submit and Reset while a request is
	// already running. The session is left unchanged.
	ErrRequestInFlight = errors.New("a request is already in flight")
)

// retryable is implemented by transport errors that may succeed on a new
// attempt.
type retryable interface {
	Retryable() bool
}

// detailed is implemented by errors carrying the proxy's error label.
type detailed interface {
	Detail() string
}

// timeoutError is implemented by errors reporting that a bound expired further
// along the path, such as the proxy's upstream timeout.
type timeoutError interface {
	Timeout() bool
}

// IsRetryable reports whether err, or an error it wraps, declares itself
// retryable. Context errors never are.
func IsRetryable(err error) bool {
	var r retryable
	return errors.As(err, &r) && r.Retryable()
}

func detailOf(err error) string {
	var d detailed
	if errors.As(err, &d) {
		return d.Detail()
	}
	return ""
}

// IsAborted reports whether the exchange ended by cancellation or by a
// timeout, either the session's own or one reported by the proxy.
func IsAborted(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var t timeoutError
	return errors.As(err, &t) && t.Timeout()
}
