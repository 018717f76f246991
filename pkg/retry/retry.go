// Package retry runs an operation a bounded number of times with a pluggable
// backoff between attempts.
//
// It is a thin layer over github.com/cenkalti/backoff/v4 that counts attempts
// instead of retries and lets the caller classify which errors are worth
// another attempt:
//
//	turn, err := retry.Do(ctx, retry.Policy{
//		MaxAttempts: 3,
//		Backoff:     retry.Linear(time.Second),
//		Retryable:   client.IsRetryable,
//	}, func(ctx context.Context) (chat.Turn, error) {
//		return proxy.Send(ctx, transcript)
//	})
//
// Errors rejected by Retryable are returned as-is after the first attempt.
// If ctx ends while waiting between attempts, ctx.Err() is returned.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy bounds and shapes the attempts made by Do.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first.
	// Values below 1 are treated as 1.
	MaxAttempts int

	// Backoff returns the delay before the given attempt. The attempt
	// numbering starts at 1 for the delay preceding the second call.
	// A nil Backoff retries immediately.
	Backoff func(attempt int) time.Duration

	// Retryable reports whether an error may be retried. A nil Retryable
	// retries every error.
	Retryable func(err error) bool

	// OnRetry, if set, is called before each wait.
	OnRetry func(attempt int, err error, wait time.Duration)
}

// Linear returns a backoff of attempt*step.
func Linear(step time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * step
	}
}

// Constant returns a backoff that always waits d.
func Constant(d time.Duration) func(int) time.Duration {
	return func(int) time.Duration {
		return d
	}
}

// Do calls op until it succeeds, returns a non-retryable error, the attempt
// budget is spent, or ctx ends. It returns the last result and error.
func Do[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	schedule := &attemptBackOff{delay: p.Backoff}
	b := backoff.WithContext(backoff.WithMaxRetries(schedule, uint64(attempts-1)), ctx)

	operation := func() (T, error) {
		res, err := op(ctx)
		if err != nil && p.Retryable != nil && !p.Retryable(err) {
			return res, backoff.Permanent(err)
		}
		return res, err
	}

	var notify backoff.Notify
	if p.OnRetry != nil {
		notify = func(err error, wait time.Duration) {
			p.OnRetry(schedule.attempt, err, wait)
		}
	}

	return backoff.RetryNotifyWithData(operation, b, notify)
}

// attemptBackOff adapts an attempt-indexed delay function to backoff.BackOff.
type attemptBackOff struct {
	delay   func(int) time.Duration
	attempt int
}

func (a *attemptBackOff) NextBackOff() time.Duration {
	a.attempt++
	if a.delay == nil {
		return 0
	}
	return a.delay(a.attempt)
}

func (a *attemptBackOff) Reset() {
	a.attempt = 0
}
