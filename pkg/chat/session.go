package chat

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"mercator-hq/botchat/pkg/retry"
)

// Sender delivers a transcript to the proxy and returns the assistant reply.
// Implementations must honor ctx.
type Sender interface {
	Send(ctx context.Context, transcript []Turn) (Turn, error)
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, transcript []Turn) (Turn, error)

// Send calls f.
func (f SenderFunc) Send(ctx context.Context, transcript []Turn) (Turn, error) {
	return f(ctx, transcript)
}

// Options configures a Session. Zero values take the defaults noted below.
type Options struct {
	// Timeout bounds a whole request cycle, retries included. Default: 90s.
	Timeout time.Duration

	// MaxAttempts is the number of attempts on retryable failures. Default: 3.
	MaxAttempts int

	// BackoffStep is the linear backoff unit. Default: 1s.
	BackoffStep time.Duration

	// Retryable classifies errors. Default: IsRetryable.
	Retryable func(error) bool

	// Catalog supplies the error and timeout texts. Default: NewCatalog("").
	Catalog *Catalog

	// OnChange is called after every transcript or loading change.
	OnChange func(Snapshot)

	// Logger receives retry and failure logs. Default: slog.Default().
	Logger *slog.Logger
}

// Session is one conversation held in memory. The user's turn is appended
// before the request is sent and is never removed; every request cycle ends
// with exactly one assistant turn, either the reply or an error turn.
//
// At most one request is in flight per Session.
type Session struct {
	sender  Sender
	catalog *Catalog
	policy  retry.Policy
	timeout time.Duration
	logger  *slog.Logger

	onChange func(Snapshot)

	mu      sync.Mutex
	turns   []Turn
	loading bool
}

// NewSession creates an empty session that sends through sender.
func NewSession(sender Sender, opts Options) *Session {
	if opts.Timeout <= 0 {
		opts.Timeout = 90 * time.Second
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 3
	}
	if opts.BackoffStep == 0 {
		opts.BackoffStep = time.Second
	}
	if opts.Retryable == nil {
		opts.Retryable = IsRetryable
	}
	if opts.Catalog == nil {
		opts.Catalog = NewCatalog("")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := &Session{
		sender:   sender,
		catalog:  opts.Catalog,
		timeout:  opts.Timeout,
		logger:   opts.Logger,
		onChange: opts.OnChange,
	}
	s.policy = retry.Policy{
		MaxAttempts: opts.MaxAttempts,
		Backoff:     retry.Linear(opts.BackoffStep),
		Retryable:   opts.Retryable,
		OnRetry: func(attempt int, err error, wait time.Duration) {
			s.logger.Warn("chat request failed, retrying",
				"attempt", attempt,
				"max_attempts", opts.MaxAttempts,
				"wait", wait,
				"error", err,
			)
		},
	}
	return s
}

// Submit appends text as a user turn, sends the transcript and appends the
// assistant turn that ends the cycle. It blocks until the cycle completes
// and returns that assistant turn.
//
// Blank input returns ErrEmptyInput and a submission during a running cycle
// returns ErrRequestInFlight; neither changes the transcript. Any other
// error is the cause of the error turn that was appended.
func (s *Session) Submit(ctx context.Context, text string) (Turn, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Turn{}, ErrEmptyInput
	}

	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return Turn{}, ErrRequestInFlight
	}
	s.turns = append(s.turns, UserTurn(text))
	s.loading = true
	transcript := slices.Clone(s.turns)
	s.mu.Unlock()
	s.notify()

	reply, err := s.send(ctx, transcript)
	if err != nil {
		reply = s.failureTurn(err)
		s.logger.Error("chat request failed", "error", err, "turns", len(transcript))
	}

	s.mu.Lock()
	s.turns = append(s.turns, reply)
	s.loading = false
	s.mu.Unlock()
	s.notify()

	return reply, err
}

func (s *Session) send(ctx context.Context, transcript []Turn) (Turn, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := retry.Do(ctx, s.policy, func(ctx context.Context) (Turn, error) {
		return s.sender.Send(ctx, transcript)
	})
	if err != nil {
		return Turn{}, err
	}

	reply.Role = RoleAssistant
	return reply, nil
}

func (s *Session) failureTurn(err error) Turn {
	if IsAborted(err) {
		return AssistantTurn(s.catalog.Timeout)
	}
	return AssistantTurn(s.catalog.ErrorText(err.Error(), detailOf(err)))
}

// Snapshot returns a copy of the transcript and the loading flag.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Turns: slices.Clone(s.turns), Loading: s.loading}
}

// Loading reports whether a request is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Reset clears the transcript. It fails with ErrRequestInFlight while a
// request is running.
func (s *Session) Reset() error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return ErrRequestInFlight
	}
	s.turns = nil
	s.mu.Unlock()
	s.notify()
	return nil
}

// Catalog returns the messages the session uses.
func (s *Session) Catalog() *Catalog {
	return s.catalog
}

func (s *Session) notify() {
	if s.onChange != nil {
		s.onChange(s.Snapshot())
	}
}
