package interceptors

import (
	"errors"
	"time"

	"github.com/chainkit/chainkit/chain"
)

// RetryPolicy configures NewRetryHandler. MaxAttempts is the total number of
// attempts including the first (defaults to 3 when <= 0). Backoff is a fixed
// delay before each restart. If ShouldRetry is non-nil, only errors for
// which it returns true are retried; use IsRetryable together with
// RetryableErr to retry only errors marked transient. OnRetry, when set, is
// called before each restart (e.g. to log the attempt).
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
	ShouldRetry func(err error) bool
	OnRetry     func(attempt int, err error)
}

// Retryable marks err as retryable. Use with RetryPolicy.ShouldRetry so only
// these errors trigger a restart (e.g. transient transport failures), not
// permanent ones.
type Retryable struct{ Err error }

func (e *Retryable) Error() string { return e.Err.Error() }
func (e *Retryable) Unwrap() error { return e.Err }

// RetryableErr wraps err as retryable.
func RetryableErr(err error) error { return &Retryable{Err: err} }

// IsRetryable reports whether err is marked retryable.
func IsRetryable(err error) bool { return errors.As(err, new(*Retryable)) }

// RetryHandler is a chain.ErrorHandler that restarts the chain on matching
// errors until the attempt budget runs out, then delivers the last error.
// The chain core only exposes the restart primitive; the policy lives here.
type RetryHandler struct {
	policy RetryPolicy
}

// NewRetryHandler returns a handler applying the given policy. Install it as
// Chain.Handler.
func NewRetryHandler(policy RetryPolicy) *RetryHandler {
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 3
	}
	return &RetryHandler{policy: policy}
}

// Handle implements chain.ErrorHandler. Restarts happen through chain.Retry,
// which already drops them on a cancelled chain, so a backoff timer firing
// after Cancel is harmless.
func (h *RetryHandler) Handle(c *chain.Chain, err error, req *chain.Request, resp *chain.Response, done chain.Completion) {
	if h.policy.ShouldRetry != nil && !h.policy.ShouldRetry(err) {
		c.Deliver(nil, err, done)
		return
	}
	if req.Attempt+1 >= h.policy.MaxAttempts {
		c.Deliver(nil, err, done)
		return
	}
	if h.policy.OnRetry != nil {
		h.policy.OnRetry(req.Attempt+1, err)
	}
	if h.policy.Backoff <= 0 {
		c.Retry(req, done)
		return
	}
	time.AfterFunc(h.policy.Backoff, func() {
		c.Retry(req, done)
	})
}
