// Package retry wraps avast/retry-go behind a small interface so services can
// receive a retry policy as a dependency and tests can swap it out.
//
// Delays grow exponentially between attempts. A policy can be narrowed to
// specific errors with WithRetryIf and observed with WithOnRetry:
//
//	r := retry.New(
//	    retry.WithAttempts(3),
//	    retry.WithDelay(250*time.Millisecond),
//	    retry.WithRetryIf(func(err error) bool { return errors.Is(err, payverify.ErrRPC) }),
//	)
//	err := r.Execute(ctx, func() error { ... })
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation until it succeeds, the attempts run out, a
// non-retryable error is returned, or ctx is done.
type Retry interface {
	// Execute runs operation with the configured policy. The operation must be
	// safe to call more than once.
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint          // total attempts, including the first one
	delay       time.Duration // base delay before the first retry
	maxDelay    time.Duration // cap for the exponential delay
	lastErrOnly bool          // return only the last error instead of all of them
	retryIf     func(error) bool
	onRetry     func(attempt uint, err error)
}

// Option configures a Retry built by New.
type Option func(*config)

// retrier implements Retry on top of retry-go.
type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry with the given options applied over the defaults:
// 3 attempts, 1s base delay, 5s max delay, last error only, every error retried.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements Retry.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}
	if r.cfg.retryIf != nil {
		options = append(options, retry.RetryIf(r.cfg.retryIf))
	}
	if r.cfg.onRetry != nil {
		options = append(options, retry.OnRetry(r.cfg.onRetry))
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the total number of attempts, including the first one.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay before the first retry.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the delay between two attempts.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly controls whether Execute returns only the error of the
// final attempt (true) or all attempt errors combined (false).
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithRetryIf restricts retries to errors for which f returns true. Any other
// error stops the loop and is returned as is.
func WithRetryIf(f func(error) bool) Option {
	return func(c *config) {
		c.retryIf = f
	}
}

// WithOnRetry registers a callback invoked after every failed attempt that
// will be retried. attempt is zero based.
func WithOnRetry(f func(attempt uint, err error)) Option {
	return func(c *config) {
		c.onRetry = f
	}
}
