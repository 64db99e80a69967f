// Package ratelimit implements fixed-window request limits keyed by client IP
// and by payer wallet.
//
// Counting is delegated to a Store so limits can be shared across replicas
// (Redis) or kept in process (MemoryStore).
package ratelimit

import (
	"context"
	"strings"
	"time"
)

// Store keeps one counter per key for the duration of a window.
type Store interface {
	// Increment adds one hit to key and returns the new count and the end of
	// the current window. A new window of the given length starts when key is
	// absent or expired.
	Increment(ctx context.Context, key string, window time.Duration) (count int64, resetAt time.Time, err error)

	// Get returns the current count of key and the end of its window. An
	// absent or expired key yields a zero count and a zero time.
	Get(ctx context.Context, key string) (count int64, resetAt time.Time, err error)

	// Reset removes key.
	Reset(ctx context.Context, key string) error
}

// Rule is a limit of Limit hits per Window for one kind of subject.
type Rule struct {
	Name   string
	Limit  int64
	Window time.Duration
}

var (
	// IPRule limits requests per client IP.
	IPRule = Rule{Name: "ip", Limit: 100, Window: 15 * time.Minute}

	// WalletRule limits payment submissions per payer wallet.
	WalletRule = Rule{Name: "wallet", Limit: 50, Window: 15 * time.Minute}
)

// Decision is the state of a subject's window after a check.
type Decision struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   time.Time
}

// RetryAfter returns how long the subject has to wait for a new window.
func (d Decision) RetryAfter(now time.Time) time.Duration {
	if wait := d.ResetAt.Sub(now); wait > 0 {
		return wait
	}

	return 0
}

// Limiter applies rules to subjects.
type Limiter interface {
	// Allow counts one hit for subject and reports whether it is within the
	// rule. An empty subject is always allowed and not counted.
	Allow(ctx context.Context, rule Rule, subject string) (Decision, error)

	// Info reports the current window of subject without counting a hit.
	Info(ctx context.Context, rule Rule, subject string) (Decision, error)

	// Reset clears the window of subject.
	Reset(ctx context.Context, rule Rule, subject string) error
}

type limiter struct {
	store Store
	now   func() time.Time
}

var _ Limiter = (*limiter)(nil)

// key namespaces subject by rule. Subjects are lowercased so mixed-case
// wallet addresses share a window.
func key(rule Rule, subject string) string {
	return "ratelimit:" + rule.Name + ":" + strings.ToLower(subject)
}

func decide(rule Rule, count int64, resetAt time.Time) Decision {
	return Decision{
		Allowed:   count <= rule.Limit,
		Limit:     rule.Limit,
		Remaining: max(rule.Limit-count, 0),
		ResetAt:   resetAt,
	}
}

// Allow implements Limiter.
func (l *limiter) Allow(ctx context.Context, rule Rule, subject string) (Decision, error) {
	if subject == "" {
		return decide(rule, 0, l.now().Add(rule.Window)), nil
	}

	count, resetAt, err := l.store.Increment(ctx, key(rule, subject), rule.Window)
	if err != nil {
		return Decision{}, err
	}

	return decide(rule, count, resetAt), nil
}

// Info implements Limiter.
func (l *limiter) Info(ctx context.Context, rule Rule, subject string) (Decision, error) {
	count, resetAt, err := l.store.Get(ctx, key(rule, subject))
	if err != nil {
		return Decision{}, err
	}

	if count == 0 {
		resetAt = l.now().Add(rule.Window)
	}

	return decide(rule, count, resetAt), nil
}

// Reset implements Limiter.
func (l *limiter) Reset(ctx context.Context, rule Rule, subject string) error {
	return l.store.Reset(ctx, key(rule, subject))
}

// New returns a Limiter counting in store.
func New(store Store) *limiter {
	return &limiter{
		store: store,
		now:   time.Now,
	}
}
