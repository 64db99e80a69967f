package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/ad402/payverify/internal/pkg/x/chflow"
)

type window struct {
	count   int64
	resetAt time.Time
}

// MemoryStore is a Store kept in process memory. Expired windows are dropped
// lazily on access and in bulk by Purge.
//
// Counters are not shared between processes, so MemoryStore only fits a
// single replica. Deployments default to the Redis store, which every replica
// shares.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]window
	now     func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		windows: make(map[string]window),
		now:     time.Now,
	}
}

// Increment implements Store.
func (s *MemoryStore) Increment(_ context.Context, key string, d time.Duration) (int64, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	w, ok := s.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = window{resetAt: now.Add(d)}
	}

	w.count++
	s.windows[key] = w

	return w.count, w.resetAt, nil
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, key string) (int64, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok || !s.now().Before(w.resetAt) {
		return 0, time.Time{}, nil
	}

	return w.count, w.resetAt, nil
}

// Reset implements Store.
func (s *MemoryStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.windows, key)
	return nil
}

// Purge drops every expired window and returns how many were removed.
func (s *MemoryStore) Purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for k, w := range s.windows {
		if !now.Before(w.resetAt) {
			delete(s.windows, k)
			removed++
		}
	}

	return removed
}

// RunJanitor purges expired windows every interval until ctx is done.
func (s *MemoryStore) RunJanitor(ctx context.Context, interval time.Duration) {
	for chflow.Sleep(ctx, interval) {
		s.Purge()
	}
}
