package redis

import (
	"context"
	"errors"
	"time"

	"github.com/ad402/payverify/internal/ratelimit"

	"github.com/redis/go-redis/v9"
)

// Increment implements ratelimit.Store with INCR, starting the window with
// PEXPIRE when the key has no expiry yet.
func (s *client) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	var (
		incr *redis.IntCmd
		pttl *redis.DurationCmd
	)

	_, err := s.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pttl = pipe.PTTL(ctx, key)
		return nil
	})
	if err != nil {
		return 0, time.Time{}, err
	}

	ttl := pttl.Val()
	if ttl < 0 {
		if err := s.conn.PExpire(ctx, key, window).Err(); err != nil {
			return 0, time.Time{}, err
		}
		ttl = window
	}

	return incr.Val(), time.Now().Add(ttl), nil
}

// Get implements ratelimit.Store.
func (s *client) Get(ctx context.Context, key string) (int64, time.Time, error) {
	var (
		get  *redis.StringCmd
		pttl *redis.DurationCmd
	)

	_, err := s.conn.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		get = pipe.Get(ctx, key)
		pttl = pipe.PTTL(ctx, key)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, time.Time{}, err
	}

	count, err := get.Int64()
	if errors.Is(err, redis.Nil) {
		return 0, time.Time{}, nil
	}
	if err != nil {
		return 0, time.Time{}, err
	}

	var resetAt time.Time
	if ttl := pttl.Val(); ttl > 0 {
		resetAt = time.Now().Add(ttl)
	}

	return count, resetAt, nil
}

// Reset implements ratelimit.Store.
func (s *client) Reset(ctx context.Context, key string) error {
	return s.conn.Del(ctx, key).Err()
}

var _ ratelimit.Store = new(client)
