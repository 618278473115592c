package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix     = "catalog:ratelimit:"
	opTimeout     = 250 * time.Millisecond
	defaultWindow = time.Minute
)

// RateLimiter is a fixed-window counter per key shared by every replica.
// Key format: catalog:ratelimit:<key>
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRateLimiter allows limit calls per key per window. A non-positive limit
// disables limiting.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	if window <= 0 {
		window = defaultWindow
	}
	return &RateLimiter{client: client, limit: limit, window: window}
}

// Allow increments the counter for key and reports whether the caller is still
// within the limit, and when the current window ends. On Redis errors the
// call is allowed and the error returned for logging.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, time.Time, error) {
	if l.limit <= 0 {
		return true, time.Time{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	redisKey := keyPrefix + key

	// EXPIRE NX runs with every INCR, so a counter left without a TTL still expires.
	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.ExpireNX(ctx, redisKey, l.window)
		ttl = pipe.PTTL(ctx, redisKey)
		return nil
	})
	if err != nil {
		return true, time.Time{}, fmt.Errorf("rate limit incr: %w", err)
	}

	remaining := ttl.Val()
	if remaining <= 0 {
		remaining = l.window
	}

	return incr.Val() <= int64(l.limit), time.Now().Add(remaining), nil
}
