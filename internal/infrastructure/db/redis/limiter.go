package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// commands is the subset of the Redis API the limiter uses; *redis.Client
// satisfies it, and tests substitute a fake.
type commands interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	ExpireNX(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// AttemptLimiter throttles login attempts per email, backed by Redis.
// Key format: login_attempts:<email>, expiring after the configured window.
type AttemptLimiter struct {
	client commands
	max    int
	window time.Duration
}

// NewAttemptLimiter creates an AttemptLimiter allowing max attempts per window.
func NewAttemptLimiter(client commands, max int, window time.Duration) *AttemptLimiter {
	return &AttemptLimiter{client: client, max: max, window: window}
}

// Allow counts one attempt and reports whether it is still within the limit.
// ExpireNX runs on every attempt, not just the first: if a previous process
// died between INCR and arming the TTL, the orphaned counter still gets a
// window and eventually expires instead of throttling the email forever.
func (l *AttemptLimiter) Allow(ctx context.Context, email string) (bool, error) {
	key := l.key(email)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("attempt count: %w", err)
	}
	if err := l.client.ExpireNX(ctx, key, l.window).Err(); err != nil {
		return false, fmt.Errorf("attempt expire: %w", err)
	}
	return n <= int64(l.max), nil
}

// Reset clears the counter after a successful login.
func (l *AttemptLimiter) Reset(ctx context.Context, email string) error {
	return l.client.Del(ctx, l.key(email)).Err()
}

func (l *AttemptLimiter) key(email string) string {
	return "login_attempts:" + email
}
