package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	attemptWindow = 15 * time.Minute
	maxAttempts   = 10
)

// LoginLimiter throttles failed login attempts per client, backed by Redis.
// Key format: login_attempts:<client>
//
// Only failures count: a successful login resets the counter, so legitimate
// users are never locked out by their own history.
type LoginLimiter struct {
	client *redis.Client
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{client: client}
}

// Allow reports whether the client is still under the failure budget.
func (l *LoginLimiter) Allow(ctx context.Context, client string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(client)).Int()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("login limiter check: %w", err)
	}
	return n < maxAttempts, nil
}

// NoteFailure records one failed attempt. The window starts with the first
// failure and is not extended by later ones.
func (l *LoginLimiter) NoteFailure(ctx context.Context, client string) error {
	key := l.key(client)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("login limiter incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, attemptWindow).Err(); err != nil {
			return fmt.Errorf("login limiter expire: %w", err)
		}
	}
	return nil
}

// Reset clears the client's failure count.
func (l *LoginLimiter) Reset(ctx context.Context, client string) error {
	return l.client.Del(ctx, l.key(client)).Err()
}

func (l *LoginLimiter) key(client string) string {
	return "login_attempts:" + client
}
