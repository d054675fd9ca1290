// Package ratelimit counts PIN verification attempts per record so repeated guessing locks
// the record for a while.
package ratelimit

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"athwela/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

var acquireScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RedisAttemptLimiter shares attempt counters across instances through Redis.
type RedisAttemptLimiter struct {
	client      redis.UniversalClient
	prefix      string
	maxAttempts int
	window      time.Duration
}

var _ interfaces.IAttemptLimiter = (*RedisAttemptLimiter)(nil)

func NewRedisAttemptLimiter(client redis.UniversalClient, prefix string, maxAttempts int, window time.Duration) *RedisAttemptLimiter {
	trimmedPrefix := strings.TrimSpace(prefix)
	if trimmedPrefix == "" {
		trimmedPrefix = "athwela:pin_attempts"
	}
	trimmedPrefix = strings.TrimSuffix(trimmedPrefix, ":")

	return &RedisAttemptLimiter{
		client:      client,
		prefix:      trimmedPrefix,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

func (r *RedisAttemptLimiter) key(subject string) string {
	return fmt.Sprintf("%s:%s", r.prefix, strings.TrimSpace(subject))
}

func (r *RedisAttemptLimiter) disabled(subject string) bool {
	return r == nil || r.client == nil || r.maxAttempts <= 0 || strings.TrimSpace(subject) == ""
}

// Acquire reserves one verification attempt for subject. The counter is bumped
// before the PIN is checked, so parallel guesses are counted even when none of them
// has failed yet. It returns false once the post-increment count passes the limit.
func (r *RedisAttemptLimiter) Acquire(ctx context.Context, subject string) (bool, error) {
	if r.disabled(subject) {
		return true, nil
	}
	windowMs := r.window.Milliseconds()
	if windowMs < 1000 {
		windowMs = 1000
	}
	count, err := acquireScript.Run(ctx, r.client, []string{r.key(subject)}, windowMs).Int64()
	if err != nil {
		return true, err
	}
	if count == int64(r.maxAttempts)+1 {
		log.Printf("level=warn component=pin_limiter msg=\"record locked\" key=%s window=%s", subject, r.window)
	}
	return count <= int64(r.maxAttempts), nil
}

// Reset clears the counter after a successful verification.
func (r *RedisAttemptLimiter) Reset(ctx context.Context, subject string) error {
	if r.disabled(subject) {
		return nil
	}
	return r.client.Del(ctx, r.key(subject)).Err()
}

// Close releases the Redis client.
func (r *RedisAttemptLimiter) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}
