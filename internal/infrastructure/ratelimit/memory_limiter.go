package ratelimit

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"athwela/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

type attemptWindow struct {
	count   int
	expires time.Time
}

// MemoryAttemptLimiter keeps attempt counters in process. It is used when Redis is not
// configured, so a lockout only applies to the instance that saw the failures.
type MemoryAttemptLimiter struct {
	mu          sync.Mutex
	attempts    map[string]attemptWindow
	maxAttempts int
	window      time.Duration
	now         func() time.Time
}

var _ interfaces.IAttemptLimiter = (*MemoryAttemptLimiter)(nil)

func NewMemoryAttemptLimiter(maxAttempts int, window time.Duration) *MemoryAttemptLimiter {
	return &MemoryAttemptLimiter{
		attempts:    make(map[string]attemptWindow),
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
	}
}

// current returns the live window for key, dropping it once expired. Callers hold mu.
func (m *MemoryAttemptLimiter) current(key string) (attemptWindow, bool) {
	w, ok := m.attempts[key]
	if !ok {
		return attemptWindow{}, false
	}
	if !m.now().Before(w.expires) {
		delete(m.attempts, key)
		return attemptWindow{}, false
	}
	return w, true
}

// Acquire reserves one verification attempt for key and reports whether it fits
// inside the window's budget.
func (m *MemoryAttemptLimiter) Acquire(_ context.Context, key string) (bool, error) {
	if m.maxAttempts <= 0 || strings.TrimSpace(key) == "" {
		return true, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.current(key)
	if !ok {
		w = attemptWindow{expires: m.now().Add(m.window)}
	}
	w.count++
	m.attempts[key] = w
	return w.count <= m.maxAttempts, nil
}

func (m *MemoryAttemptLimiter) Reset(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.attempts, key)
	return nil
}

// NewLimiter connects to Redis when redisURL is set and falls back to the in-process
// limiter when it is empty or unusable.
func NewLimiter(ctx context.Context, redisURL, prefix string, maxAttempts int, window time.Duration) interfaces.IAttemptLimiter {
	if strings.TrimSpace(redisURL) == "" {
		log.Println("level=warn component=bootstrap msg=\"REDIS_URL not set; pin lockout is per instance\"")
		return NewMemoryAttemptLimiter(maxAttempts, window)
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("level=warn component=bootstrap msg=\"invalid REDIS_URL; pin lockout is per instance\" err=%v", err)
		return NewMemoryAttemptLimiter(maxAttempts, window)
	}
	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("level=warn component=bootstrap msg=\"redis unavailable; pin lockout is per instance\" err=%v", err)
		_ = client.Close()
		return NewMemoryAttemptLimiter(maxAttempts, window)
	}
	log.Println("level=info component=bootstrap msg=\"redis pin limiter connected\"")
	return NewRedisAttemptLimiter(client, prefix, maxAttempts, window)
}
