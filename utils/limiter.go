package utils

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/time/rate"
)

// Limiter decides whether the client identified by key may make another
// request.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisLimiter is a fixed one-minute window counter shared by every
// instance pointing at the same Redis.
type RedisLimiter struct {
	rdb       *redis.Client
	perMinute int
}

func NewRedisLimiter(rdb *redis.Client, perMinute int) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, perMinute: perMinute}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowKey := fmt.Sprintf("ratelimit_%s_%d", key, time.Now().Unix()/60)
	cnt, err := l.rdb.Incr(ctx, windowKey).Result()
	if err != nil {
		return false, err
	}
	if cnt == 1 {
		l.rdb.Expire(ctx, windowKey, time.Minute)
	}
	return cnt <= int64(l.perMinute), nil
}

// LocalLimiter is a per-process token bucket per key, used when Redis is not
// configured.
type LocalLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func NewLocalLimiter(perMinute int) *LocalLimiter {
	return &LocalLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(float64(perMinute) / 60),
		burst:    perMinute,
	}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	limiter, ok := l.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters[key] = limiter
	}
	l.mu.Unlock()
	return limiter.Allow(), nil
}

// Reset drops all buckets.
func (l *LocalLimiter) Reset() {
	l.mu.Lock()
	l.limiters = make(map[string]*rate.Limiter)
	l.mu.Unlock()
}
