package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Ventana fija: el primer hit crea el contador con PEXPIRE, los siguientes solo lo incrementan.
const redisWindowScript = `
local hits = redis.call("INCR", KEYS[1])
if hits == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return hits
`

const (
	redisLimiterPrefix  = "psygen:rl:"
	redisLimiterTimeout = 500 * time.Millisecond
)

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// redisRateLimiter comparte el cupo por IP entre todas las replicas del API.
type redisRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
}

// NewRedisRateLimiter devuelve nil sin cliente; el caller cae al limiter en memoria.
func NewRedisRateLimiter(client *redis.Client, window time.Duration, max int) RateLimiter {
	if client == nil {
		return nil
	}
	return newRedisRateLimiter(client, window, max)
}

func newRedisRateLimiter(client redisEvaler, window time.Duration, max int) *redisRateLimiter {
	if window < time.Millisecond {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisRateLimiter{client: client, window: window, max: max}
}

// Allow falla abierto: si Redis no responde a tiempo, el request pasa.
func (l *redisRateLimiter) Allow(ctx context.Context, clientIP string) bool {
	if l == nil || l.client == nil {
		return true
	}
	ctx, cancel := context.WithTimeout(ctx, redisLimiterTimeout)
	defer cancel()

	key := redisLimiterPrefix + clientBucket(clientIP)
	hits, err := l.client.Eval(ctx, redisWindowScript, []string{key}, l.window.Milliseconds()).Int64()
	if err != nil {
		return true
	}
	return hits <= int64(l.max)
}
