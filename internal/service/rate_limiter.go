package service

import (
	"context"
	"net"
	"net/netip"
	"strings"
	"sync"
	"time"
)

// RateLimiter limita la frecuencia de requests por clave (IP del cliente).
type RateLimiter interface {
	Allow(ctx context.Context, key string) bool
}

const (
	maxTrackedKeys = 10000

	// unknownClient agrupa los requests sin IP reconocible. Comparten un unico cupo.
	unknownClient = "unknown"
)

// clientBucket traduce la IP del cliente a la clave del limiter.
// IPv4 (tambien en forma ::ffff:a.b.c.d) se usa tal cual; IPv6 se agrupa por /64,
// que es lo minimo que un cliente suele tener asignado.
func clientBucket(key string) string {
	key = strings.TrimSpace(key)
	if host, _, err := net.SplitHostPort(key); err == nil {
		key = host
	}
	addr, err := netip.ParseAddr(key)
	if err != nil {
		return unknownClient
	}
	addr = addr.WithZone("").Unmap()
	if addr.Is4() {
		return addr.String()
	}
	prefix, err := addr.Prefix(64)
	if err != nil {
		return unknownClient
	}
	return prefix.String()
}

type memoryRateLimiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	hits   map[string][]time.Time
	now    func() time.Time
}

// NewMemoryRateLimiter crea un rate limiter de ventana deslizante en memoria.
func NewMemoryRateLimiter(window time.Duration, max int) RateLimiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &memoryRateLimiter{
		window: window,
		max:    max,
		hits:   make(map[string][]time.Time),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (l *memoryRateLimiter) Allow(_ context.Context, key string) bool {
	key = clientBucket(key)
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	cutoff := now.Add(-l.window)
	if len(l.hits) > maxTrackedKeys {
		l.sweep(cutoff)
	}
	entries := l.hits[key]
	kept := entries[:0]
	for _, ts := range entries {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) >= l.max {
		l.hits[key] = kept
		return false
	}
	kept = append(kept, now)
	l.hits[key] = kept
	return true
}

// sweep borra las claves cuyo ultimo hit ya salio de la ventana.
func (l *memoryRateLimiter) sweep(cutoff time.Time) {
	for key, entries := range l.hits {
		if len(entries) == 0 || !entries[len(entries)-1].After(cutoff) {
			delete(l.hits, key)
		}
	}
}
