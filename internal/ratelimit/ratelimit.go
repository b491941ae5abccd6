// Package ratelimit enforces a per-client-IP token-bucket quota on top of
// an HTTP handler, using golang.org/x/time/rate.
package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter tracks one token bucket per client IP, replenishing a token every
// replenishInterval up to burst tokens.
type Limiter struct {
	mu                sync.Mutex
	visitors          map[string]*rate.Limiter
	replenishInterval time.Duration
	burst             int
}

// New builds a Limiter that replenishes one token every replenishInterval
// and allows bursts up to burst tokens per IP.
func New(replenishInterval time.Duration, burst int) *Limiter {
	return &Limiter{
		visitors:          make(map[string]*rate.Limiter),
		replenishInterval: replenishInterval,
		burst:             burst,
	}
}

func (l *Limiter) limiterFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.visitors[ip]
	if !ok {
		lim = rate.NewLimiter(rate.Every(l.replenishInterval), l.burst)
		l.visitors[ip] = lim
	}
	return lim
}

// Allow reports whether a request from ip may proceed right now, consuming
// a token if so.
func (l *Limiter) Allow(ip string) bool {
	return l.limiterFor(ip).Allow()
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Middleware rejects requests exceeding the per-IP quota with 429 before
// calling next.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(clientIP(r)) {
			http.Error(w, `{"error":{"kind":"RateLimited"}}`, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
