package middleware

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// SecurityHeadersMiddleware adds security headers to all responses. Nothing
// served here is meant to be rendered by a browser, so the content policy
// denies everything.
func SecurityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		w.Header().Set("Cache-Control", "no-store")

		csp := strings.Join([]string{
			"default-src 'none'",
			"frame-ancestors 'none'",
			"base-uri 'none'",
			"form-action 'none'",
		}, "; ")
		w.Header().Set("Content-Security-Policy", csp)

		next.ServeHTTP(w, r)
	})
}

// RateLimiter keeps one token bucket per client IP. Each bucket holds rate
// tokens and refills evenly across window.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	interval time.Duration // time to refill one token
	cleanup  time.Duration // cleanup interval for old entries
	stop     chan struct{}
	once     sync.Once
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a new rate limiter
// requests: number of requests allowed per window
// window: time window for rate limiting
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	interval := window / time.Duration(requests)
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(interval),
		burst:    requests,
		interval: interval,
		cleanup:  window * 2,
		stop:     make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
		}
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastSeen) > rl.cleanup {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Allow checks if a request from the given IP is allowed
func (rl *RateLimiter) Allow(ip string) bool {
	return rl.allowAt(ip, time.Now())
}

func (rl *RateLimiter) allowAt(ip string, now time.Time) bool {
	rl.mu.Lock()
	v, exists := rl.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	rl.mu.Unlock()

	return v.limiter.AllowN(now, 1)
}

// RetryAfter is the whole number of seconds until a rejected client gets a
// token back.
func (rl *RateLimiter) RetryAfter() int {
	return max(1, int(math.Ceil(rl.interval.Seconds())))
}

// RateLimitConfig holds the limiters for the two kinds of endpoints.
type RateLimitConfig struct {
	// MCPLimiter guards the MCP endpoint. A single tool call can fan out
	// into many Brewfather requests, and the upstream API enforces an
	// hourly quota per key.
	MCPLimiter *RateLimiter
	// GlobalLimiter covers health and metrics probes.
	GlobalLimiter *RateLimiter
}

// NewDefaultRateLimitConfig creates rate limiters with sensible defaults
func NewDefaultRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		MCPLimiter:    NewRateLimiter(60, time.Minute),
		GlobalLimiter: NewRateLimiter(120, time.Minute),
	}
}

// Stop stops every limiter.
func (c *RateLimitConfig) Stop() {
	c.MCPLimiter.Stop()
	c.GlobalLimiter.Stop()
}

// RateLimitMiddleware creates a rate limiting middleware. Paths under prefix
// use the MCP limiter.
func RateLimitMiddleware(config *RateLimitConfig, prefix string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter := config.GlobalLimiter
			if strings.HasPrefix(r.URL.Path, prefix) {
				limiter = config.MCPLimiter
			}

			if !limiter.Allow(getClientIP(r)) {
				w.Header().Set("Retry-After", strconv.Itoa(limiter.RetryAfter()))
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// MaxBodySize is the largest request body accepted. JSON-RPC messages from
// MCP clients are small.
const MaxBodySize = 1 << 20

// LimitBodyMiddleware limits request body size to prevent DoS
func LimitBodyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
		}
		next.ServeHTTP(w, r)
	})
}
