package api

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/f1nsight/f1nsight-api/internal/api/respond"
)

// --------------------------------------------------------------------------
// Request timing middleware
// --------------------------------------------------------------------------

// TimingMiddleware reports handler latency in an X-Process-Time header.
func TimingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		elapsed := time.Since(start)
		w.Header().Set("X-Process-Time", fmt.Sprintf("%.2fms", float64(elapsed.Microseconds())/1000.0))
	})
}

// --------------------------------------------------------------------------
// Rate limiting middleware (per-client token bucket)
// --------------------------------------------------------------------------

// clientLimiters holds one token bucket per client IP. A dashboard page
// load fans out several requests at once (standings, calendar, news),
// so the bucket must absorb that fan-out without tripping.
type clientLimiters struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	refill  rate.Limit
	burst   int
}

// restBurst is the smallest burst that lets a dashboard load all of its
// panels in parallel before the refill rate takes over.
const restBurst = 10

func newClientLimiters(requestsPerWindow int, window time.Duration) *clientLimiters {
	burst := requestsPerWindow / 2
	if burst < restBurst {
		burst = restBurst
	}
	return &clientLimiters{
		buckets: make(map[string]*rate.Limiter),
		refill:  rate.Limit(float64(requestsPerWindow) / window.Seconds()),
		burst:   burst,
	}
}

func (l *clientLimiters) bucketFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	bucket, ok := l.buckets[ip]
	if !ok {
		bucket = rate.NewLimiter(l.refill, l.burst)
		l.buckets[ip] = bucket
	}
	return bucket
}

// RateLimitMiddleware throttles requests per client IP. Rejections
// carry a Retry-After hint matching the configured window.
func RateLimitMiddleware(requestsPerWindow int, window time.Duration) func(http.Handler) http.Handler {
	limiters := newClientLimiters(requestsPerWindow, window)
	retryAfter := strconv.Itoa(int(window.Seconds()))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, _ := net.SplitHostPort(r.RemoteAddr)
			if ip == "" {
				ip = r.RemoteAddr
			}

			if !limiters.bucketFor(ip).Allow() {
				w.Header().Set("Retry-After", retryAfter)
				respond.WriteError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
