package http

import (
	"net"
	"net/http"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/juju/ratelimit"
)

// ipRateLimiter keeps one token bucket per client IP.
type ipRateLimiter struct {
	rate     float64
	capacity int64

	mu      sync.Mutex
	buckets map[string]*ratelimit.Bucket
}

// newIPRateLimiter returns nil when rate or capacity is not positive, which
// disables limiting.
func newIPRateLimiter(rate float64, capacity int64) *ipRateLimiter {
	if rate <= 0 || capacity <= 0 {
		return nil
	}
	return &ipRateLimiter{
		rate:     rate,
		capacity: capacity,
		buckets:  make(map[string]*ratelimit.Bucket),
	}
}

func (l *ipRateLimiter) bucket(key string) *ratelimit.Bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = ratelimit.NewBucketWithRate(l.rate, l.capacity)
		l.buckets[key] = b
	}
	return b
}

// allow takes one token for key and reports whether one was available.
func (l *ipRateLimiter) allow(key string) bool {
	return l.bucket(key).TakeAvailable(1) == 1
}

func (h *Handler) withAuthRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !h.limiter.allow(ip) {
			logger.FromRequest(r).Warn().Str("ip", ip).Msg("auth rate limit exceeded")
			utils.WriteError(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP returns the host part of RemoteAddr, which chi's RealIP
// middleware has already replaced with the forwarded address if present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
