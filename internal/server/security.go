package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/osse101/ItemForge_Go/internal/logger"
)

// AuthMiddleware requires the X-API-Key header on every non public path.
func AuthMiddleware(apiKey string, trustedProxies []string, tracker *ClientTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				tracker.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	return slices.ContainsFunc(PublicPaths, func(p string) bool { return strings.HasPrefix(path, p) })
}

// ClientTracker counts requests and failed authentications per client IP in
// fixed windows.
type ClientTracker struct {
	mu         sync.Mutex
	window     time.Duration
	limit      int
	failedAuth map[string]int
	requests   map[string]int
	windowEnd  time.Time
	now        func() time.Time
}

// NewClientTracker allows limit requests per IP in each window.
func NewClientTracker(window time.Duration, limit int) *ClientTracker {
	t := &ClientTracker{window: window, limit: limit, now: time.Now}
	t.reset()
	return t
}

func (t *ClientTracker) reset() {
	t.failedAuth = make(map[string]int)
	t.requests = make(map[string]int)
	t.windowEnd = t.now().Add(t.window)
}

// Caller must hold the mutex.
func (t *ClientTracker) rollWindow() {
	if t.now().After(t.windowEnd) {
		t.reset()
	}
}

// RecordFailedAuth counts a failed authentication and warns once the IP
// reaches the alert threshold.
func (t *ClientTracker) RecordFailedAuth(ip string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rollWindow()
	t.failedAuth[ip]++
	if n := t.failedAuth[ip]; n >= FailedAuthAlertCount {
		slog.Warn(LogMsgRepeatedAuthFail, "ip", ip, "count", n)
	}
}

// Allow counts a request and reports whether the IP is still within its limit.
func (t *ClientTracker) Allow(ip string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rollWindow()
	t.requests[ip]++
	n := t.requests[ip]
	if n <= t.limit {
		return true
	}
	if n%rateLimitLogEvery == 0 {
		slog.Warn(LogMsgRateLimited, "ip", ip, "count_in_window", n)
	}
	return false
}

// RateLimitMiddleware rejects clients over their tracker limit with 429.
func RateLimitMiddleware(trustedProxies []string, tracker *ClientTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !tracker.Allow(extractIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the client address. X-Forwarded-For is only honoured
// when the direct peer is a trusted proxy, and then its last hop is used.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if !slices.Contains(trustedProxies, remoteIP) {
		return remoteIP
	}
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderContentType, HeaderValueNoSniff)
		w.Header().Set(HeaderFrameOptions, HeaderValueDeny)
		w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
		next.ServeHTTP(w, r)
	})
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
