package middleware

import (
	"errors"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/calebmoores/content-dashboard/internal/handler/http/respond"
)

var errRateLimited = errors.New("rate limit exceeded, try again later")

// RateLimit returns an HTTP middleware that enforces a global token
// bucket limit on the wrapped handler. It is applied to the suggestion
// endpoint so a runaway client cannot burn through the AI provider
// quota.
//
// Requests that find the bucket empty are rejected immediately with
// 429 Too Many Requests rather than queued, since the caller is an
// interactive dashboard that would rather retry than wait.
func RateLimit(requestsPerSecond float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				respond.Error(w, http.StatusTooManyRequests, errRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
