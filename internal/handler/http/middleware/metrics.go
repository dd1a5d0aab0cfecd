package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/calebmoores/content-dashboard/internal/observability/metrics"
)

// statusRecorder wraps http.ResponseWriter to capture the status code
// written by the downstream handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Metrics returns an HTTP middleware that records Prometheus metrics for
// each request: a counter by method, route and status, and a duration
// histogram. The route label uses the matched ServeMux pattern (e.g.
// "/articles/{id}") rather than the raw URL path so that cardinality
// stays bounded.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := routeLabel(r)
			if route == "/metrics" {
				return
			}

			metrics.RecordHTTPRequest(r.Method, route, strconv.Itoa(rec.status), time.Since(start))
		})
	}
}

// routeLabel extracts the matched pattern from the request. ServeMux
// records the pattern on the request during dispatch, so this must be
// read after the downstream handler has run.
func routeLabel(r *http.Request) string {
	pattern := r.Pattern
	if pattern == "" {
		return "unmatched"
	}
	// Patterns look like "GET /articles/{id}"; drop the method prefix.
	if _, path, ok := strings.Cut(pattern, " "); ok {
		return path
	}
	return pattern
}
