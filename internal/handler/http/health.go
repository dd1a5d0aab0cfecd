// Package http provides shared HTTP handlers for the dashboard API:
// health checks and the glue that feature packages register onto.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/calebmoores/content-dashboard/internal/handler/http/respond"
)

// Pinger reports whether the backing store is reachable. Both the
// markdown directory store and the SQLite database satisfy it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse represents the JSON response for the health endpoint.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // RFC3339
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthHandler handles health check requests. It verifies that the
// article store is reachable and reports the running version.
type HealthHandler struct {
	Store   Pinger
	Version string
}

func (h HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    make(map[string]CheckStatus),
		Version:   h.Version,
	}

	store := CheckStatus{Status: "healthy"}
	if h.Store == nil {
		store = CheckStatus{Status: "unhealthy", Message: "store not configured"}
	} else if err := h.Store.Ping(ctx); err != nil {
		store = CheckStatus{Status: "unhealthy", Message: err.Error()}
	}
	resp.Checks["store"] = store

	code := http.StatusOK
	if store.Status != "healthy" {
		resp.Status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	respond.JSON(w, code, resp)
}
