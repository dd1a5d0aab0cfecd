package article

import (
	"log/slog"
	"net/http"

	artUC "github.com/calebmoores/content-dashboard/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
// It sets up routes for listing, creating, updating, deleting, status
// transitions and scheduling.
func Register(mux *http.ServeMux, svc *artUC.Service, logger *slog.Logger) {
	mux.Handle("GET /articles", ListHandler{Svc: svc, Logger: logger})
	mux.Handle("GET /articles/{id}", GetHandler{Svc: svc})

	mux.Handle("POST /articles", CreateHandler{Svc: svc})
	mux.Handle("PUT /articles/{id}", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /articles/{id}", DeleteHandler{Svc: svc})

	mux.Handle("PUT /articles/{id}/status", StatusHandler{Svc: svc})
	mux.Handle("POST /articles/{id}/schedule", ScheduleHandler{Svc: svc})
}
