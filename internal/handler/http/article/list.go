package article

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/calebmoores/content-dashboard/internal/handler/http/requestid"
	"github.com/calebmoores/content-dashboard/internal/handler/http/respond"
	"github.com/calebmoores/content-dashboard/internal/observability/logging"
	artUC "github.com/calebmoores/content-dashboard/internal/usecase/article"
)

type ListHandler struct {
	Svc    *artUC.Service
	Logger *slog.Logger
}

// ServeHTTP returns the summary listing for the dashboard overview.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	reqID := requestid.FromContext(ctx)
	base := h.Logger
	if base == nil {
		base = slog.Default()
	}
	logger := logging.WithRequestID(ctx, base)

	articles, err := h.Svc.List(ctx)
	if err != nil {
		logger.Error("failed to list articles",
			"error", err.Error(),
			"request_id", reqID)
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]SummaryDTO, 0, len(articles))
	for _, a := range articles {
		dtos = append(dtos, toSummaryDTO(a))
	}

	logger.Info("article list",
		"count", len(dtos),
		"duration_ms", time.Since(startTime).Milliseconds(),
		"request_id", reqID)

	respond.JSON(w, http.StatusOK, dtos)
}
