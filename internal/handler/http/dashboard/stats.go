// Package dashboard provides HTTP handlers for the read-only dashboard
// views: stats, calendar, pipeline and the reminder feed.
package dashboard

import (
	"net/http"

	"github.com/calebmoores/content-dashboard/internal/handler/http/respond"
	"github.com/calebmoores/content-dashboard/internal/observability/metrics"
	queryUC "github.com/calebmoores/content-dashboard/internal/usecase/query"
)

// StatsDTO is the analytics summary payload.
type StatsDTO struct {
	Counts     map[string]int `json:"counts"`
	TotalWords int            `json:"total_words" example:"10423"`
	Total      int            `json:"total" example:"17"`
}

type StatsHandler struct{ Svc *queryUC.Service }

// ServeHTTP returns status counts and word totals over all articles.
// The per-status gauge is refreshed as a side effect, so scraping
// /metrics after a stats request always reflects the latest store state.
func (h StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Stats(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	counts := make(map[string]int, len(stats.Counts))
	for st, n := range stats.Counts {
		counts[string(st)] = n
	}
	metrics.UpdateArticleCounts(counts)

	respond.JSON(w, http.StatusOK, StatsDTO{
		Counts:     counts,
		TotalWords: stats.TotalWords,
		Total:      stats.Total,
	})
}
