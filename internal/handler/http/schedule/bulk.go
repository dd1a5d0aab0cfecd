// Package schedule provides HTTP handlers for batch scheduling.
package schedule

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/calebmoores/content-dashboard/internal/domain/entity"
	"github.com/calebmoores/content-dashboard/internal/handler/http/respond"
	schedUC "github.com/calebmoores/content-dashboard/internal/usecase/schedule"
	"github.com/calebmoores/content-dashboard/internal/usecase/workflow"
)

// BulkResultDTO reports the outcome for one article of a bulk run.
type BulkResultDTO struct {
	ID          string    `json:"id" example:"q3-roadmap"`
	PublishDate time.Time `json:"publish_date" example:"2026-09-15T09:00:00Z"`
	Scheduled   bool      `json:"scheduled" example:"true"`
	Error       string    `json:"error,omitempty" example:"article not found"`
}

type BulkHandler struct{ Svc *schedUC.Service }

// ServeHTTP assigns evenly spaced publish slots to a batch of articles.
// The response always carries one result per requested ID; partial
// failure is normal and does not fail the whole request.
func (h BulkHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs          []string `json:"ids"`
		StartDate    string   `json:"start_date"`
		IntervalDays int      `json:"interval_days"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if req.StartDate == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("start_date is required"))
		return
	}
	if req.IntervalDays == 0 {
		req.IntervalDays = 1
	}

	results, err := h.Svc.BulkSchedule(r.Context(), req.IDs, req.StartDate, req.IntervalDays)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	out := make([]BulkResultDTO, 0, len(results))
	for _, res := range results {
		dto := BulkResultDTO{
			ID:          res.ID,
			PublishDate: res.PublishDate,
			Scheduled:   res.Err == nil,
		}
		if res.Err != nil {
			dto.Error = entryError(res.Err)
		}
		out = append(out, dto)
	}

	respond.JSON(w, http.StatusOK, out)
}

// entryError renders a per-entry failure for the client. Workflow and
// not-found errors are shown verbatim; storage failures are masked the
// same way respond.SafeError masks them.
func entryError(err error) string {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return "article not found"
	case errors.Is(err, workflow.ErrIllegalTransition),
		errors.Is(err, workflow.ErrInvalidDate),
		errors.Is(err, workflow.ErrMissingScheduleDate):
		return err.Error()
	default:
		return "internal error"
	}
}

// Register registers the bulk scheduling route with the given mux.
func Register(mux *http.ServeMux, svc *schedUC.Service) {
	mux.Handle("POST /schedule/bulk", BulkHandler{Svc: svc})
}
