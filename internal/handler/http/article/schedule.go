package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/calebmoores/content-dashboard/internal/domain/entity"
	"github.com/calebmoores/content-dashboard/internal/handler/http/pathutil"
	"github.com/calebmoores/content-dashboard/internal/handler/http/respond"
	"github.com/calebmoores/content-dashboard/internal/observability/metrics"
	artUC "github.com/calebmoores/content-dashboard/internal/usecase/article"
)

type ScheduleHandler struct{ Svc *artUC.Service }

// ServeHTTP schedules an article for publication on a given date.
// Sugar over the status transition to Scheduled.
func (h ScheduleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.Slug(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		PublishDate    string `json:"publish_date"`
		ReminderOffset string `json:"reminder_offset"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if req.PublishDate == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("publish_date is required"))
		return
	}

	reminder, err := entity.ParseReminderOffset(req.ReminderOffset)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.Schedule(r.Context(), id, req.PublishDate, reminder)
	if err != nil {
		metrics.RecordTransition(string(entity.StatusScheduled), "rejected")
		respond.SafeError(w, statusCode(err), err)
		return
	}

	metrics.RecordTransition(string(entity.StatusScheduled), "applied")
	respond.JSON(w, http.StatusOK, toDTO(art))
}
