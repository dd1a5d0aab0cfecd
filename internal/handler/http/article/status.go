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
	"github.com/calebmoores/content-dashboard/internal/usecase/workflow"
)

type StatusHandler struct{ Svc *artUC.Service }

// ServeHTTP transitions an article to a new workflow status. Moving to
// Scheduled requires publish_date; reminder_offset is optional and only
// meaningful for that move.
func (h StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.Slug(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Status         string `json:"status"`
		PublishDate    string `json:"publish_date"`
		ReminderOffset string `json:"reminder_offset"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	target, err := entity.ParseStatus(req.Status)
	if err != nil {
		metrics.RecordTransition(req.Status, "rejected")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	reminder, err := entity.ParseReminderOffset(req.ReminderOffset)
	if err != nil {
		metrics.RecordTransition(string(target), "rejected")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.Transition(r.Context(), id, target, workflow.Options{
		PublishDate:    req.PublishDate,
		ReminderOffset: reminder,
	})
	if err != nil {
		metrics.RecordTransition(string(target), "rejected")
		respond.SafeError(w, statusCode(err), err)
		return
	}

	metrics.RecordTransition(string(target), "applied")
	respond.JSON(w, http.StatusOK, toDTO(art))
}
