// Package suggest provides the HTTP handler for AI writing suggestions.
package suggest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/calebmoores/content-dashboard/internal/handler/http/respond"
	"github.com/calebmoores/content-dashboard/internal/observability/metrics"
	suggestUC "github.com/calebmoores/content-dashboard/internal/usecase/suggest"
)

var errProviderUnavailable = errors.New("suggestion provider unavailable")

// DTO is the suggestion response payload. Headlines is only populated
// for the headlines action.
type DTO struct {
	Action    string   `json:"action" example:"improve"`
	Text      string   `json:"text" example:"A tightened version of the paragraph..."`
	Headlines []string `json:"headlines,omitempty" example:"Three ways to ship faster"`
}

type Handler struct{ Svc *suggestUC.Service }

// ServeHTTP runs one suggestion action over the submitted text.
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Action string `json:"action"`
		Text   string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	action := suggestUC.Action(req.Action)
	out, err := h.Svc.Suggest(r.Context(), action, req.Text)
	if err != nil {
		metrics.RecordSuggestion(req.Action, "error")
		if errors.Is(err, suggestUC.ErrUnknownAction) || errors.Is(err, suggestUC.ErrEmptyText) {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		// Provider details stay in the logs.
		respond.Error(w, http.StatusBadGateway, errProviderUnavailable)
		return
	}

	metrics.RecordSuggestion(req.Action, "ok")
	respond.JSON(w, http.StatusOK, DTO{
		Action:    string(out.Action),
		Text:      out.Text,
		Headlines: out.Headlines,
	})
}
