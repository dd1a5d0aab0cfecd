package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/calebmoores/content-dashboard/internal/handler/http/pathutil"
	"github.com/calebmoores/content-dashboard/internal/handler/http/respond"
	artUC "github.com/calebmoores/content-dashboard/internal/usecase/article"
)

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP updates the title, content, word goal or sources of an article.
// Absent fields are left untouched, so the body uses pointers to tell
// "not sent" apart from "set to zero".
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.Slug(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Title    *string  `json:"title"`
		Content  *string  `json:"content"`
		WordGoal *int     `json:"word_goal"`
		Sources  []string `json:"sources"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if req.Title == nil && req.Content == nil && req.WordGoal == nil && req.Sources == nil {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("at least one of title, content, word_goal, sources is required"))
		return
	}

	art, err := h.Svc.Update(r.Context(), artUC.UpdateInput{
		ID:       id,
		Title:    req.Title,
		Content:  req.Content,
		WordGoal: req.WordGoal,
		Sources:  req.Sources,
	})
	if err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(art))
}
