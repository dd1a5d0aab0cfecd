package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/calebmoores/content-dashboard/internal/handler/http/respond"
	artUC "github.com/calebmoores/content-dashboard/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP creates a new draft article.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID       string   `json:"id"`
		Title    string   `json:"title"`
		Content  string   `json:"content"`
		WordGoal int      `json:"word_goal"`
		Sources  []string `json:"sources"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if req.ID == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("id is required"))
		return
	}

	art, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		ID:       req.ID,
		Title:    req.Title,
		Content:  req.Content,
		WordGoal: req.WordGoal,
		Sources:  req.Sources,
	})
	if err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(art))
}
