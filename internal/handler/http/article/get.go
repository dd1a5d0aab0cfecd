package article

import (
	"net/http"

	"github.com/calebmoores/content-dashboard/internal/handler/http/pathutil"
	"github.com/calebmoores/content-dashboard/internal/handler/http/respond"
	artUC "github.com/calebmoores/content-dashboard/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP returns the full article for the given ID.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.Slug(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(art))
}
