package article

import (
	"net/http"

	"github.com/calebmoores/content-dashboard/internal/handler/http/pathutil"
	"github.com/calebmoores/content-dashboard/internal/handler/http/respond"
	artUC "github.com/calebmoores/content-dashboard/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP removes an article.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.Slug(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.SafeError(w, statusCode(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
