package article

import (
	"errors"
	"net/http"

	"github.com/calebmoores/content-dashboard/internal/domain/entity"
	artUC "github.com/calebmoores/content-dashboard/internal/usecase/article"
	"github.com/calebmoores/content-dashboard/internal/usecase/workflow"
)

// statusCode maps use case errors onto HTTP status codes. Anything not
// recognized here is a storage or programming failure and surfaces as
// 500 (which respond.SafeError then sanitizes).
func statusCode(err error) int {
	var vErr *entity.ValidationError
	switch {
	case errors.Is(err, artUC.ErrArticleNotFound):
		return http.StatusNotFound
	case errors.Is(err, artUC.ErrDuplicateArticle):
		return http.StatusConflict
	case errors.As(err, &vErr),
		errors.Is(err, workflow.ErrInvalidStatus),
		errors.Is(err, workflow.ErrIllegalTransition),
		errors.Is(err, workflow.ErrMissingScheduleDate),
		errors.Is(err, workflow.ErrInvalidDate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
