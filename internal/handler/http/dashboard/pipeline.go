package dashboard

import (
	"net/http"
	"time"

	"github.com/calebmoores/content-dashboard/internal/domain/entity"
	"github.com/calebmoores/content-dashboard/internal/handler/http/respond"
	queryUC "github.com/calebmoores/content-dashboard/internal/usecase/query"
)

// PipelineEntryDTO is one card on the pipeline board.
type PipelineEntryDTO struct {
	ID                string     `json:"id" example:"q3-roadmap"`
	Title             string     `json:"title" example:"Q3 Roadmap"`
	WordCount         int        `json:"word_count" example:"312"`
	WordGoal          int        `json:"word_goal,omitempty" example:"1500"`
	TargetPublishDate *time.Time `json:"target_publish_date,omitempty" example:"2026-09-15T09:00:00Z"`
	UpdatedAt         time.Time  `json:"updated_at" example:"2026-08-20T15:30:00Z"`
}

type PipelineHandler struct{ Svc *queryUC.Service }

// ServeHTTP returns the pipeline board: one column per workflow status,
// every column present even when empty.
func (h PipelineHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	groups, err := h.Svc.Pipeline(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make(map[string][]PipelineEntryDTO, len(groups))
	for st, articles := range groups {
		entries := make([]PipelineEntryDTO, 0, len(articles))
		for _, a := range articles {
			entries = append(entries, toPipelineEntry(a))
		}
		out[string(st)] = entries
	}

	respond.JSON(w, http.StatusOK, out)
}

func toPipelineEntry(a *entity.Article) PipelineEntryDTO {
	return PipelineEntryDTO{
		ID:                a.ID,
		Title:             a.Title,
		WordCount:         a.WordCount(),
		WordGoal:          a.WordGoal,
		TargetPublishDate: a.TargetPublishDate,
		UpdatedAt:         a.UpdatedAt,
	}
}
