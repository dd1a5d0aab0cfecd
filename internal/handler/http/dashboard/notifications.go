package dashboard

import (
	"net/http"
	"time"

	"github.com/calebmoores/content-dashboard/internal/handler/http/respond"
	schedUC "github.com/calebmoores/content-dashboard/internal/usecase/schedule"
)

// NotificationDTO is one entry of the reminder feed.
type NotificationDTO struct {
	ArticleID   string    `json:"article_id" example:"q3-roadmap"`
	Title       string    `json:"title" example:"Q3 Roadmap"`
	PublishDate time.Time `json:"publish_date" example:"2026-09-15T09:00:00Z"`
	Reminder    string    `json:"reminder" example:"due_soon"`
}

type NotificationsHandler struct{ Svc *schedUC.Service }

// ServeHTTP returns the current reminder feed. The feed is computed on
// read; nothing is stored or delivered.
func (h NotificationsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	feed, err := h.Svc.Notifications(r.Context(), time.Now())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]NotificationDTO, 0, len(feed))
	for _, n := range feed {
		out = append(out, NotificationDTO{
			ArticleID:   n.ArticleID,
			Title:       n.Title,
			PublishDate: n.PublishDate,
			Reminder:    string(n.Reminder),
		})
	}

	respond.JSON(w, http.StatusOK, out)
}
