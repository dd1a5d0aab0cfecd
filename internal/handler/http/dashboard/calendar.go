package dashboard

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/calebmoores/content-dashboard/internal/domain/entity"
	"github.com/calebmoores/content-dashboard/internal/handler/http/respond"
	queryUC "github.com/calebmoores/content-dashboard/internal/usecase/query"
)

// CalendarEntryDTO is one article on a calendar day.
type CalendarEntryDTO struct {
	ID                string    `json:"id" example:"q3-roadmap"`
	Title             string    `json:"title" example:"Q3 Roadmap"`
	Status            string    `json:"status" example:"scheduled"`
	TargetPublishDate time.Time `json:"target_publish_date" example:"2026-09-15T09:00:00Z"`
}

type CalendarHandler struct{ Svc *queryUC.Service }

// ServeHTTP returns the calendar buckets for a month. Days without any
// scheduled or published article are absent from the map. The month and
// year query parameters default to the current month.
func (h CalendarHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if raw := r.URL.Query().Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1 {
			respond.SafeError(w, http.StatusBadRequest, errors.New("year must be a positive integer"))
			return
		}
		year = y
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			respond.SafeError(w, http.StatusBadRequest, errors.New("month must be between 1 and 12"))
			return
		}
		month = time.Month(m)
	}

	buckets, err := h.Svc.Calendar(r.Context(), year, month)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make(map[string][]CalendarEntryDTO, len(buckets))
	for day, articles := range buckets {
		entries := make([]CalendarEntryDTO, 0, len(articles))
		for _, a := range articles {
			entries = append(entries, toCalendarEntry(a))
		}
		out[day] = entries
	}

	respond.JSON(w, http.StatusOK, out)
}

func toCalendarEntry(a *entity.Article) CalendarEntryDTO {
	return CalendarEntryDTO{
		ID:                a.ID,
		Title:             a.Title,
		Status:            string(a.Status),
		TargetPublishDate: *a.TargetPublishDate,
	}
}
