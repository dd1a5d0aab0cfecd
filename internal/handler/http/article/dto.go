// Package article provides HTTP handlers for article endpoints: CRUD,
// status transitions and scheduling.
package article

import (
	"time"

	"github.com/calebmoores/content-dashboard/internal/domain/entity"
)

// DTO represents the JSON structure for a full article.
type DTO struct {
	ID                string     `json:"id" example:"q3-roadmap"`
	Title             string     `json:"title" example:"Q3 Roadmap"`
	Content           string     `json:"content" example:"# Q3 Roadmap\n\nDraft body..."`
	Status            string     `json:"status" example:"draft"`
	TargetPublishDate *time.Time `json:"target_publish_date,omitempty" example:"2026-09-15T09:00:00Z"`
	ReminderOffset    string     `json:"reminder_offset,omitempty" example:"one_day"`
	WordGoal          int        `json:"word_goal,omitempty" example:"1500"`
	WordCount         int        `json:"word_count" example:"312"`
	Sources           []string   `json:"sources,omitempty" example:"https://example.com/research"`
	CreatedAt         time.Time  `json:"created_at" example:"2026-08-01T12:00:00Z"`
	UpdatedAt         time.Time  `json:"updated_at" example:"2026-08-20T15:30:00Z"`
}

// SummaryDTO is the trimmed listing shape; the body stays out of the
// list payload so large drafts do not bloat it.
type SummaryDTO struct {
	ID                string     `json:"id" example:"q3-roadmap"`
	Title             string     `json:"title" example:"Q3 Roadmap"`
	Status            string     `json:"status" example:"draft"`
	TargetPublishDate *time.Time `json:"target_publish_date,omitempty" example:"2026-09-15T09:00:00Z"`
	WordGoal          int        `json:"word_goal,omitempty" example:"1500"`
	WordCount         int        `json:"word_count" example:"312"`
	UpdatedAt         time.Time  `json:"updated_at" example:"2026-08-20T15:30:00Z"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:                a.ID,
		Title:             a.Title,
		Content:           a.Content,
		Status:            string(a.Status),
		TargetPublishDate: a.TargetPublishDate,
		ReminderOffset:    string(a.ReminderOffset),
		WordGoal:          a.WordGoal,
		WordCount:         a.WordCount(),
		Sources:           a.Sources,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func toSummaryDTO(a *entity.Article) SummaryDTO {
	return SummaryDTO{
		ID:                a.ID,
		Title:             a.Title,
		Status:            string(a.Status),
		TargetPublishDate: a.TargetPublishDate,
		WordGoal:          a.WordGoal,
		WordCount:         a.WordCount(),
		UpdatedAt:         a.UpdatedAt,
	}
}
