// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article, along with
// their validation rules and domain-specific errors.
package entity

import (
	"time"

	"github.com/calebmoores/content-dashboard/internal/utils/text"
)

// Article represents one piece of content managed by the dashboard.
// The ID doubles as the on-disk file name (without extension) for the
// markdown-backed store, so it is validated as a slug at construction.
type Article struct {
	ID      string
	Title   string
	Content string

	Status Status

	// TargetPublishDate is set while the article is Scheduled and kept
	// as a historical record once it is Published. It is never set for
	// Draft or Review articles.
	TargetPublishDate *time.Time

	// ReminderOffset is only meaningful while TargetPublishDate is set.
	ReminderOffset ReminderOffset

	// WordGoal is a presentational writing target. Zero means unset.
	WordGoal int

	// Sources lists reference URLs or notes attached while researching
	// the piece. Free-form, never interpreted.
	Sources []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewArticle constructs a Draft article with the given slug, title and body.
// Returns a ValidationError if the slug is malformed or the title is empty.
func NewArticle(id, title, content string) (*Article, error) {
	if err := ValidateSlug(id); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, &ValidationError{Field: "title", Message: "is required"}
	}

	now := time.Now()
	return &Article{
		ID:             id,
		Title:          title,
		Content:        content,
		Status:         StatusDraft,
		ReminderOffset: ReminderNone,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Validate checks the structural invariants of an article record.
// It is used by the persistence adapters when loading untrusted data.
func (a *Article) Validate() error {
	if err := ValidateSlug(a.ID); err != nil {
		return err
	}
	if a.Title == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if !a.Status.Valid() {
		return &ValidationError{Field: "status", Message: "unrecognized value '" + string(a.Status) + "'"}
	}
	if !a.ReminderOffset.Valid() {
		return &ValidationError{Field: "reminder_offset", Message: "unrecognized value '" + string(a.ReminderOffset) + "'"}
	}
	if a.WordGoal < 0 {
		return &ValidationError{Field: "word_goal", Message: "must not be negative"}
	}
	switch a.Status {
	case StatusScheduled:
		if a.TargetPublishDate == nil {
			return &ValidationError{Field: "target_publish_date", Message: "is required while scheduled"}
		}
	case StatusDraft, StatusReview:
		if a.TargetPublishDate != nil {
			return &ValidationError{Field: "target_publish_date", Message: "must not be set while " + string(a.Status)}
		}
	}
	if a.UpdatedAt.Before(a.CreatedAt) {
		return &ValidationError{Field: "updated_at", Message: "must not precede created_at"}
	}
	return nil
}

// WordCount returns the number of whitespace-separated words in the body.
// It is derived on demand and never stored.
func (a *Article) WordCount() int {
	return text.CountWords(a.Content)
}

// Clone returns a deep copy of the article. The workflow engine operates
// on copies so that a failed transition leaves the caller's record untouched.
func (a *Article) Clone() *Article {
	clone := *a
	if a.TargetPublishDate != nil {
		t := *a.TargetPublishDate
		clone.TargetPublishDate = &t
	}
	if a.Sources != nil {
		clone.Sources = append([]string(nil), a.Sources...)
	}
	return &clone
}
