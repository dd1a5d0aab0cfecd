// Package schedule provides the calendar-side use cases: bulk scheduling
// of a batch of articles, the pull-based reminder feed, and auto-publish
// of scheduled articles whose date has arrived. All status changes go
// through the workflow engine; this package never bypasses it.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/calebmoores/content-dashboard/internal/domain/entity"
	"github.com/calebmoores/content-dashboard/internal/repository"
	"github.com/calebmoores/content-dashboard/internal/usecase/workflow"
)

// Sentinel errors for schedule use case operations.
var (
	// ErrNoArticles indicates a bulk schedule request without any IDs.
	ErrNoArticles = errors.New("at least one article id is required")

	// ErrInvalidInterval indicates a non-positive interval between slots.
	ErrInvalidInterval = errors.New("interval days must be positive")
)

// Service provides scheduling use cases over the article repository.
type Service struct {
	Repo   repository.ArticleRepository
	Logger *slog.Logger
}

// BulkResult reports the outcome of one article in a bulk schedule run.
// Err is nil on success.
type BulkResult struct {
	ID          string
	PublishDate time.Time
	Err         error
}

// BulkSchedule assigns publish slots to the given articles in order,
// starting at startDate and stepping intervalDays between slots. Each
// article goes through the workflow schedule operation, so articles that
// are already Scheduled just move to their new slot; a failure for one
// ID is recorded in its result and does not abort the rest of the batch.
func (s *Service) BulkSchedule(ctx context.Context, ids []string, startDate string, intervalDays int) ([]BulkResult, error) {
	if len(ids) == 0 {
		return nil, ErrNoArticles
	}
	if intervalDays <= 0 {
		return nil, ErrInvalidInterval
	}
	start, err := workflow.ParsePublishDate(startDate)
	if err != nil {
		return nil, err
	}

	results := make([]BulkResult, 0, len(ids))
	for i, id := range ids {
		slot := start.AddDate(0, 0, i*intervalDays)
		result := BulkResult{ID: id, PublishDate: slot}

		result.Err = s.scheduleOne(ctx, id, slot)
		results = append(results, result)
	}
	return results, nil
}

func (s *Service) scheduleOne(ctx context.Context, id string, slot time.Time) error {
	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return entity.ErrNotFound
	}

	out, err := workflow.Schedule(art, workflow.Options{
		PublishDate:    slot.Format(time.RFC3339),
		ReminderOffset: entity.ReminderNone,
	})
	if err != nil {
		return err
	}
	if err := s.Repo.Put(ctx, out); err != nil {
		return fmt.Errorf("persist schedule: %w", err)
	}
	return nil
}

// Notification is one entry of the reminder feed. Reminders are advisory
// and pull-based; nothing is delivered anywhere.
type Notification struct {
	ArticleID   string
	Title       string
	PublishDate time.Time
	Reminder    workflow.ReminderStatus
}

// Notifications computes the reminder feed at the given instant: every
// scheduled article whose reminder window has opened or whose publish
// date has arrived. Sorted by publish date ascending, then ID.
func (s *Service) Notifications(ctx context.Context, now time.Time) ([]Notification, error) {
	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	feed := make([]Notification, 0)
	for _, a := range articles {
		switch workflow.ComputeReminder(a, now) {
		case workflow.DueSoon, workflow.DueNow:
			feed = append(feed, Notification{
				ArticleID:   a.ID,
				Title:       a.Title,
				PublishDate: *a.TargetPublishDate,
				Reminder:    workflow.ComputeReminder(a, now),
			})
		}
	}

	sort.Slice(feed, func(i, j int) bool {
		if !feed[i].PublishDate.Equal(feed[j].PublishDate) {
			return feed[i].PublishDate.Before(feed[j].PublishDate)
		}
		return feed[i].ArticleID < feed[j].ArticleID
	})
	return feed, nil
}

// PublishDue transitions every Scheduled article whose target publish
// date is at or before now to Published, and returns how many were
// published. Failures on individual articles are logged and skipped so
// one bad record cannot wedge the whole run; the worker retries on its
// next tick anyway.
func (s *Service) PublishDue(ctx context.Context, now time.Time) (int, error) {
	articles, err := s.Repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list articles: %w", err)
	}

	published := 0
	for _, a := range articles {
		if a.Status != entity.StatusScheduled || a.TargetPublishDate == nil {
			continue
		}
		if a.TargetPublishDate.After(now) {
			continue
		}

		out, err := workflow.TransitionAt(a, entity.StatusPublished, workflow.Options{}, now)
		if err != nil {
			s.log().Warn("auto-publish transition failed",
				slog.String("article_id", a.ID),
				slog.Any("error", err))
			continue
		}
		if err := s.Repo.Put(ctx, out); err != nil {
			s.log().Warn("auto-publish persist failed",
				slog.String("article_id", a.ID),
				slog.Any("error", err))
			continue
		}
		published++
	}
	return published, nil
}

func (s *Service) log() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
