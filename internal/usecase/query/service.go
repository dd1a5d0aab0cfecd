// Package query derives read-only dashboard aggregates from the article
// store: status counts, word totals, calendar buckets and pipeline groups.
// The aggregation functions are pure; Service merely pairs them with a
// repository for the HTTP layer.
package query

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/calebmoores/content-dashboard/internal/domain/entity"
	"github.com/calebmoores/content-dashboard/internal/repository"
)

// Service provides dashboard query use cases over the article repository.
type Service struct {
	Repo repository.ArticleRepository
}

// Stats summarizes the whole store for the analytics view.
type Stats struct {
	Counts     map[entity.Status]int
	TotalWords int
	Total      int
}

// Stats returns status counts and word totals over all articles.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return &Stats{
		Counts:     CountsByStatus(articles),
		TotalWords: TotalWords(articles),
		Total:      len(articles),
	}, nil
}

// Calendar returns the calendar buckets for the given month.
func (s *Service) Calendar(ctx context.Context, year int, month time.Month) (map[string][]*entity.Article, error) {
	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return CalendarBuckets(articles, year, month), nil
}

// Pipeline returns the pipeline groups over all articles.
func (s *Service) Pipeline(ctx context.Context) (map[entity.Status][]*entity.Article, error) {
	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return PipelineGroups(articles), nil
}

// CountsByStatus tallies articles per workflow state. Every enumerated
// status is present in the result, zero-valued when empty, so the
// dashboard renders a stable set of tiles.
func CountsByStatus(articles []*entity.Article) map[entity.Status]int {
	counts := make(map[entity.Status]int, len(entity.StatusOrder))
	for _, st := range entity.StatusOrder {
		counts[st] = 0
	}
	for _, a := range articles {
		if _, ok := counts[a.Status]; ok {
			counts[a.Status]++
		}
	}
	return counts
}

// TotalWords sums the derived word counts of all articles.
func TotalWords(articles []*entity.Article) int {
	total := 0
	for _, a := range articles {
		total += a.WordCount()
	}
	return total
}

// CalendarBuckets groups articles whose target publish date falls in the
// given month by calendar day, keyed "YYYY-MM-DD". Articles without a
// target date are excluded. Within a day the order is target date
// ascending, then ID ascending as a deterministic tie-break.
func CalendarBuckets(articles []*entity.Article, year int, month time.Month) map[string][]*entity.Article {
	buckets := make(map[string][]*entity.Article)
	for _, a := range articles {
		if a.TargetPublishDate == nil {
			continue
		}
		t := *a.TargetPublishDate
		if t.Year() != year || t.Month() != month {
			continue
		}
		day := t.Format("2006-01-02")
		buckets[day] = append(buckets[day], a)
	}

	for _, bucket := range buckets {
		sort.Slice(bucket, func(i, j int) bool {
			ti, tj := *bucket[i].TargetPublishDate, *bucket[j].TargetPublishDate
			if !ti.Equal(tj) {
				return ti.Before(tj)
			}
			return bucket[i].ID < bucket[j].ID
		})
	}
	return buckets
}

// PipelineGroups groups articles into the four fixed workflow buckets.
// Every status maps to a slice (possibly empty); within a bucket articles
// are ordered by UpdatedAt descending, most recently touched first.
// Records carrying an unrecognized status are dropped rather than
// invented into a fifth bucket.
func PipelineGroups(articles []*entity.Article) map[entity.Status][]*entity.Article {
	groups := make(map[entity.Status][]*entity.Article, len(entity.StatusOrder))
	for _, st := range entity.StatusOrder {
		groups[st] = []*entity.Article{}
	}
	for _, a := range articles {
		if _, ok := groups[a.Status]; ok {
			groups[a.Status] = append(groups[a.Status], a)
		}
	}

	for _, group := range groups {
		sort.Slice(group, func(i, j int) bool {
			if !group[i].UpdatedAt.Equal(group[j].UpdatedAt) {
				return group[i].UpdatedAt.After(group[j].UpdatedAt)
			}
			return group[i].ID < group[j].ID
		})
	}
	return groups
}
