package query_test

import (
	"testing"
	"time"

	"github.com/calebmoores/content-dashboard/internal/domain/entity"
	"github.com/calebmoores/content-dashboard/internal/usecase/query"
)

func article(id string, status entity.Status, words int) *entity.Article {
	content := ""
	for i := 0; i < words; i++ {
		content += "word "
	}
	return &entity.Article{ID: id, Title: id, Content: content, Status: status}
}

func scheduledOn(id string, target time.Time) *entity.Article {
	a := article(id, entity.StatusScheduled, 1)
	a.TargetPublishDate = &target
	return a
}

func TestCountsByStatus(t *testing.T) {
	counts := query.CountsByStatus([]*entity.Article{
		article("a", entity.StatusDraft, 1),
		article("b", entity.StatusDraft, 1),
		article("c", entity.StatusPublished, 1),
	})

	want := map[entity.Status]int{
		entity.StatusDraft:     2,
		entity.StatusReview:    0,
		entity.StatusScheduled: 0,
		entity.StatusPublished: 1,
	}
	if len(counts) != len(want) {
		t.Fatalf("counts has %d keys, want %d (every status always present)", len(counts), len(want))
	}
	for st, n := range want {
		if counts[st] != n {
			t.Errorf("counts[%s] = %d, want %d", st, counts[st], n)
		}
	}
}

func TestCountsByStatus_Empty(t *testing.T) {
	counts := query.CountsByStatus(nil)
	for _, st := range entity.StatusOrder {
		if n, ok := counts[st]; !ok || n != 0 {
			t.Errorf("counts[%s] = %d/%v, want present and zero", st, n, ok)
		}
	}
}

func TestTotalWords(t *testing.T) {
	got := query.TotalWords([]*entity.Article{
		article("a", entity.StatusDraft, 10),
		article("b", entity.StatusReview, 5),
		article("c", entity.StatusDraft, 0),
	})
	if got != 15 {
		t.Errorf("TotalWords = %d, want 15", got)
	}
}

func TestCalendarBuckets(t *testing.T) {
	sep15morning := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	sep15noon := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	sep20 := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	oct1 := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	articles := []*entity.Article{
		scheduledOn("later", sep15noon),
		scheduledOn("early", sep15morning),
		scheduledOn("other-day", sep20),
		scheduledOn("next-month", oct1),
		article("no-date", entity.StatusDraft, 1),
	}

	buckets := query.CalendarBuckets(articles, 2026, time.September)

	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2: %v", len(buckets), buckets)
	}

	day := buckets["2026-09-15"]
	if len(day) != 2 {
		t.Fatalf("2026-09-15 has %d entries, want 2", len(day))
	}
	if day[0].ID != "early" || day[1].ID != "later" {
		t.Errorf("within-day order = [%s %s], want time ascending", day[0].ID, day[1].ID)
	}

	if len(buckets["2026-09-20"]) != 1 {
		t.Errorf("2026-09-20 missing")
	}
}

func TestCalendarBuckets_TieBreakByID(t *testing.T) {
	target := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	buckets := query.CalendarBuckets([]*entity.Article{
		scheduledOn("zeta", target),
		scheduledOn("alpha", target),
	}, 2026, time.September)

	day := buckets["2026-09-15"]
	if len(day) != 2 || day[0].ID != "alpha" || day[1].ID != "zeta" {
		t.Errorf("equal-time entries must sort by ID ascending, got %v", ids(day))
	}
}

func TestPipelineGroups(t *testing.T) {
	old := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	a := article("old-draft", entity.StatusDraft, 1)
	a.UpdatedAt = old
	b := article("new-draft", entity.StatusDraft, 1)
	b.UpdatedAt = recent
	c := article("rogue", "archived", 1)

	groups := query.PipelineGroups([]*entity.Article{a, b, c})

	if len(groups) != 4 {
		t.Fatalf("got %d groups, want the 4 fixed buckets", len(groups))
	}
	for _, st := range entity.StatusOrder {
		if _, ok := groups[st]; !ok {
			t.Errorf("bucket %s missing", st)
		}
	}

	drafts := groups[entity.StatusDraft]
	if len(drafts) != 2 || drafts[0].ID != "new-draft" {
		t.Errorf("drafts must order most recently updated first, got %v", ids(drafts))
	}

	total := 0
	for _, g := range groups {
		total += len(g)
	}
	if total != 2 {
		t.Errorf("unknown-status record must be dropped, grouped %d articles", total)
	}
}

func ids(articles []*entity.Article) []string {
	out := make([]string, len(articles))
	for i, a := range articles {
		out[i] = a.ID
	}
	return out
}
