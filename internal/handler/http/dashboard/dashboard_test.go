package dashboard_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/calebmoores/content-dashboard/internal/domain/entity"
	"github.com/calebmoores/content-dashboard/internal/handler/http/dashboard"
	queryUC "github.com/calebmoores/content-dashboard/internal/usecase/query"
	schedUC "github.com/calebmoores/content-dashboard/internal/usecase/schedule"
)

type stubRepo struct {
	articles []*entity.Article
}

func (s *stubRepo) Get(_ context.Context, id string) (*entity.Article, error) {
	for _, a := range s.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}
func (s *stubRepo) List(_ context.Context) ([]*entity.Article, error) {
	return s.articles, nil
}
func (s *stubRepo) Create(_ context.Context, _ *entity.Article) error { return nil }
func (s *stubRepo) Put(_ context.Context, _ *entity.Article) error    { return nil }
func (s *stubRepo) Delete(_ context.Context, _ string) error          { return nil }
func (s *stubRepo) Exists(_ context.Context, _ string) (bool, error)  { return false, nil }

func article(id string, status entity.Status, content string) *entity.Article {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return &entity.Article{
		ID: id, Title: id, Content: content, Status: status,
		ReminderOffset: entity.ReminderNone, CreatedAt: now, UpdatedAt: now,
	}
}

func TestStatsHandler(t *testing.T) {
	repo := &stubRepo{articles: []*entity.Article{
		article("a", entity.StatusDraft, "one two three"),
		article("b", entity.StatusPublished, "four five"),
	}}
	handler := dashboard.StatsHandler{Svc: &queryUC.Service{Repo: repo}}

	req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got dashboard.StatsDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Total != 2 || got.TotalWords != 5 {
		t.Errorf("total = %d words = %d, want 2 and 5", got.Total, got.TotalWords)
	}
	if got.Counts["draft"] != 1 || got.Counts["published"] != 1 {
		t.Errorf("counts = %v", got.Counts)
	}
	if len(got.Counts) != 4 {
		t.Errorf("counts has %d keys, want all 4 statuses present", len(got.Counts))
	}
}

func TestCalendarHandler(t *testing.T) {
	target := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	scheduled := article("sept-post", entity.StatusScheduled, "")
	scheduled.TargetPublishDate = &target

	repo := &stubRepo{articles: []*entity.Article{
		scheduled,
		article("plain", entity.StatusDraft, ""),
	}}
	handler := dashboard.CalendarHandler{Svc: &queryUC.Service{Repo: repo}}

	req := httptest.NewRequest(http.MethodGet, "/dashboard/calendar?year=2026&month=9", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got map[string][]dashboard.CalendarEntryDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	day := got["2026-09-15"]
	if len(day) != 1 || day[0].ID != "sept-post" {
		t.Errorf("calendar = %v", got)
	}
}

func TestCalendarHandler_BadParams(t *testing.T) {
	handler := dashboard.CalendarHandler{Svc: &queryUC.Service{Repo: &stubRepo{}}}

	for _, q := range []string{"month=13", "month=abc", "year=-1", "year=x"} {
		req := httptest.NewRequest(http.MethodGet, "/dashboard/calendar?"+q, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", q, rec.Code)
		}
	}
}

func TestPipelineHandler(t *testing.T) {
	repo := &stubRepo{articles: []*entity.Article{
		article("a", entity.StatusDraft, "body words"),
		article("b", entity.StatusReview, ""),
	}}
	handler := dashboard.PipelineHandler{Svc: &queryUC.Service{Repo: repo}}

	req := httptest.NewRequest(http.MethodGet, "/dashboard/pipeline", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got map[string][]dashboard.PipelineEntryDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Fatalf("pipeline has %d columns, want 4", len(got))
	}
	if len(got["draft"]) != 1 || got["draft"][0].WordCount != 2 {
		t.Errorf("draft column = %v", got["draft"])
	}
	if len(got["scheduled"]) != 0 {
		t.Errorf("empty column must be present and empty, got %v", got["scheduled"])
	}
}

func TestNotificationsHandler(t *testing.T) {
	soon := time.Now().Add(6 * time.Hour)
	scheduled := article("due", entity.StatusScheduled, "")
	scheduled.TargetPublishDate = &soon
	scheduled.ReminderOffset = entity.ReminderOneDay

	repo := &stubRepo{articles: []*entity.Article{
		scheduled,
		article("quiet", entity.StatusDraft, ""),
	}}
	handler := dashboard.NotificationsHandler{Svc: &schedUC.Service{Repo: repo}}

	req := httptest.NewRequest(http.MethodGet, "/dashboard/notifications", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got []dashboard.NotificationDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ArticleID != "due" || got[0].Reminder != "due_soon" {
		t.Errorf("feed = %v", got)
	}
}
