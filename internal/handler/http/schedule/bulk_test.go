package schedule_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/calebmoores/content-dashboard/internal/domain/entity"
	"github.com/calebmoores/content-dashboard/internal/handler/http/schedule"
	schedUC "github.com/calebmoores/content-dashboard/internal/usecase/schedule"
)

type stubRepo struct {
	data map[string]*entity.Article
}

func newStub(articles ...*entity.Article) *stubRepo {
	s := &stubRepo{data: map[string]*entity.Article{}}
	for _, a := range articles {
		s.data[a.ID] = a
	}
	return s
}

func (s *stubRepo) Get(_ context.Context, id string) (*entity.Article, error) {
	return s.data[id], nil
}
func (s *stubRepo) List(_ context.Context) ([]*entity.Article, error) {
	out := make([]*entity.Article, 0, len(s.data))
	for _, a := range s.data {
		out = append(out, a)
	}
	return out, nil
}
func (s *stubRepo) Create(_ context.Context, a *entity.Article) error {
	s.data[a.ID] = a
	return nil
}
func (s *stubRepo) Put(_ context.Context, a *entity.Article) error {
	s.data[a.ID] = a
	return nil
}
func (s *stubRepo) Delete(_ context.Context, id string) error {
	delete(s.data, id)
	return nil
}
func (s *stubRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := s.data[id]
	return ok, nil
}

func draft(id string) *entity.Article {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return &entity.Article{
		ID: id, Title: id, Status: entity.StatusDraft,
		ReminderOffset: entity.ReminderNone, CreatedAt: now, UpdatedAt: now,
	}
}

func TestBulkHandler(t *testing.T) {
	stub := newStub(draft("one"), draft("two"))
	handler := schedule.BulkHandler{Svc: &schedUC.Service{Repo: stub}}

	start := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	body := fmt.Sprintf(`{"ids": ["one", "missing", "two"], "start_date": %q, "interval_days": 3}`, start)
	req := httptest.NewRequest(http.MethodPost, "/schedule/bulk", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var results []schedule.BulkResultDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &results); err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want one per ID", len(results))
	}
	if !results[0].Scheduled || !results[2].Scheduled {
		t.Errorf("existing articles should schedule: %+v", results)
	}
	if results[1].Scheduled || results[1].Error != "article not found" {
		t.Errorf("missing article: %+v", results[1])
	}

	if stub.data["one"].Status != entity.StatusScheduled {
		t.Error("'one' not scheduled in the store")
	}
}

func TestBulkHandler_BadRequest(t *testing.T) {
	handler := schedule.BulkHandler{Svc: &schedUC.Service{Repo: newStub()}}

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"ids": `},
		{"no start date", `{"ids": ["a"]}`},
		{"no ids", `{"ids": [], "start_date": "2030-01-01"}`},
		{"bad date", `{"ids": ["a"], "start_date": "someday"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/schedule/bulk", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestBulkHandler_DefaultInterval(t *testing.T) {
	stub := newStub(draft("a"), draft("b"))
	handler := schedule.BulkHandler{Svc: &schedUC.Service{Repo: stub}}

	start := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	body := fmt.Sprintf(`{"ids": ["a", "b"], "start_date": %q}`, start)
	req := httptest.NewRequest(http.MethodPost, "/schedule/bulk", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with interval defaulted; body: %s", rec.Code, rec.Body.String())
	}

	var results []schedule.BulkResultDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &results); err != nil {
		t.Fatal(err)
	}
	if !results[1].PublishDate.Equal(results[0].PublishDate.AddDate(0, 0, 1)) {
		t.Errorf("slots %v and %v, want one calendar day apart",
			results[0].PublishDate, results[1].PublishDate)
	}
}
