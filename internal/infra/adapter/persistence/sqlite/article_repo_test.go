package sqlite_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"github.com/calebmoores/content-dashboard/internal/domain/entity"
	"github.com/calebmoores/content-dashboard/internal/infra/adapter/persistence/sqlite"
)

var articleColumns = []string{
	"id", "title", "content", "status", "target_publish_date",
	"reminder_offset", "word_goal", "sources", "created_at", "updated_at",
}

func newMock(t *testing.T) (*sqlite.ArticleRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return sqlite.NewArticleRepo(db), mock
}

func sampleArticle() *entity.Article {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return &entity.Article{
		ID:             "post",
		Title:          "Post",
		Content:        "# Post\n\nbody",
		Status:         entity.StatusDraft,
		ReminderOffset: entity.ReminderNone,
		WordGoal:       300,
		CreatedAt:      created,
		UpdatedAt:      created,
	}
}

func TestGet(t *testing.T) {
	repo, mock := newMock(t)
	want := sampleArticle()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, content, status, target_publish_date, reminder_offset, word_goal, sources, created_at, updated_at FROM articles WHERE id = ?`)).
		WithArgs("post").
		WillReturnRows(sqlmock.NewRows(articleColumns).AddRow(
			want.ID, want.Title, want.Content, string(want.Status), nil,
			string(want.ReminderOffset), want.WordGoal, "[]", want.CreatedAt, want.UpdatedAt,
		))

	got, err := repo.Get(context.Background(), "post")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("article mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestGet_NoRows(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM articles WHERE id = \?`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(articleColumns))

	got, err := repo.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get on empty result must not error: %v", err)
	}
	if got != nil {
		t.Fatalf("Get on empty result = %+v, want nil", got)
	}
}

func TestGet_ScheduledDate(t *testing.T) {
	repo, mock := newMock(t)
	target := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM articles WHERE id = \?`).
		WithArgs("sched").
		WillReturnRows(sqlmock.NewRows(articleColumns).AddRow(
			"sched", "Sched", "", "scheduled", target,
			"one_day", 0, "[]", target.AddDate(0, 0, -30), target.AddDate(0, 0, -1),
		))

	got, err := repo.Get(context.Background(), "sched")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.TargetPublishDate == nil || !got.TargetPublishDate.Equal(target) {
		t.Errorf("target date = %v, want %v", got.TargetPublishDate, target)
	}
	if got.ReminderOffset != entity.ReminderOneDay {
		t.Errorf("reminder = %q", got.ReminderOffset)
	}
}

func TestGet_Sources(t *testing.T) {
	repo, mock := newMock(t)
	a := sampleArticle()

	mock.ExpectQuery(`SELECT .+ FROM articles WHERE id = \?`).
		WithArgs("post").
		WillReturnRows(sqlmock.NewRows(articleColumns).AddRow(
			a.ID, a.Title, a.Content, "draft", nil,
			"none", 0, `["https://example.com/research","notes.txt"]`, a.CreatedAt, a.UpdatedAt,
		))

	got, err := repo.Get(context.Background(), "post")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	want := []string{"https://example.com/research", "notes.txt"}
	if diff := cmp.Diff(want, got.Sources); diff != "" {
		t.Errorf("sources mismatch (-want +got):\n%s", diff)
	}
}

func TestGet_RejectsUnknownStatus(t *testing.T) {
	repo, mock := newMock(t)
	a := sampleArticle()

	mock.ExpectQuery(`SELECT .+ FROM articles WHERE id = \?`).
		WithArgs("post").
		WillReturnRows(sqlmock.NewRows(articleColumns).AddRow(
			a.ID, a.Title, a.Content, "archived", nil,
			"none", 0, "[]", a.CreatedAt, a.UpdatedAt,
		))

	_, err := repo.Get(context.Background(), "post")
	var verr *entity.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError for unknown status, got %v", err)
	}
}

func TestGet_RejectsDraftWithDate(t *testing.T) {
	repo, mock := newMock(t)
	a := sampleArticle()
	target := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM articles WHERE id = \?`).
		WithArgs("post").
		WillReturnRows(sqlmock.NewRows(articleColumns).AddRow(
			a.ID, a.Title, a.Content, "draft", target,
			"none", 0, "[]", a.CreatedAt, a.UpdatedAt,
		))

	_, err := repo.Get(context.Background(), "post")
	var verr *entity.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError for draft with publish date, got %v", err)
	}
}

func TestList(t *testing.T) {
	repo, mock := newMock(t)
	a := sampleArticle()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, content, status, target_publish_date, reminder_offset, word_goal, sources, created_at, updated_at FROM articles ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows(articleColumns).
			AddRow("alpha", a.Title, a.Content, "draft", nil, "none", 0, "[]", a.CreatedAt, a.UpdatedAt).
			AddRow("beta", a.Title, a.Content, "review", nil, "none", 0, "[]", a.CreatedAt, a.UpdatedAt))

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "alpha" || got[1].ID != "beta" {
		t.Errorf("List = %v", got)
	}
}

func TestCreate(t *testing.T) {
	repo, mock := newMock(t)
	a := sampleArticle()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM articles WHERE id = ?)`)).
		WithArgs(a.ID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(`INSERT INTO articles`).
		WithArgs(a.ID, a.Title, a.Content, "draft", nil, "none", a.WordGoal, "[]", a.CreatedAt, a.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreate_Conflict(t *testing.T) {
	repo, mock := newMock(t)
	a := sampleArticle()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM articles WHERE id = ?)`)).
		WithArgs(a.ID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err := repo.Create(context.Background(), a)
	if !errors.Is(err, entity.ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}

func TestPut(t *testing.T) {
	repo, mock := newMock(t)
	a := sampleArticle()
	target := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	a.Status = entity.StatusScheduled
	a.TargetPublishDate = &target
	a.ReminderOffset = entity.ReminderOneWeek
	a.Sources = []string{"https://example.com/research"}

	mock.ExpectExec(`INSERT INTO articles .+ ON CONFLICT\(id\) DO UPDATE SET`).
		WithArgs(a.ID, a.Title, a.Content, "scheduled", target.UTC(),
			"one_week", a.WordGoal, `["https://example.com/research"]`, a.CreatedAt, a.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Put(context.Background(), a); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestDelete(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM articles WHERE id = ?`)).
		WithArgs("post").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "post"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM articles WHERE id = ?`)).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestExists(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM articles WHERE id = ?)`)).
		WithArgs("post").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Exists(context.Background(), "post")
	if err != nil || !ok {
		t.Fatalf("Exists = %v, %v, want true", ok, err)
	}
}
