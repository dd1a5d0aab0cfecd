// Package sqlite provides the sqlite implementation of the article
// repository. It mirrors the markdown store's semantics over a single
// articles table for deployments that want queryable storage.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/calebmoores/content-dashboard/internal/domain/entity"
	"github.com/calebmoores/content-dashboard/internal/repository"
)

// ArticleRepo implements the ArticleRepository interface using sqlite.
type ArticleRepo struct{ db *sql.DB }

// NewArticleRepo creates a new sqlite-backed article repository.
func NewArticleRepo(db *sql.DB) *ArticleRepo {
	return &ArticleRepo{db: db}
}

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// Ping verifies database connectivity for health checks.
func (r *ArticleRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

const articleColumns = `id, title, content, status, target_publish_date, reminder_offset, word_goal, sources, created_at, updated_at`

// scanArticle reads one row into an entity and validates it, so a row
// edited outside the application (bad status, a draft with a publish
// date) surfaces as an error instead of leaking into the dashboard.
func scanArticle(scan func(dest ...any) error) (*entity.Article, error) {
	var (
		art      entity.Article
		status   string
		reminder string
		target   sql.NullTime
		sources  string
	)
	err := scan(&art.ID, &art.Title, &art.Content, &status, &target,
		&reminder, &art.WordGoal, &sources, &art.CreatedAt, &art.UpdatedAt)
	if err != nil {
		return nil, err
	}

	art.Status = entity.Status(status)
	art.ReminderOffset = entity.ReminderOffset(reminder)
	if target.Valid {
		t := target.Time
		art.TargetPublishDate = &t
	}
	if sources != "" && sources != "[]" {
		if err := json.Unmarshal([]byte(sources), &art.Sources); err != nil {
			return nil, fmt.Errorf("decode sources: %w", err)
		}
	}
	if err := art.Validate(); err != nil {
		return nil, fmt.Errorf("invalid row %s: %w", art.ID, err)
	}
	return &art, nil
}

func targetArg(a *entity.Article) any {
	if a.TargetPublishDate == nil {
		return nil
	}
	return a.TargetPublishDate.UTC()
}

func sourcesArg(a *entity.Article) string {
	if len(a.Sources) == 0 {
		return "[]"
	}
	b, err := json.Marshal(a.Sources)
	if err != nil {
		// a []string cannot fail to marshal
		return "[]"
	}
	return string(b)
}

// Get retrieves an article by ID. Returns (nil, nil) if no row matches.
func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = ?`

	row := repo.db.QueryRowContext(ctx, query, id)
	art, err := scanArticle(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: Scan: %w", err)
	}
	return art, nil
}

// List retrieves all articles ordered by ID.
func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles ORDER BY id`

	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 64)
	for rows.Next() {
		art, err := scanArticle(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, art)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows.Err: %w", err)
	}
	return articles, nil
}

// Create inserts a new article. Returns entity.ErrConflict (wrapped) if
// the ID is already taken.
func (repo *ArticleRepo) Create(ctx context.Context, a *entity.Article) error {
	exists, err := repo.Exists(ctx, a.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	if exists {
		return fmt.Errorf("Create: %s: %w", a.ID, entity.ErrConflict)
	}

	const query = `
INSERT INTO articles (id, title, content, status, target_publish_date, reminder_offset, word_goal, sources, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = repo.db.ExecContext(ctx, query,
		a.ID, a.Title, a.Content, string(a.Status), targetArg(a),
		string(a.ReminderOffset), a.WordGoal, sourcesArg(a), a.CreatedAt.UTC(), a.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	return nil
}

// Put stores an article with upsert semantics.
func (repo *ArticleRepo) Put(ctx context.Context, a *entity.Article) error {
	const query = `
INSERT INTO articles (id, title, content, status, target_publish_date, reminder_offset, word_goal, sources, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    title = excluded.title,
    content = excluded.content,
    status = excluded.status,
    target_publish_date = excluded.target_publish_date,
    reminder_offset = excluded.reminder_offset,
    word_goal = excluded.word_goal,
    sources = excluded.sources,
    updated_at = excluded.updated_at`

	_, err := repo.db.ExecContext(ctx, query,
		a.ID, a.Title, a.Content, string(a.Status), targetArg(a),
		string(a.ReminderOffset), a.WordGoal, sourcesArg(a), a.CreatedAt.UTC(), a.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("Put: ExecContext: %w", err)
	}
	return nil
}

// Delete removes an article. Returns entity.ErrNotFound (wrapped) if no
// row matched.
func (repo *ArticleRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM articles WHERE id = ?`

	result, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: ExecContext: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("Delete: %s: %w", id, entity.ErrNotFound)
	}
	return nil
}

// Exists reports whether a row with the given ID is stored.
func (repo *ArticleRepo) Exists(ctx context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM articles WHERE id = ?)`

	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("Exists: Scan: %w", err)
	}
	return exists, nil
}
