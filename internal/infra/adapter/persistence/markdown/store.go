package markdown

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/calebmoores/content-dashboard/internal/domain/entity"
	"github.com/calebmoores/content-dashboard/internal/repository"
)

// Store implements the ArticleRepository interface over a directory of
// markdown files, one <id>.md per article. Writes go through a temp file
// and rename so a crash mid-write never leaves a truncated article.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore creates a markdown store rooted at dir, creating the
// directory if needed.
func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create drafts dir: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Dir returns the drafts directory the store is rooted at.
func (s *Store) Dir() string { return s.dir }

// Ping verifies the drafts directory is still present and readable.
// Used by the health endpoint.
func (s *Store) Ping(_ context.Context) error {
	if _, err := os.ReadDir(s.dir); err != nil {
		return fmt.Errorf("drafts dir unreadable: %w", err)
	}
	return nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".md")
}

// Get retrieves an article by ID. Returns (nil, nil) if the file does
// not exist.
func (s *Store) Get(ctx context.Context, id string) (*entity.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := entity.ValidateSlug(id); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: read %s: %w", id, err)
	}

	info, err := os.Stat(s.path(id))
	if err != nil {
		return nil, fmt.Errorf("Get: stat %s: %w", id, err)
	}
	return decodeArticle(id, raw, info.ModTime())
}

// List retrieves every article in the drafts directory, ordered by file
// name. Files that fail to decode are skipped with a warning rather than
// failing the whole listing; one corrupt draft must not take down the
// dashboard.
func (s *Store) List(ctx context.Context) ([]*entity.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("List: read dir: %w", err)
	}

	articles := make([]*entity.Article, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".md")

		art, err := s.Get(ctx, id)
		if err != nil {
			s.logger.Warn("skipping unreadable article file",
				slog.String("file", e.Name()),
				slog.Any("error", err))
			continue
		}
		if art != nil {
			articles = append(articles, art)
		}
	}
	return articles, nil
}

// Create stores a new article. The file is opened with O_EXCL so a
// concurrent create of the same ID loses cleanly with ErrConflict.
func (s *Store) Create(ctx context.Context, article *entity.Article) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := encodeArticle(article)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(s.path(article.ID), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("Create: %s: %w", article.ID, entity.ErrConflict)
		}
		return fmt.Errorf("Create: open %s: %w", article.ID, err)
	}

	if _, err := f.Write(raw); err != nil {
		_ = f.Close()
		return fmt.Errorf("Create: write %s: %w", article.ID, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("Create: close %s: %w", article.ID, err)
	}
	return nil
}

// Put stores an article with upsert semantics via temp file + rename.
func (s *Store) Put(ctx context.Context, article *entity.Article) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := encodeArticle(article)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+article.ID+".*.tmp")
	if err != nil {
		return fmt.Errorf("Put: create temp: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("Put: write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("Put: close temp: %w", err)
	}
	if err := os.Rename(tmpName, s.path(article.ID)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("Put: rename: %w", err)
	}
	return nil
}

// Delete removes an article file. Returns ErrNotFound if it does not exist.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := entity.ValidateSlug(id); err != nil {
		return err
	}

	if err := os.Remove(s.path(id)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("Delete: %s: %w", id, entity.ErrNotFound)
		}
		return fmt.Errorf("Delete: %s: %w", id, err)
	}
	return nil
}

// Exists reports whether an article file with the given ID is present.
func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := entity.ValidateSlug(id); err != nil {
		return false, err
	}

	if _, err := os.Stat(s.path(id)); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("Exists: stat %s: %w", id, err)
	}
	return true, nil
}

// interface guard
var _ repository.ArticleRepository = (*Store)(nil)
