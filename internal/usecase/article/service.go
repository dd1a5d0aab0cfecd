package article

import (
	"context"
	"errors"
	"fmt"

	"github.com/calebmoores/content-dashboard/internal/domain/entity"
	"github.com/calebmoores/content-dashboard/internal/repository"
	"github.com/calebmoores/content-dashboard/internal/usecase/workflow"
	"github.com/calebmoores/content-dashboard/internal/utils/text"
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	ID       string
	Title    string
	Content  string
	WordGoal int
	Sources  []string
}

// UpdateInput represents the input parameters for updating an existing article.
// Fields with nil values will not be updated; a non-nil empty Sources
// slice clears the list.
type UpdateInput struct {
	ID       string
	Title    *string
	Content  *string
	WordGoal *int
	Sources  []string
}

// defaultTitle is used when neither an explicit title nor an H1 heading
// is available.
const defaultTitle = "Untitled"

// Service provides article management use cases.
// It handles read-modify-write orchestration and delegates persistence to
// the repository and status rules to the workflow engine.
type Service struct {
	Repo repository.ArticleRepository
}

// List retrieves all articles from the repository.
func (s *Service) List(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Get retrieves a single article by its ID.
// Returns a ValidationError if the ID is not a valid slug.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id string) (*entity.Article, error) {
	if err := entity.ValidateSlug(id); err != nil {
		return nil, err
	}

	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// Create creates a new Draft article with the provided input.
// A missing title is derived from the first H1 heading of the content,
// falling back to "Untitled". Returns ErrDuplicateArticle if the ID is
// already taken, or a ValidationError for malformed input.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	title := in.Title
	if title == "" {
		title = text.ExtractTitle(in.Content)
	}
	if title == "" {
		title = defaultTitle
	}
	if in.WordGoal < 0 {
		return nil, &entity.ValidationError{Field: "word_goal", Message: "must not be negative"}
	}

	art, err := entity.NewArticle(in.ID, title, in.Content)
	if err != nil {
		return nil, err
	}
	art.WordGoal = in.WordGoal
	art.Sources = in.Sources

	if err := s.Repo.Create(ctx, art); err != nil {
		if errors.Is(err, entity.ErrConflict) {
			return nil, ErrDuplicateArticle
		}
		return nil, fmt.Errorf("create article: %w", err)
	}
	return art, nil
}

// Update modifies the title, content, word goal or sources of an
// existing article.
// Only non-nil fields in the input will be updated. When a new title is
// provided, the leading H1 heading of the body is rewritten to match, the
// way the editing front end keeps the two in sync.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Article, error) {
	art, err := s.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Content != nil {
		art.Content = *in.Content
	}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, &entity.ValidationError{Field: "title", Message: "cannot be empty"}
		}
		art.Title = *in.Title
		if art.Content != "" {
			art.Content = text.ApplyTitle(art.Content, *in.Title)
		}
	} else if in.Content != nil {
		if derived := text.ExtractTitle(*in.Content); derived != "" {
			art.Title = derived
		}
	}
	if in.WordGoal != nil {
		if *in.WordGoal < 0 {
			return nil, &entity.ValidationError{Field: "word_goal", Message: "must not be negative"}
		}
		art.WordGoal = *in.WordGoal
	}
	if in.Sources != nil {
		art.Sources = in.Sources
	}

	art.UpdatedAt = nowFunc()

	if err := s.Repo.Put(ctx, art); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return art, nil
}

// Transition moves an article to the target status via the workflow
// engine and persists the result. Workflow violations are returned
// unwrapped so callers can map them to specific client errors.
func (s *Service) Transition(ctx context.Context, id string, target entity.Status, opts workflow.Options) (*entity.Article, error) {
	art, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	out, err := workflow.Transition(art, target, opts)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Put(ctx, out); err != nil {
		return nil, fmt.Errorf("persist transition: %w", err)
	}
	return out, nil
}

// Schedule places an article on the calendar with the given publish date
// and reminder offset. An already-Scheduled article is re-scheduled: its
// date and reminder are replaced without a status change.
func (s *Service) Schedule(ctx context.Context, id, publishDate string, reminder entity.ReminderOffset) (*entity.Article, error) {
	art, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	out, err := workflow.Schedule(art, workflow.Options{
		PublishDate:    publishDate,
		ReminderOffset: reminder,
	})
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Put(ctx, out); err != nil {
		return nil, fmt.Errorf("persist schedule: %w", err)
	}
	return out, nil
}

// Delete removes an article by its ID.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := entity.ValidateSlug(id); err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
