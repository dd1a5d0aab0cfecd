// Package repository defines the persistence interfaces consumed by the
// use case layer. Implementations live under internal/infra/adapter.
package repository

import (
	"context"

	"github.com/calebmoores/content-dashboard/internal/domain/entity"
)

// ArticleRepository persists article records keyed by ID.
//
// Every method is a single-record operation; there are no multi-record
// transactions. Concurrent writers to the same ID are not coordinated:
// the last successful Put wins. That is a documented boundary of the
// system, not something the adapters resolve.
type ArticleRepository interface {
	// Get retrieves an article by ID.
	// Returns (nil, nil) if no article exists with that ID.
	Get(ctx context.Context, id string) (*entity.Article, error)

	// List retrieves all articles. Order is unspecified; callers that
	// need a stable order sort the result themselves.
	List(ctx context.Context) ([]*entity.Article, error)

	// Create stores a new article. Returns an error wrapping
	// entity.ErrConflict if the ID is already taken.
	Create(ctx context.Context, article *entity.Article) error

	// Put stores an article with upsert semantics, overwriting any
	// existing record with the same ID.
	Put(ctx context.Context, article *entity.Article) error

	// Delete removes an article. Returns an error wrapping
	// entity.ErrNotFound if no article exists with that ID.
	Delete(ctx context.Context, id string) error

	// Exists reports whether an article with the given ID is stored.
	Exists(ctx context.Context, id string) (bool, error)
}
