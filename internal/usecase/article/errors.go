// Package article provides use cases for managing article records.
// It implements business logic for creating, editing, scheduling and
// transitioning articles, delegating persistence to the article repository
// and status rules to the workflow engine.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = errors.New("article not found")

	// ErrDuplicateArticle indicates that an article with the same ID
	// already exists. Returned on create only; Put has upsert semantics.
	ErrDuplicateArticle = errors.New("article with this id already exists")
)
