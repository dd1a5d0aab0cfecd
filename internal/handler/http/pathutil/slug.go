// Package pathutil provides helpers for extracting and validating article
// IDs from URL paths.
package pathutil

import (
	"errors"

	"github.com/calebmoores/content-dashboard/internal/domain/entity"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// Slug validates a path segment as an article ID.
// Handlers read the segment with r.PathValue and pass it here, so a
// malformed slug is rejected before it can reach the store (and its
// file system) at all.
func Slug(raw string) (string, error) {
	if err := entity.ValidateSlug(raw); err != nil {
		return "", ErrInvalidID
	}
	return raw, nil
}
