package entity

import "fmt"

// maxSlugLength caps article IDs so they stay usable as file names.
const maxSlugLength = 128

// ValidateSlug validates an article ID. IDs become file names in the
// markdown-backed store, so only lowercase letters, digits, hyphens and
// underscores are allowed. Returns a ValidationError if the slug is
// empty, too long, or contains any other character.
func ValidateSlug(id string) error {
	if id == "" {
		return &ValidationError{Field: "id", Message: "is required"}
	}
	if len(id) > maxSlugLength {
		return &ValidationError{
			Field:   "id",
			Message: fmt.Sprintf("must not exceed %d characters", maxSlugLength),
		}
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return &ValidationError{
				Field:   "id",
				Message: "must contain only lowercase letters, digits, hyphens and underscores",
			}
		}
	}
	return nil
}
