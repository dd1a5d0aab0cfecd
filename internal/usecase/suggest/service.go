package suggest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/calebmoores/content-dashboard/internal/utils/text"
)

var (
	// ErrUnknownAction is returned for an action outside the enumeration.
	ErrUnknownAction = errors.New("unknown suggestion action")

	// ErrEmptyText is returned when there is no text to work on.
	ErrEmptyText = errors.New("suggestion text cannot be empty")
)

// maxInputRunes caps the text sent to a provider. Longer bodies are
// truncated rather than rejected; the suggestion quality degrades
// gracefully and the cost stays bounded.
const maxInputRunes = 8000

// Service orchestrates suggestion requests: input validation, truncation,
// tracing and provider delegation.
type Service struct {
	provider Provider
	logger   *slog.Logger
}

// NewService creates a suggestion service backed by the given provider.
func NewService(provider Provider, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{provider: provider, logger: logger}
}

// Suggest validates the request and delegates to the provider.
// Returns ErrUnknownAction or ErrEmptyText for bad input; provider
// failures are wrapped and surfaced unchanged otherwise.
func (s *Service) Suggest(ctx context.Context, action Action, input string) (*Suggestion, error) {
	if !action.Valid() {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownAction, action)
	}
	if input == "" {
		return nil, ErrEmptyText
	}

	if text.CountRunes(input) > maxInputRunes {
		input = string([]rune(input)[:maxInputRunes])
	}

	requestID := uuid.New().String()
	s.logger.Info("suggestion requested",
		slog.String("request_id", requestID),
		slog.String("action", string(action)),
		slog.Int("text_length", text.CountRunes(input)))

	out, err := s.provider.Suggest(ctx, action, input)
	if err != nil {
		s.logger.Error("suggestion failed",
			slog.String("request_id", requestID),
			slog.String("action", string(action)),
			slog.Any("error", err))
		return nil, fmt.Errorf("suggest %s: %w", action, err)
	}
	return out, nil
}
