package suggester

import (
	"context"
	"fmt"

	"github.com/calebmoores/content-dashboard/internal/usecase/suggest"
)

// NoOp is a suggestion provider that returns deterministic placeholder
// suggestions without calling any external API. It is the default
// provider when no API key is configured, and is used in tests.
type NoOp struct{}

// NewNoOp creates a new NoOp suggestion provider.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Suggest returns a canned suggestion derived from the input text.
func (n *NoOp) Suggest(_ context.Context, action suggest.Action, text string) (*suggest.Suggestion, error) {
	excerpt := text
	if len([]rune(excerpt)) > 100 {
		excerpt = string([]rune(excerpt)[:100]) + "..."
	}

	if action == suggest.ActionHeadlines {
		headlines := make([]string, 0, headlineCount)
		for i := 1; i <= headlineCount; i++ {
			headlines = append(headlines, fmt.Sprintf("Alternative headline %d for: %s", i, excerpt))
		}
		return &suggest.Suggestion{Action: action, Headlines: headlines}, nil
	}

	return &suggest.Suggestion{
		Action: action,
		Text:   fmt.Sprintf("Suggested %s for: %s", action, excerpt),
	}, nil
}

// Close implements the Provider interface. NoOp holds no resources.
func (n *NoOp) Close() error { return nil }
