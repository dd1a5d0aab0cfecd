// Package suggest provides the editorial assistance use case. The
// workflow core has no dependency on this package: suggestions are a
// pluggable capability behind the narrow Provider interface, so the
// dashboard works unchanged with no provider configured at all.
package suggest

import "context"

// Action identifies one kind of editorial suggestion.
type Action string

const (
	ActionImprove   Action = "improve"
	ActionRewrite   Action = "rewrite"
	ActionExpand    Action = "expand"
	ActionCondense  Action = "condense"
	ActionGrammar   Action = "grammar"
	ActionHeadlines Action = "headlines"
)

// Valid reports whether a is a recognized action.
func (a Action) Valid() bool {
	switch a {
	case ActionImprove, ActionRewrite, ActionExpand, ActionCondense, ActionGrammar, ActionHeadlines:
		return true
	}
	return false
}

// Suggestion is the provider's answer for one action.
// Headlines is populated for ActionHeadlines, Text for everything else.
type Suggestion struct {
	Action    Action
	Text      string
	Headlines []string
}

// Provider generates editorial suggestions for article text.
// Implementations live under internal/infra/suggester (Claude, OpenAI,
// and a deterministic NoOp used when no API key is configured).
type Provider interface {
	// Suggest produces a suggestion for the given action and text.
	Suggest(ctx context.Context, action Action, text string) (*Suggestion, error)

	// Close releases resources held by the provider.
	Close() error
}
