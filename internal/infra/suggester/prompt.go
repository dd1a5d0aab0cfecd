// Package suggester provides AI-backed implementations of the suggestion
// provider interface. It includes adapters for Claude (Anthropic) and
// OpenAI with circuit breaker and retry protection, plus a deterministic
// NoOp provider used when no API key is configured.
package suggester

import (
	"fmt"
	"strings"

	"github.com/calebmoores/content-dashboard/internal/usecase/suggest"
)

// headlineCount is how many alternative headlines the headlines action asks for.
const headlineCount = 3

// buildPrompt constructs the instruction sent to the model for one action.
func buildPrompt(action suggest.Action, text string) string {
	switch action {
	case suggest.ActionImprove:
		return "Improve the clarity and flow of the following article text. Return only the improved text.\n\n" + text
	case suggest.ActionRewrite:
		return "Rewrite the following article text in a professional tone. Return only the rewritten text.\n\n" + text
	case suggest.ActionExpand:
		return "Expand the following article text with more detail and context. Return only the expanded text.\n\n" + text
	case suggest.ActionCondense:
		return "Condense the following article text, keeping the key points. Return only the condensed text.\n\n" + text
	case suggest.ActionGrammar:
		return "Fix grammar and spelling in the following article text. Return only the corrected text.\n\n" + text
	case suggest.ActionHeadlines:
		return fmt.Sprintf("Write %d alternative headlines for the following article text. Return one headline per line with no numbering.\n\n%s", headlineCount, text)
	}
	return text
}

// parseSuggestion converts a raw model reply into a Suggestion.
// For the headlines action the reply is split into lines.
func parseSuggestion(action suggest.Action, reply string) *suggest.Suggestion {
	reply = strings.TrimSpace(reply)
	if action != suggest.ActionHeadlines {
		return &suggest.Suggestion{Action: action, Text: reply}
	}

	var headlines []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*0123456789. ")
		if line != "" {
			headlines = append(headlines, line)
		}
	}
	return &suggest.Suggestion{Action: action, Headlines: headlines}
}
