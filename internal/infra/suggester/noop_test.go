package suggester

import (
	"context"
	"strings"
	"testing"

	"github.com/calebmoores/content-dashboard/internal/usecase/suggest"
)

func TestNoOp_TextActions(t *testing.T) {
	provider := NewNoOp()

	for _, action := range []suggest.Action{
		suggest.ActionImprove,
		suggest.ActionRewrite,
		suggest.ActionExpand,
		suggest.ActionCondense,
		suggest.ActionGrammar,
	} {
		out, err := provider.Suggest(context.Background(), action, "some paragraph")
		if err != nil {
			t.Fatalf("%s: %v", action, err)
		}
		if out.Action != action {
			t.Errorf("%s: action echoed as %q", action, out.Action)
		}
		if out.Text == "" || len(out.Headlines) != 0 {
			t.Errorf("%s: want text only, got %+v", action, out)
		}
		if !strings.Contains(out.Text, "some paragraph") {
			t.Errorf("%s: suggestion should reference the input, got %q", action, out.Text)
		}
	}
}

func TestNoOp_Headlines(t *testing.T) {
	provider := NewNoOp()

	out, err := provider.Suggest(context.Background(), suggest.ActionHeadlines, "launch post")
	if err != nil {
		t.Fatalf("headlines: %v", err)
	}
	if len(out.Headlines) != headlineCount {
		t.Fatalf("got %d headlines, want %d", len(out.Headlines), headlineCount)
	}
	if out.Text != "" {
		t.Errorf("headlines action must not set Text, got %q", out.Text)
	}
}

func TestNoOp_TruncatesExcerpt(t *testing.T) {
	provider := NewNoOp()

	long := strings.Repeat("a", 500)
	out, err := provider.Suggest(context.Background(), suggest.ActionImprove, long)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(out.Text, "...") {
		t.Errorf("long input should be excerpted, got %q", out.Text)
	}
}

func TestParseSuggestion_Headlines(t *testing.T) {
	reply := "1. First headline\n- Second headline\n\n* Third headline\n"
	out := parseSuggestion(suggest.ActionHeadlines, reply)

	want := []string{"First headline", "Second headline", "Third headline"}
	if len(out.Headlines) != len(want) {
		t.Fatalf("got %d headlines, want %d: %v", len(out.Headlines), len(want), out.Headlines)
	}
	for i, h := range want {
		if out.Headlines[i] != h {
			t.Errorf("headline[%d] = %q, want %q", i, out.Headlines[i], h)
		}
	}
}

func TestParseSuggestion_Text(t *testing.T) {
	out := parseSuggestion(suggest.ActionGrammar, "  corrected text \n")
	if out.Text != "corrected text" {
		t.Errorf("text = %q, want trimmed reply", out.Text)
	}
}

func TestBuildPrompt_ContainsText(t *testing.T) {
	for _, action := range []suggest.Action{suggest.ActionImprove, suggest.ActionHeadlines} {
		p := buildPrompt(action, "the body")
		if !strings.Contains(p, "the body") {
			t.Errorf("%s prompt does not carry the input text", action)
		}
	}
}
