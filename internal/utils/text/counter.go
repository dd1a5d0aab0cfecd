// Package text provides utilities for text processing and analysis.
// This package includes reusable functions for word and title extraction
// shared by the domain entities and the dashboard aggregates.
package text

import (
	"bufio"
	"strings"
)

// CountWords counts whitespace-separated words in the given text.
// Runs of whitespace count as a single separator, so blank or
// whitespace-only content contributes zero words.
//
// Examples:
//
//	CountWords("hello world")   // returns 2
//	CountWords("  one\n two ")  // returns 2
//	CountWords("")              // returns 0
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CountRunes counts the number of Unicode characters (runes) in the given text.
// This correctly handles multi-byte characters by counting runes instead of bytes.
func CountRunes(text string) int {
	return len([]rune(text))
}

// ExtractTitle returns the text of the first markdown H1 heading in the
// body, or the empty string if there is none. Leading whitespace on the
// line disqualifies it, matching how the editing front end writes headings.
func ExtractTitle(content string) string {
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:])
		}
	}
	return ""
}

// ApplyTitle rewrites the first H1 heading of the body to the given title,
// inserting one at the top if the body has none. The rest of the body is
// left untouched.
func ApplyTitle(content, title string) string {
	heading := "# " + title
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "# ") {
			lines[i] = heading
			return strings.Join(lines, "\n")
		}
	}
	if strings.TrimSpace(content) == "" {
		return heading + "\n"
	}
	return heading + "\n\n" + content
}
