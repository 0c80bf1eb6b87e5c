package dex

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Suggestion query business rules: queries shorter than three characters
// never match, and a result set is capped at ten entries. Neither bound is
// configurable at the operation boundary.
const (
	minSuggestionQueryLen = 3
	maxSuggestions        = 10
)

// Suggest returns display names from the suggestion index whose stored
// lowercase name contains the query, case-insensitively, in index order.
// Queries that are empty after trimming or shorter than three characters
// return an empty result, as does a missing index. A malformed entry is
// skipped or falls back per entry; it never suppresses the other matches.
func (s *Service) Suggest(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(q) < minSuggestionQueryLen {
		return []string{}
	}

	d := s.snapshot()
	if d.suggestions == nil {
		slog.Warn("Suggestion index not loaded, returning no suggestions", "query", q)
		return []string{}
	}

	results := make([]string, 0, maxSuggestions)
	for i := range d.suggestions.Suggestions {
		e := &d.suggestions.Suggestions[i]
		if !e.nameValid || e.Name == "" {
			continue
		}
		if !strings.Contains(strings.ToLower(e.Name), q) {
			continue
		}
		display := e.DisplayName
		if !e.displayValid || display == "" {
			display = e.Name
		}
		results = append(results, displayCase(display))
		if len(results) == maxSuggestions {
			break
		}
	}
	return results
}

// displayCase renders a suggestion for display: first character uppercase,
// the rest lowercase, regardless of the stored casing.
func displayCase(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
