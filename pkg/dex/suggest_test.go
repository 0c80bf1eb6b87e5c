package dex

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func suggestionService(t *testing.T, indexJSON string) *Service {
	t.Helper()
	dir := t.TempDir()
	writeFixture(t, dir, suggestionsFile, indexJSON)
	svc := newTestService(t, dir)
	require.NoError(t, svc.Reload())
	return svc
}

func TestSuggestScenario(t *testing.T) {
	svc := suggestionService(t, `{
		"generated_at": "2026-08-01T12:00:00Z",
		"count": 2,
		"generation": "gen-2",
		"suggestions": [
			{"id": 25, "name": "pikachu", "displayName": "pikachu"},
			{"id": 172, "name": "pichu", "displayName": "pichu"}
		]
	}`)

	assert.Equal(t, []string{"Pikachu"}, svc.Suggest("pik"))
	assert.Equal(t, []string{"Pichu"}, svc.Suggest("ich"))
	assert.Equal(t, []string{"Pikachu", "Pichu"}, svc.Suggest("chu"))
	assert.Empty(t, svc.Suggest("pi"), "two characters is below the minimum")
	assert.Empty(t, svc.Suggest(""))
}

func TestSuggestQueryValidation(t *testing.T) {
	svc := loadedTestService(t)

	for _, q := range []string{"", " ", "\t\n", "a", "ab", "  ab  "} {
		assert.Empty(t, svc.Suggest(q), "query %q", q)
	}

	// Whitespace around an otherwise valid query is trimmed before the
	// length check.
	assert.Equal(t, []string{"Pikachu"}, svc.Suggest("  pik  "))
}

func TestSuggestCaseInsensitive(t *testing.T) {
	svc := loadedTestService(t)

	lower := svc.Suggest("pik")
	assert.Equal(t, lower, svc.Suggest("PIK"))
	assert.Equal(t, lower, svc.Suggest("PiK"))
}

func TestSuggestDisplayCasing(t *testing.T) {
	svc := suggestionService(t, `{
		"count": 3,
		"generation": "gen-1",
		"suggestions": [
			{"id": 25, "name": "pikachu", "displayName": "PIKACHU"},
			{"id": 172, "name": "pichu", "displayName": "pIcHu"},
			{"id": 26, "name": "raichu", "displayName": "raichu"}
		]
	}`)

	results := svc.Suggest("chu")
	assert.Equal(t, []string{"Pikachu", "Pichu", "Raichu"}, results)
	for _, r := range results {
		first := r[:1]
		assert.Equal(t, strings.ToUpper(first), first)
		assert.Equal(t, strings.ToLower(r[1:]), r[1:])
	}
}

func TestSuggestLimit(t *testing.T) {
	var entries []string
	for i := 1; i <= 15; i++ {
		entries = append(entries, fmt.Sprintf(
			`{"id": %d, "name": "pokemon-%02d", "displayName": "pokemon-%02d"}`, i, i, i))
	}
	svc := suggestionService(t, fmt.Sprintf(
		`{"count": 15, "generation": "gen-1", "suggestions": [%s]}`,
		strings.Join(entries, ",")))

	results := svc.Suggest("pokemon")
	assert.Len(t, results, 10)
	// Index order, not relevance order.
	assert.Equal(t, "Pokemon-01", results[0])
	assert.Equal(t, "Pokemon-10", results[9])
}

func TestSuggestSkipsMalformedEntries(t *testing.T) {
	svc := suggestionService(t, `{
		"count": 4,
		"generation": "gen-1",
		"suggestions": [
			{"id": 25, "name": "pikachu", "displayName": "pikachu"},
			{"id": 26, "name": 42, "displayName": "raichu"},
			{"id": 172, "name": "pichu"},
			{"id": "bad", "name": "pichu-two", "displayName": 7}
		]
	}`)

	// One bad name must not suppress the valid matches around it. A missing
	// or mis-typed display name falls back to the stored name.
	assert.Equal(t, []string{"Pikachu", "Pichu", "Pichu-two"}, svc.Suggest("chu"))
}

func TestSuggestMissingIndex(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, pokemonFile, pokemonFixture)

	svc := newTestService(t, dir)
	require.NoError(t, svc.Reload())

	// Entities loaded, suggestions absent: queries degrade to empty instead
	// of failing the caller.
	assert.True(t, svc.IsInitialized())
	assert.Empty(t, svc.Suggest("pikachu"))
}

func TestSuggestOrderStable(t *testing.T) {
	svc := loadedTestService(t)

	first := svc.Suggest("chu")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, svc.Suggest("chu"))
	}
}

func TestDisplayCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"pikachu", "Pikachu"},
		{"PIKACHU", "Pikachu"},
		{"pIcHu", "Pichu"},
		{"x", "X"},
		{"", ""},
		{"mr. mime", "Mr. mime"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, displayCase(tt.in), "input %q", tt.in)
	}
}
