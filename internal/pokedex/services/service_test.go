package services

import (
	"os"
	"path/filepath"
	"testing"

	"go-pokedex/pkg/dex"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pokemonFixture = `[
	{"id": 1, "name": "bulbasaur", "height": 7, "weight": 69,
	 "species": {"name": "bulbasaur", "url": "/api/v1/species/1"}},
	{"id": 25, "name": "pikachu", "height": 4, "weight": 60,
	 "types": [{"slot": 1, "type": {"name": "electric", "url": "/api/v1/types/13"}}],
	 "species": {"name": "pikachu", "url": "/api/v1/species/25"}}
]`

const typesFixture = `[
	{"id": 13, "name": "electric",
	 "damage_relations": {},
	 "pokemon": [{"slot": 1, "pokemon": {"name": "pikachu", "url": "/api/v1/pokemon/25"}}]}
]`

const suggestionsFixture = `{
	"generated_at": "2026-08-01T12:00:00Z",
	"count": 1,
	"generation": "gen-1",
	"suggestions": [{"id": 25, "name": "pikachu", "displayName": "pikachu"}]
}`

func newLoadedService(t *testing.T) *Service {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pokemon.json"), []byte(pokemonFixture), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "types.json"), []byte(typesFixture), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "suggestions.json"), []byte(suggestionsFixture), 0o644))

	dexService := dex.NewService(dex.Config{
		DataDir:         dir,
		SpriteBaseURL:   "https://media.test",
		ResourceBaseURL: "/api/v1",
	})
	require.NoError(t, dexService.Reload())
	return NewService(dexService)
}

func TestListPokemonProjection(t *testing.T) {
	svc := newLoadedService(t)

	page := svc.ListPokemon(0, 20)
	assert.Equal(t, 2, page.Count)
	require.Len(t, page.Results, 2)
	assert.Equal(t, "bulbasaur", page.Results[0].Name)
	assert.Equal(t, "/api/v1/pokemon/1", page.Results[0].URL)
}

func TestGetPokemonNotFound(t *testing.T) {
	svc := newLoadedService(t)

	_, ok := svc.GetPokemon("mewtwo")
	assert.False(t, ok)

	pokemon, ok := svc.GetPokemon("PIKACHU")
	require.True(t, ok)
	assert.Equal(t, 25, pokemon.ID)
}

func TestSearchAndSuggest(t *testing.T) {
	svc := newLoadedService(t)

	search := svc.SearchPokemon("saur")
	assert.Equal(t, 1, search.Count)

	suggestions := svc.Suggest("pik")
	assert.Equal(t, []string{"Pikachu"}, suggestions.Suggestions)

	short := svc.Suggest("pi")
	assert.Empty(t, short.Suggestions)
}

func TestPokemonByTypeResponse(t *testing.T) {
	svc := newLoadedService(t)

	res := svc.PokemonByType("electric")
	assert.Equal(t, 1, res.Count)
	require.Len(t, res.Results, 1)
	assert.Equal(t, "pikachu", res.Results[0].Name)
}

func TestCountsAndStatus(t *testing.T) {
	svc := newLoadedService(t)

	counts := svc.Counts()
	assert.Equal(t, 2, counts.Pokemon)
	assert.Equal(t, 0, counts.Species)
	assert.Equal(t, 1, counts.Types)

	status := svc.Status()
	assert.True(t, status.Initialized)
	assert.False(t, status.Species.Loaded)
}

func TestReloadAssignsGeneration(t *testing.T) {
	svc := newLoadedService(t)

	before := svc.Status().Generation
	res := svc.Reload()
	require.True(t, res.Success)
	assert.NotEmpty(t, res.Generation)
	assert.NotEqual(t, before, res.Generation)
}
