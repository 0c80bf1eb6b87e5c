package dex

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPokemonByID(t *testing.T) {
	svc := loadedTestService(t)

	for _, id := range []int{1, 2, 4, 25} {
		p, ok := svc.PokemonByID(id)
		require.True(t, ok, "id %d", id)
		assert.Equal(t, id, p.ID)
	}

	for _, id := range []int{0, -1, -25, 9999} {
		_, ok := svc.PokemonByID(id)
		assert.False(t, ok, "id %d", id)
	}
}

func TestPokemonByKey(t *testing.T) {
	svc := loadedTestService(t)

	tests := []struct {
		name   string
		key    string
		wantID int
		found  bool
	}{
		{"by name", "pikachu", 25, true},
		{"name is case-insensitive", "PiKaChU", 25, true},
		{"name is trimmed", "  pikachu  ", 25, true},
		{"by stringified id", "25", 25, true},
		{"stringified id is trimmed", " 4 ", 4, true},
		{"non-canonical numeric is not an id", "007", 0, false},
		{"unknown name", "missingno", 0, false},
		{"empty", "", 0, false},
		{"whitespace only", "   ", 0, false},
		{"negative id", "-1", 0, false},
		{"zero id", "0", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := svc.Pokemon(tt.key)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.wantID, p.ID)
			}
		})
	}
}

func TestPokemonNameAndIDAgree(t *testing.T) {
	svc := loadedTestService(t)

	byName, ok := svc.Pokemon("charmander")
	require.True(t, ok)
	byID, ok := svc.Pokemon(fmt.Sprintf("%d", byName.ID))
	require.True(t, ok)
	assert.Equal(t, byName, byID)
}

func TestPokemonSpritesDerivedOnRead(t *testing.T) {
	svc := loadedTestService(t)

	p, ok := svc.PokemonByID(25)
	require.True(t, ok)
	assert.Equal(t, "https://media.test/sprites/pokemon/25.png", p.Sprites.FrontDefault)
	assert.Equal(t, "https://media.test/sprites/pokemon/shiny/25.png", p.Sprites.FrontShiny)
	assert.Equal(t, "https://media.test/sprites/pokemon/official-artwork/25.png", p.Sprites.OfficialArtwork)

	again, ok := svc.PokemonByID(25)
	require.True(t, ok)
	assert.Equal(t, p, again)
}

func TestSpeciesLookup(t *testing.T) {
	svc := loadedTestService(t)

	sp, ok := svc.Species("pichu")
	require.True(t, ok)
	assert.Equal(t, 172, sp.ID)
	assert.True(t, sp.IsBaby)

	sp, ok = svc.Species("172")
	require.True(t, ok)
	assert.Equal(t, "pichu", sp.Name)

	byID, ok := svc.SpeciesByID(25)
	require.True(t, ok)
	assert.Equal(t, "pikachu", byID.Name)

	_, ok = svc.Species("dratini")
	assert.False(t, ok)
}

func TestEvolutionChainLookup(t *testing.T) {
	svc := loadedTestService(t)

	chain, ok := svc.EvolutionChain(10)
	require.True(t, ok)
	assert.Equal(t, "pichu", chain.Chain.Species.Name)
	require.Len(t, chain.Chain.EvolvesTo, 1)
	assert.Equal(t, "pikachu", chain.Chain.EvolvesTo[0].Species.Name)
	require.Len(t, chain.Chain.EvolvesTo[0].EvolutionDetails, 1)
	assert.Equal(t, 220, chain.Chain.EvolvesTo[0].EvolutionDetails[0].MinHappiness)

	_, ok = svc.EvolutionChain(0)
	assert.False(t, ok)
	_, ok = svc.EvolutionChain(-3)
	assert.False(t, ok)
	_, ok = svc.EvolutionChain(404)
	assert.False(t, ok)
}

func TestTypeLookup(t *testing.T) {
	svc := loadedTestService(t)

	typ, ok := svc.Type("fire")
	require.True(t, ok)
	assert.Equal(t, 10, typ.ID)
	require.Len(t, typ.DamageRelations.DoubleDamageTo, 1)
	assert.Equal(t, "grass", typ.DamageRelations.DoubleDamageTo[0].Name)

	typ, ok = svc.Type("12")
	require.True(t, ok)
	assert.Equal(t, "grass", typ.Name)

	_, ok = svc.Type("shadow")
	assert.False(t, ok)
}

func TestListPokemonPagination(t *testing.T) {
	svc := loadedTestService(t)
	total := svc.AggregateCounts().Pokemon
	require.Equal(t, 4, total)

	tests := []struct {
		name      string
		offset    int
		limit     int
		wantLen   int
		wantFirst string
	}{
		{"first page", 0, 2, 2, "bulbasaur"},
		{"second page", 2, 2, 2, "charmander"},
		{"offset past end", 10, 2, 0, ""},
		{"offset at end", 4, 2, 0, ""},
		{"negative offset clamps to zero", -5, 2, 2, "bulbasaur"},
		{"zero limit takes default", 0, 0, 4, "bulbasaur"},
		{"negative limit takes default", 0, -7, 4, "bulbasaur"},
		{"limit clamps to max", 0, 5000, 4, "bulbasaur"},
		{"partial last page", 3, 10, 1, "pikachu"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := svc.ListPokemon(tt.offset, tt.limit)
			assert.Equal(t, total, page.Count)
			require.Len(t, page.Results, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, page.Results[0].Name)
			}
		})
	}
}

func TestListPokemonPagesReconstructCollection(t *testing.T) {
	svc := loadedTestService(t)
	total := svc.AggregateCounts().Pokemon

	var names []string
	for offset := 0; offset < total; offset += 2 {
		page := svc.ListPokemon(offset, 2)
		for _, r := range page.Results {
			names = append(names, r.Name)
		}
	}
	assert.Equal(t, []string{"bulbasaur", "ivysaur", "charmander", "pikachu"}, names)
}

func TestListPokemonProjectsReferences(t *testing.T) {
	svc := loadedTestService(t)

	page := svc.ListPokemon(0, 1)
	require.Len(t, page.Results, 1)
	assert.Equal(t, NamedResource{Name: "bulbasaur", URL: "/api/v1/pokemon/1"}, page.Results[0])
}

func TestListTypes(t *testing.T) {
	svc := loadedTestService(t)

	page := svc.ListTypes()
	assert.Equal(t, 3, page.Count)
	require.Len(t, page.Results, 3)
	assert.Equal(t, NamedResource{Name: "fire", URL: "/api/v1/types/10"}, page.Results[0])
}

func TestSearchPokemon(t *testing.T) {
	svc := loadedTestService(t)

	results := svc.SearchPokemon("saur")
	require.Len(t, results, 2)
	assert.Equal(t, "bulbasaur", results[0].Name)
	assert.Equal(t, "ivysaur", results[1].Name)

	assert.Equal(t, results, svc.SearchPokemon("SAUR"))
	assert.Equal(t, results, svc.SearchPokemon("saur"), "repeated calls are order-stable")

	assert.Empty(t, svc.SearchPokemon("mewtwo"))

	// Empty query substring-matches everything; rejecting it belongs to the
	// caller's boundary, not here.
	assert.Len(t, svc.SearchPokemon(""), 4)
}

func TestPokemonByType(t *testing.T) {
	svc := loadedTestService(t)

	grass := svc.PokemonByType("grass")
	require.Len(t, grass, 2)
	assert.Equal(t, 1, grass[0].ID)
	assert.Equal(t, 2, grass[1].ID)
	assert.NotEmpty(t, grass[0].Sprites.FrontDefault)

	byID := svc.PokemonByType("12")
	assert.Equal(t, grass, byID)

	assert.Empty(t, svc.PokemonByType("shadow"))
	assert.Empty(t, svc.PokemonByType(""))
}

func TestAggregateCounts(t *testing.T) {
	svc := loadedTestService(t)

	assert.Equal(t, Counts{
		Pokemon:         4,
		Species:         3,
		EvolutionChains: 2,
		Types:           3,
	}, svc.AggregateCounts())
}

func TestIDFromURL(t *testing.T) {
	assert.Equal(t, 25, idFromURL("/api/v1/pokemon/25"))
	assert.Equal(t, 25, idFromURL("/api/v1/pokemon/25/"))
	assert.Equal(t, 0, idFromURL("/api/v1/pokemon/pikachu"))
	assert.Equal(t, 0, idFromURL(""))
	assert.Equal(t, 0, idFromURL("/api/v1/pokemon/-3"))
}
