package dex

import (
	"fmt"
	"strconv"
	"strings"
)

// Pagination bounds for ListPokemon.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is one slice of an ordered listing plus the total count of the
// underlying collection.
type Page struct {
	Count   int             `json:"count"`
	Results []NamedResource `json:"results"`
}

// Counts reports the size of each major collection. Collections that never
// loaded count as zero.
type Counts struct {
	Pokemon         int `json:"pokemon"`
	Species         int `json:"species"`
	EvolutionChains int `json:"evolution_chains"`
	Types           int `json:"types"`
}

func (s *Service) pokemonURL(id int) string {
	return fmt.Sprintf("%s/pokemon/%d", s.cfg.ResourceBaseURL, id)
}

func (s *Service) typeURL(id int) string {
	return fmt.Sprintf("%s/types/%d", s.cfg.ResourceBaseURL, id)
}

// withSprites returns a copy of the record with its sprite URLs derived from
// the configured base. The stored record is never mutated.
func (s *Service) withSprites(p *Pokemon) Pokemon {
	out := *p
	out.Sprites = Sprites{
		FrontDefault:    fmt.Sprintf("%s/sprites/pokemon/%d.png", s.cfg.SpriteBaseURL, p.ID),
		FrontShiny:      fmt.Sprintf("%s/sprites/pokemon/shiny/%d.png", s.cfg.SpriteBaseURL, p.ID),
		OfficialArtwork: fmt.Sprintf("%s/sprites/pokemon/official-artwork/%d.png", s.cfg.SpriteBaseURL, p.ID),
	}
	return out
}

// canonicalID reports whether key is the canonical decimal rendering of a
// positive integer id. Non-canonical numerics like "007" fall through to the
// name path so they cannot alias another record's id.
func canonicalID(key string) (int, bool) {
	id, err := strconv.Atoi(key)
	if err != nil || id <= 0 || strconv.Itoa(id) != key {
		return 0, false
	}
	return id, true
}

// PokemonByID returns the Pokémon with the given id. Non-positive ids
// resolve to not-found rather than an error; malformed identifiers are user
// input, not system failure.
func (s *Service) PokemonByID(id int) (Pokemon, bool) {
	if id <= 0 {
		return Pokemon{}, false
	}
	d := s.snapshot()
	p, ok := d.pokemonByID[id]
	if !ok {
		return Pokemon{}, false
	}
	return s.withSprites(p), true
}

// Pokemon resolves a Pokémon by id or name. The key is trimmed and
// lowercased; a canonical integer rendering takes the id path, anything else
// matches the stored name exactly. Empty keys resolve to not-found.
func (s *Service) Pokemon(key string) (Pokemon, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return Pokemon{}, false
	}
	if id, ok := canonicalID(key); ok {
		return s.PokemonByID(id)
	}
	d := s.snapshot()
	p, ok := d.pokemonByName[key]
	if !ok {
		return Pokemon{}, false
	}
	return s.withSprites(p), true
}

// SpeciesByID returns the species with the given id.
func (s *Service) SpeciesByID(id int) (PokemonSpecies, bool) {
	if id <= 0 {
		return PokemonSpecies{}, false
	}
	d := s.snapshot()
	sp, ok := d.speciesByID[id]
	if !ok {
		return PokemonSpecies{}, false
	}
	return *sp, true
}

// Species resolves a species by id or name, with the same key policy as
// Pokemon.
func (s *Service) Species(key string) (PokemonSpecies, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return PokemonSpecies{}, false
	}
	if id, ok := canonicalID(key); ok {
		return s.SpeciesByID(id)
	}
	d := s.snapshot()
	sp, ok := d.speciesByName[key]
	if !ok {
		return PokemonSpecies{}, false
	}
	return *sp, true
}

// EvolutionChain returns the chain with the given id. Chains are not named,
// so only integer lookup exists.
func (s *Service) EvolutionChain(id int) (EvolutionChain, bool) {
	if id <= 0 {
		return EvolutionChain{}, false
	}
	d := s.snapshot()
	c, ok := d.chainByID[id]
	if !ok {
		return EvolutionChain{}, false
	}
	return *c, true
}

// TypeByID returns the type with the given id.
func (s *Service) TypeByID(id int) (Type, bool) {
	if id <= 0 {
		return Type{}, false
	}
	d := s.snapshot()
	t, ok := d.typeByID[id]
	if !ok {
		return Type{}, false
	}
	return *t, true
}

// Type resolves a type by id or name, with the same key policy as Pokemon.
func (s *Service) Type(key string) (Type, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return Type{}, false
	}
	if id, ok := canonicalID(key); ok {
		return s.TypeByID(id)
	}
	d := s.snapshot()
	t, ok := d.typeByName[key]
	if !ok {
		return Type{}, false
	}
	return *t, true
}

// ListPokemon returns the slice [offset, offset+limit) of the ordered
// Pokémon collection projected to name references, plus the total count.
// Offsets clamp to zero, non-positive limits take the default, and limits
// clamp to MaxPageSize. Order is the load order and is stable across calls
// within one load generation.
func (s *Service) ListPokemon(offset, limit int) Page {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	d := s.snapshot()
	page := Page{Count: len(d.pokemon), Results: []NamedResource{}}
	if offset >= len(d.pokemon) {
		return page
	}
	end := offset + limit
	if end > len(d.pokemon) {
		end = len(d.pokemon)
	}
	for i := offset; i < end; i++ {
		page.Results = append(page.Results, NamedResource{
			Name: d.pokemon[i].Name,
			URL:  s.pokemonURL(d.pokemon[i].ID),
		})
	}
	return page
}

// ListTypes returns every type projected to a name reference. The type
// collection is small and bounded, so there is no pagination.
func (s *Service) ListTypes() Page {
	d := s.snapshot()
	page := Page{Count: len(d.types), Results: []NamedResource{}}
	for i := range d.types {
		page.Results = append(page.Results, NamedResource{
			Name: d.types[i].Name,
			URL:  s.typeURL(d.types[i].ID),
		})
	}
	return page
}

// SearchPokemon returns name references for every Pokémon whose name
// contains the query, case-insensitively, in load order. An empty query
// matches everything; callers that require a non-empty query enforce that at
// their boundary.
func (s *Service) SearchPokemon(query string) []NamedResource {
	q := strings.ToLower(strings.TrimSpace(query))
	d := s.snapshot()
	results := []NamedResource{}
	for i := range d.pokemon {
		if strings.Contains(strings.ToLower(d.pokemon[i].Name), q) {
			results = append(results, NamedResource{
				Name: d.pokemon[i].Name,
				URL:  s.pokemonURL(d.pokemon[i].ID),
			})
		}
	}
	return results
}

// PokemonByType returns the full records of every member of the given type,
// in load order. An unresolvable type yields an empty slice, not an error.
func (s *Service) PokemonByType(key string) []Pokemon {
	t, ok := s.Type(key)
	if !ok {
		return []Pokemon{}
	}

	members := make(map[int]struct{}, len(t.Pokemon))
	for _, m := range t.Pokemon {
		if id := idFromURL(m.Pokemon.URL); id > 0 {
			members[id] = struct{}{}
		}
	}

	d := s.snapshot()
	results := []Pokemon{}
	for i := range d.pokemon {
		if _, ok := members[d.pokemon[i].ID]; ok {
			results = append(results, s.withSprites(&d.pokemon[i]))
		}
	}
	return results
}

// idFromURL extracts the trailing integer identifier from a canonical
// resource URL like "/api/v1/pokemon/25" or ".../pokemon/25/".
func idFromURL(url string) int {
	parts := strings.Split(strings.Trim(url, "/"), "/")
	if len(parts) == 0 {
		return 0
	}
	id, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// AggregateCounts returns the current size of each major collection.
func (s *Service) AggregateCounts() Counts {
	d := s.snapshot()
	return Counts{
		Pokemon:         len(d.pokemon),
		Species:         len(d.species),
		EvolutionChains: len(d.chains),
		Types:           len(d.types),
	}
}
