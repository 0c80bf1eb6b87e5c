package services

import (
	"log/slog"
	"time"

	"go-pokedex/internal/pokedex/dto"
	"go-pokedex/pkg/dex"
)

// Service exposes the Pokédex data store to the HTTP layer
type Service struct {
	dex *dex.Service
}

// NewService creates a new Pokédex service
func NewService(dexService *dex.Service) *Service {
	return &Service{
		dex: dexService,
	}
}

// ListPokemon returns a page of Pokémon references
func (s *Service) ListPokemon(offset, limit int) dto.PokemonListResponse {
	page := s.dex.ListPokemon(offset, limit)
	return dto.PokemonListResponse{
		Count:   page.Count,
		Results: page.Results,
	}
}

// GetPokemon resolves a Pokémon by id or name
func (s *Service) GetPokemon(key string) (dex.Pokemon, bool) {
	return s.dex.Pokemon(key)
}

// SearchPokemon returns Pokémon references whose names contain the query
func (s *Service) SearchPokemon(query string) dto.PokemonSearchResponse {
	results := s.dex.SearchPokemon(query)
	return dto.PokemonSearchResponse{
		Count:   len(results),
		Results: results,
	}
}

// GetSpecies resolves a species by id or name
func (s *Service) GetSpecies(key string) (dex.PokemonSpecies, bool) {
	return s.dex.Species(key)
}

// GetEvolutionChain resolves an evolution chain by id
func (s *Service) GetEvolutionChain(id int) (dex.EvolutionChain, bool) {
	return s.dex.EvolutionChain(id)
}

// ListTypes returns all loaded types as references
func (s *Service) ListTypes() dto.TypeListResponse {
	page := s.dex.ListTypes()
	return dto.TypeListResponse{
		Count:   page.Count,
		Results: page.Results,
	}
}

// GetType resolves a type by id or name
func (s *Service) GetType(key string) (dex.Type, bool) {
	return s.dex.Type(key)
}

// PokemonByType returns the full Pokémon records belonging to a type.
// An unresolvable type yields an empty result, not an error.
func (s *Service) PokemonByType(key string) dto.TypePokemonResponse {
	results := s.dex.PokemonByType(key)
	return dto.TypePokemonResponse{
		Count:   len(results),
		Results: results,
	}
}

// Suggest returns display-name suggestions for a query
func (s *Service) Suggest(query string) dto.SuggestionsResponse {
	return dto.SuggestionsResponse{
		Suggestions: s.dex.Suggest(query),
	}
}

// Counts returns per-collection record counts
func (s *Service) Counts() dex.Counts {
	return s.dex.AggregateCounts()
}

// Status returns the current load state of every collection
func (s *Service) Status() dex.Status {
	return s.dex.Status()
}

// Reload re-reads the data files and swaps in the new dataset. On failure
// the previously served dataset stays in place.
func (s *Service) Reload() dto.ReloadResponse {
	start := time.Now()
	if err := s.dex.Reload(); err != nil {
		slog.Error("Manual reload failed", "error", err, "duration", time.Since(start))
		return dto.ReloadResponse{
			Success: false,
			Message: "reload failed, previous dataset retained",
		}
	}

	status := s.dex.Status()
	slog.Info("Manual reload completed", "generation", status.Generation, "duration", time.Since(start))
	return dto.ReloadResponse{
		Success:    true,
		Generation: status.Generation,
		LoadedAt:   status.LoadedAt,
	}
}
