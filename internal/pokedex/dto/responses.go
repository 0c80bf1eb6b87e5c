package dto

import (
	"time"

	"go-pokedex/pkg/dex"
)

// PokemonListResponse is a paginated page of Pokémon references
type PokemonListResponse struct {
	Count   int                 `json:"count" doc:"Total number of Pokémon loaded"`
	Results []dex.NamedResource `json:"results" doc:"Page of Pokémon references"`
}

// PokemonListOutput wraps the Pokémon list response for Huma
type PokemonListOutput struct {
	Body PokemonListResponse `json:"body"`
}

// PokemonGetOutput wraps a single Pokémon for Huma
type PokemonGetOutput struct {
	Body dex.Pokemon `json:"body"`
}

// PokemonSearchResponse lists Pokémon references matching a search query
type PokemonSearchResponse struct {
	Count   int                 `json:"count" doc:"Number of matches"`
	Results []dex.NamedResource `json:"results" doc:"Matching Pokémon references in collection order"`
}

// PokemonSearchOutput wraps search results for Huma
type PokemonSearchOutput struct {
	Body PokemonSearchResponse `json:"body"`
}

// SpeciesGetOutput wraps a single species for Huma
type SpeciesGetOutput struct {
	Body dex.PokemonSpecies `json:"body"`
}

// EvolutionChainGetOutput wraps a single evolution chain for Huma
type EvolutionChainGetOutput struct {
	Body dex.EvolutionChain `json:"body"`
}

// TypeListResponse lists all loaded types
type TypeListResponse struct {
	Count   int                 `json:"count" doc:"Total number of types loaded"`
	Results []dex.NamedResource `json:"results" doc:"Type references in collection order"`
}

// TypeListOutput wraps the type list response for Huma
type TypeListOutput struct {
	Body TypeListResponse `json:"body"`
}

// TypeGetOutput wraps a single type for Huma
type TypeGetOutput struct {
	Body dex.Type `json:"body"`
}

// TypePokemonResponse lists the Pokémon belonging to a type
type TypePokemonResponse struct {
	Count   int           `json:"count" doc:"Number of Pokémon of this type"`
	Results []dex.Pokemon `json:"results" doc:"Full Pokémon records in collection order"`
}

// TypePokemonOutput wraps a type's Pokémon list for Huma
type TypePokemonOutput struct {
	Body TypePokemonResponse `json:"body"`
}

// SuggestionsResponse lists display names suggested for a query
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions" doc:"Suggested display names, at most 10, in index order"`
}

// SuggestionsOutput wraps suggestions for Huma
type SuggestionsOutput struct {
	Body SuggestionsResponse `json:"body"`
}

// CountsOutput wraps collection counts for Huma
type CountsOutput struct {
	Body dex.Counts `json:"body"`
}

// StatusGetOutput wraps the service status for Huma
type StatusGetOutput struct {
	Body dex.Status `json:"body"`
}

// ReloadResponse reports the outcome of a manual data reload
type ReloadResponse struct {
	Success    bool      `json:"success"`
	Generation string    `json:"generation,omitempty" doc:"Load generation id of the dataset now being served"`
	LoadedAt   time.Time `json:"loaded_at"`
	Message    string    `json:"message,omitempty"`
}

// ReloadOutput wraps the reload response for Huma
type ReloadOutput struct {
	Body ReloadResponse `json:"body"`
}
