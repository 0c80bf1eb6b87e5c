package dto

// PokemonListInput represents query parameters for listing Pokémon
type PokemonListInput struct {
	Offset int `query:"offset" minimum:"0" default:"0" doc:"Number of records to skip"`
	Limit  int `query:"limit" minimum:"1" maximum:"100" default:"20" doc:"Maximum number of records to return"`
}

// PokemonGetInput represents path parameters for fetching a single Pokémon
type PokemonGetInput struct {
	IDOrName string `path:"idOrName" minLength:"1" maxLength:"100" doc:"Pokémon id or name (case-insensitive)"`
}

// PokemonSearchInput represents query parameters for Pokémon name search
type PokemonSearchInput struct {
	Query string `query:"q" required:"true" minLength:"1" maxLength:"100" doc:"Case-insensitive substring to match against Pokémon names"`
}

// SpeciesGetInput represents path parameters for fetching a species
type SpeciesGetInput struct {
	IDOrName string `path:"idOrName" minLength:"1" maxLength:"100" doc:"Species id or name (case-insensitive)"`
}

// EvolutionChainGetInput represents path parameters for fetching an evolution chain
type EvolutionChainGetInput struct {
	ID int `path:"id" minimum:"1" doc:"Evolution chain id"`
}

// TypeListInput represents the input for listing types (no parameters)
type TypeListInput struct{}

// TypeGetInput represents path parameters for fetching a type
type TypeGetInput struct {
	IDOrName string `path:"idOrName" minLength:"1" maxLength:"100" doc:"Type id or name (case-insensitive)"`
}

// TypePokemonInput represents path parameters for listing a type's Pokémon
type TypePokemonInput struct {
	IDOrName string `path:"idOrName" minLength:"1" maxLength:"100" doc:"Type id or name (case-insensitive)"`
}

// SuggestionsInput represents query parameters for name suggestions
type SuggestionsInput struct {
	Query string `query:"q" doc:"Prefix or fragment to suggest Pokémon names for (fewer than 3 characters yields no suggestions)"`
}

// CountsInput represents the input for collection counts (no parameters)
type CountsInput struct{}

// StatusGetInput represents the input for service status (no parameters)
type StatusGetInput struct{}

// ReloadInput represents the input for triggering a data reload (no body)
type ReloadInput struct{}
