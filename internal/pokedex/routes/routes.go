package routes

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"go-pokedex/internal/pokedex/dto"
	"go-pokedex/internal/pokedex/services"
)

// Routes handles HTTP endpoints for the Pokédex module
type Routes struct {
	service *services.Service
}

// NewRoutes creates a new Routes instance
func NewRoutes(service *services.Service) *Routes {
	return &Routes{
		service: service,
	}
}

// RegisterRoutes registers all Pokédex routes
func (r *Routes) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listPokemon",
		Method:      http.MethodGet,
		Path:        "/pokemon",
		Summary:     "List Pokémon",
		Description: "Returns a page of Pokémon references in collection order",
		Tags:        []string{"Pokemon"},
	}, r.ListPokemon)

	huma.Register(api, huma.Operation{
		OperationID: "searchPokemon",
		Method:      http.MethodGet,
		Path:        "/pokemon/search",
		Summary:     "Search Pokémon by name",
		Description: "Returns Pokémon whose names contain the query, case-insensitively",
		Tags:        []string{"Pokemon"},
	}, r.SearchPokemon)

	huma.Register(api, huma.Operation{
		OperationID: "getPokemon",
		Method:      http.MethodGet,
		Path:        "/pokemon/{idOrName}",
		Summary:     "Get a Pokémon",
		Description: "Returns a single Pokémon resolved by numeric id or name",
		Tags:        []string{"Pokemon"},
	}, r.GetPokemon)

	huma.Register(api, huma.Operation{
		OperationID: "getSpecies",
		Method:      http.MethodGet,
		Path:        "/species/{idOrName}",
		Summary:     "Get a Pokémon species",
		Description: "Returns a single species resolved by numeric id or name",
		Tags:        []string{"Species"},
	}, r.GetSpecies)

	huma.Register(api, huma.Operation{
		OperationID: "getEvolutionChain",
		Method:      http.MethodGet,
		Path:        "/evolution-chains/{id}",
		Summary:     "Get an evolution chain",
		Description: "Returns a single evolution chain by numeric id",
		Tags:        []string{"Evolution"},
	}, r.GetEvolutionChain)

	huma.Register(api, huma.Operation{
		OperationID: "listTypes",
		Method:      http.MethodGet,
		Path:        "/types",
		Summary:     "List types",
		Description: "Returns all loaded type references in collection order",
		Tags:        []string{"Types"},
	}, r.ListTypes)

	huma.Register(api, huma.Operation{
		OperationID: "getType",
		Method:      http.MethodGet,
		Path:        "/types/{idOrName}",
		Summary:     "Get a type",
		Description: "Returns a single type resolved by numeric id or name",
		Tags:        []string{"Types"},
	}, r.GetType)

	huma.Register(api, huma.Operation{
		OperationID: "getTypePokemon",
		Method:      http.MethodGet,
		Path:        "/types/{idOrName}/pokemon",
		Summary:     "List a type's Pokémon",
		Description: "Returns the full Pokémon records belonging to a type",
		Tags:        []string{"Types", "Pokemon"},
	}, r.GetTypePokemon)

	huma.Register(api, huma.Operation{
		OperationID: "getSuggestions",
		Method:      http.MethodGet,
		Path:        "/suggestions",
		Summary:     "Suggest Pokémon names",
		Description: "Returns up to 10 display names matching the query. Queries shorter than 3 characters yield an empty list",
		Tags:        []string{"Suggestions"},
	}, r.GetSuggestions)

	huma.Register(api, huma.Operation{
		OperationID: "getCounts",
		Method:      http.MethodGet,
		Path:        "/counts",
		Summary:     "Get collection counts",
		Description: "Returns the number of records loaded per collection",
		Tags:        []string{"Module Status"},
	}, r.GetCounts)

	huma.Register(api, huma.Operation{
		OperationID: "getPokedexStatus",
		Method:      http.MethodGet,
		Path:        "/status",
		Summary:     "Get data store status",
		Description: "Returns the load state, generation and record count of every collection",
		Tags:        []string{"Module Status"},
	}, r.GetStatus)

	huma.Register(api, huma.Operation{
		OperationID: "reloadPokedex",
		Method:      http.MethodPost,
		Path:        "/reload",
		Summary:     "Reload data files",
		Description: "Re-reads all data files and atomically swaps in the new dataset. A failed reload keeps the previous dataset in place",
		Tags:        []string{"Module Status"},
	}, r.Reload)
}

// ListPokemon returns a page of Pokémon references
func (r *Routes) ListPokemon(ctx context.Context, input *dto.PokemonListInput) (*dto.PokemonListOutput, error) {
	return &dto.PokemonListOutput{
		Body: r.service.ListPokemon(input.Offset, input.Limit),
	}, nil
}

// GetPokemon resolves a single Pokémon by id or name
func (r *Routes) GetPokemon(ctx context.Context, input *dto.PokemonGetInput) (*dto.PokemonGetOutput, error) {
	pokemon, ok := r.service.GetPokemon(input.IDOrName)
	if !ok {
		return nil, huma.Error404NotFound("pokemon not found: " + input.IDOrName)
	}
	return &dto.PokemonGetOutput{Body: pokemon}, nil
}

// SearchPokemon returns Pokémon matching a name fragment
func (r *Routes) SearchPokemon(ctx context.Context, input *dto.PokemonSearchInput) (*dto.PokemonSearchOutput, error) {
	return &dto.PokemonSearchOutput{
		Body: r.service.SearchPokemon(input.Query),
	}, nil
}

// GetSpecies resolves a single species by id or name
func (r *Routes) GetSpecies(ctx context.Context, input *dto.SpeciesGetInput) (*dto.SpeciesGetOutput, error) {
	species, ok := r.service.GetSpecies(input.IDOrName)
	if !ok {
		return nil, huma.Error404NotFound("species not found: " + input.IDOrName)
	}
	return &dto.SpeciesGetOutput{Body: species}, nil
}

// GetEvolutionChain resolves a single evolution chain by id
func (r *Routes) GetEvolutionChain(ctx context.Context, input *dto.EvolutionChainGetInput) (*dto.EvolutionChainGetOutput, error) {
	chain, ok := r.service.GetEvolutionChain(input.ID)
	if !ok {
		return nil, huma.Error404NotFound("evolution chain not found")
	}
	return &dto.EvolutionChainGetOutput{Body: chain}, nil
}

// ListTypes returns all loaded type references
func (r *Routes) ListTypes(ctx context.Context, input *dto.TypeListInput) (*dto.TypeListOutput, error) {
	return &dto.TypeListOutput{
		Body: r.service.ListTypes(),
	}, nil
}

// GetType resolves a single type by id or name
func (r *Routes) GetType(ctx context.Context, input *dto.TypeGetInput) (*dto.TypeGetOutput, error) {
	typ, ok := r.service.GetType(input.IDOrName)
	if !ok {
		return nil, huma.Error404NotFound("type not found: " + input.IDOrName)
	}
	return &dto.TypeGetOutput{Body: typ}, nil
}

// GetTypePokemon returns the Pokémon belonging to a type. The type itself
// must resolve; an unknown type is a 404 rather than an empty list.
func (r *Routes) GetTypePokemon(ctx context.Context, input *dto.TypePokemonInput) (*dto.TypePokemonOutput, error) {
	if _, ok := r.service.GetType(input.IDOrName); !ok {
		return nil, huma.Error404NotFound("type not found: " + input.IDOrName)
	}
	return &dto.TypePokemonOutput{
		Body: r.service.PokemonByType(input.IDOrName),
	}, nil
}

// GetSuggestions returns display-name suggestions for a query
func (r *Routes) GetSuggestions(ctx context.Context, input *dto.SuggestionsInput) (*dto.SuggestionsOutput, error) {
	return &dto.SuggestionsOutput{
		Body: r.service.Suggest(input.Query),
	}, nil
}

// GetCounts returns per-collection record counts
func (r *Routes) GetCounts(ctx context.Context, input *dto.CountsInput) (*dto.CountsOutput, error) {
	return &dto.CountsOutput{
		Body: r.service.Counts(),
	}, nil
}

// GetStatus returns the current data store status
func (r *Routes) GetStatus(ctx context.Context, input *dto.StatusGetInput) (*dto.StatusGetOutput, error) {
	return &dto.StatusGetOutput{
		Body: r.service.Status(),
	}, nil
}

// Reload triggers a manual reload of all data files
func (r *Routes) Reload(ctx context.Context, input *dto.ReloadInput) (*dto.ReloadOutput, error) {
	return &dto.ReloadOutput{
		Body: r.service.Reload(),
	}, nil
}
