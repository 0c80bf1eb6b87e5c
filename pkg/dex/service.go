package dex

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// File names the loader expects under the data directory.
const (
	pokemonFile     = "pokemon.json"
	speciesFile     = "species.json"
	chainsFile      = "evolution_chains.json"
	typesFile       = "types.json"
	suggestionsFile = "suggestions.json"
)

// Config controls where the service reads its data from and how it renders
// derived URLs.
type Config struct {
	// DataDir is the directory holding the five JSON data files.
	DataDir string

	// SpriteBaseURL is prepended to derived sprite paths.
	SpriteBaseURL string

	// ResourceBaseURL is prepended to canonical lookup URLs in listings.
	ResourceBaseURL string
}

// dataset is one load generation: every collection built by a single load,
// immutable once published. Lookups index the ordered slices through maps
// keyed by id and lowercase name.
type dataset struct {
	pokemon       []Pokemon
	pokemonByID   map[int]*Pokemon
	pokemonByName map[string]*Pokemon
	pokemonLoaded bool

	species       []PokemonSpecies
	speciesByID   map[int]*PokemonSpecies
	speciesByName map[string]*PokemonSpecies
	speciesLoaded bool

	chains       []EvolutionChain
	chainByID    map[int]*EvolutionChain
	chainsLoaded bool

	types       []Type
	typeByID    map[int]*Type
	typeByName  map[string]*Type
	typesLoaded bool

	suggestions *SuggestionIndex

	generation string
	loadedAt   time.Time
}

// Service provides in-memory access to Pokédex reference data loaded from
// local JSON files. Readers are lock-free over an immutable snapshot; Reload
// builds a fresh dataset off to the side and publishes it with a single
// pointer swap, so a reader never observes a mixed load generation.
type Service struct {
	cfg Config

	loadMu sync.Mutex // serializes loads; never held by readers
	data   atomic.Pointer[dataset]
}

// NewService creates a service for the given configuration. No data is read
// until Reload is called.
func NewService(cfg Config) *Service {
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.SpriteBaseURL == "" {
		cfg.SpriteBaseURL = "/media"
	}
	if cfg.ResourceBaseURL == "" {
		cfg.ResourceBaseURL = "/api/v1"
	}
	cfg.SpriteBaseURL = strings.TrimRight(cfg.SpriteBaseURL, "/")
	cfg.ResourceBaseURL = strings.TrimRight(cfg.ResourceBaseURL, "/")

	s := &Service{cfg: cfg}
	s.data.Store(&dataset{})
	return s
}

func (s *Service) snapshot() *dataset {
	return s.data.Load()
}

// IsInitialized reports whether at least one usable dataset is present: the
// primary Pokémon collection is non-empty or the suggestion index loaded.
func (s *Service) IsInitialized() bool {
	d := s.snapshot()
	return len(d.pokemon) > 0 || d.suggestions != nil
}

// Reload re-reads all five data files from scratch and atomically publishes the
// result. A missing file is never fatal; a parse failure is fatal only for
// the primary Pokémon file, in which case the previously published dataset
// stays in place. For secondary files a parse failure retains that
// collection's previous contents. Safe to call repeatedly and from the
// scheduler; concurrent reloads serialize.
func (s *Service) Reload() error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	prev := s.snapshot()
	next := &dataset{}

	if err := s.loadPokemon(next, prev); err != nil {
		return fmt.Errorf("failed to load pokemon data: %w", err)
	}
	s.loadSpecies(next, prev)
	s.loadChains(next, prev)
	s.loadTypes(next, prev)
	s.loadSuggestions(next, prev)

	next.generation = uuid.NewString()
	next.loadedAt = time.Now()
	s.data.Store(next)

	suggestionCount := 0
	if next.suggestions != nil {
		suggestionCount = len(next.suggestions.Suggestions)
	}
	slog.Info("Pokédex data loaded",
		"pokemon_count", len(next.pokemon),
		"species_count", len(next.species),
		"evolution_chain_count", len(next.chains),
		"type_count", len(next.types),
		"suggestion_count", suggestionCount,
		"generation", next.generation,
	)
	return nil
}

// readDataFile returns the file contents, or (nil, false, nil) when the file
// does not exist. Absence is a degradation, not an error, for every file.
func (s *Service) readDataFile(name string) ([]byte, bool, error) {
	path := filepath.Join(s.cfg.DataDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("Data file missing, collection unavailable", "file", path)
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, true, nil
}

// decodeArray splits a top-level JSON array into its raw elements so callers
// can decode record by record and skip individually malformed entries.
func decodeArray(data []byte) ([]json.RawMessage, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, err
	}
	return elems, nil
}

func (s *Service) loadPokemon(next, prev *dataset) error {
	data, present, err := s.readDataFile(pokemonFile)
	if err != nil {
		return err
	}
	if !present {
		// Keep whatever the previous generation had.
		next.pokemon = prev.pokemon
		next.pokemonByID = prev.pokemonByID
		next.pokemonByName = prev.pokemonByName
		next.pokemonLoaded = prev.pokemonLoaded
		return nil
	}

	elems, err := decodeArray(data)
	if err != nil {
		// Corrupt primary data is the one fatal load condition.
		return fmt.Errorf("%s is not a valid JSON array: %w", pokemonFile, err)
	}

	pokemon := make([]Pokemon, 0, len(elems))
	byID := make(map[int]*Pokemon, len(elems))
	byName := make(map[string]*Pokemon, len(elems))
	for i, raw := range elems {
		var p Pokemon
		if err := json.Unmarshal(raw, &p); err != nil {
			slog.Warn("Skipping malformed pokemon record", "file", pokemonFile, "index", i, "error", err)
			continue
		}
		if p.ID <= 0 || p.Name == "" {
			slog.Warn("Skipping pokemon record without id or name", "file", pokemonFile, "index", i)
			continue
		}
		pokemon = append(pokemon, p)
	}
	for i := range pokemon {
		byID[pokemon[i].ID] = &pokemon[i]
		byName[strings.ToLower(pokemon[i].Name)] = &pokemon[i]
	}

	next.pokemon = pokemon
	next.pokemonByID = byID
	next.pokemonByName = byName
	next.pokemonLoaded = true
	return nil
}

func (s *Service) loadSpecies(next, prev *dataset) {
	keepPrev := func() {
		next.species = prev.species
		next.speciesByID = prev.speciesByID
		next.speciesByName = prev.speciesByName
		next.speciesLoaded = prev.speciesLoaded
	}

	data, present, err := s.readDataFile(speciesFile)
	if err != nil || !present {
		if err != nil {
			slog.Warn("Failed to read species data", "error", err)
		}
		keepPrev()
		return
	}

	elems, err := decodeArray(data)
	if err != nil {
		slog.Warn("Species data is not a valid JSON array, keeping previous collection", "error", err)
		keepPrev()
		return
	}

	species := make([]PokemonSpecies, 0, len(elems))
	for i, raw := range elems {
		var sp PokemonSpecies
		if err := json.Unmarshal(raw, &sp); err != nil {
			slog.Warn("Skipping malformed species record", "file", speciesFile, "index", i, "error", err)
			continue
		}
		if sp.ID <= 0 || sp.Name == "" {
			slog.Warn("Skipping species record without id or name", "file", speciesFile, "index", i)
			continue
		}
		species = append(species, sp)
	}

	byID := make(map[int]*PokemonSpecies, len(species))
	byName := make(map[string]*PokemonSpecies, len(species))
	for i := range species {
		byID[species[i].ID] = &species[i]
		byName[strings.ToLower(species[i].Name)] = &species[i]
	}

	next.species = species
	next.speciesByID = byID
	next.speciesByName = byName
	next.speciesLoaded = true
}

func (s *Service) loadChains(next, prev *dataset) {
	keepPrev := func() {
		next.chains = prev.chains
		next.chainByID = prev.chainByID
		next.chainsLoaded = prev.chainsLoaded
	}

	data, present, err := s.readDataFile(chainsFile)
	if err != nil || !present {
		if err != nil {
			slog.Warn("Failed to read evolution chain data", "error", err)
		}
		keepPrev()
		return
	}

	elems, err := decodeArray(data)
	if err != nil {
		slog.Warn("Evolution chain data is not a valid JSON array, keeping previous collection", "error", err)
		keepPrev()
		return
	}

	chains := make([]EvolutionChain, 0, len(elems))
	for i, raw := range elems {
		var c EvolutionChain
		if err := json.Unmarshal(raw, &c); err != nil {
			slog.Warn("Skipping malformed evolution chain record", "file", chainsFile, "index", i, "error", err)
			continue
		}
		if c.ID <= 0 {
			slog.Warn("Skipping evolution chain record without id", "file", chainsFile, "index", i)
			continue
		}
		chains = append(chains, c)
	}

	byID := make(map[int]*EvolutionChain, len(chains))
	for i := range chains {
		byID[chains[i].ID] = &chains[i]
	}

	next.chains = chains
	next.chainByID = byID
	next.chainsLoaded = true
}

func (s *Service) loadTypes(next, prev *dataset) {
	keepPrev := func() {
		next.types = prev.types
		next.typeByID = prev.typeByID
		next.typeByName = prev.typeByName
		next.typesLoaded = prev.typesLoaded
	}

	data, present, err := s.readDataFile(typesFile)
	if err != nil || !present {
		if err != nil {
			slog.Warn("Failed to read type data", "error", err)
		}
		keepPrev()
		return
	}

	elems, err := decodeArray(data)
	if err != nil {
		slog.Warn("Type data is not a valid JSON array, keeping previous collection", "error", err)
		keepPrev()
		return
	}

	types := make([]Type, 0, len(elems))
	for i, raw := range elems {
		var t Type
		if err := json.Unmarshal(raw, &t); err != nil {
			slog.Warn("Skipping malformed type record", "file", typesFile, "index", i, "error", err)
			continue
		}
		if t.ID <= 0 || t.Name == "" {
			slog.Warn("Skipping type record without id or name", "file", typesFile, "index", i)
			continue
		}
		types = append(types, t)
	}

	byID := make(map[int]*Type, len(types))
	byName := make(map[string]*Type, len(types))
	for i := range types {
		byID[types[i].ID] = &types[i]
		byName[strings.ToLower(types[i].Name)] = &types[i]
	}

	next.types = types
	next.typeByID = byID
	next.typeByName = byName
	next.typesLoaded = true
}

func (s *Service) loadSuggestions(next, prev *dataset) {
	data, present, err := s.readDataFile(suggestionsFile)
	if err != nil || !present {
		if err != nil {
			slog.Warn("Failed to read suggestion index", "error", err)
		}
		next.suggestions = prev.suggestions
		return
	}

	var raw struct {
		GeneratedAt time.Time         `json:"generated_at"`
		Count       int               `json:"count"`
		Generation  string            `json:"generation"`
		Suggestions []json.RawMessage `json:"suggestions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		slog.Warn("Suggestion index is malformed, keeping previous index", "error", err)
		next.suggestions = prev.suggestions
		return
	}

	idx := &SuggestionIndex{
		GeneratedAt: raw.GeneratedAt,
		Count:       raw.Count,
		Generation:  raw.Generation,
		Suggestions: make([]SuggestionEntry, 0, len(raw.Suggestions)),
	}
	for i, elem := range raw.Suggestions {
		var e SuggestionEntry
		if err := json.Unmarshal(elem, &e); err != nil {
			slog.Warn("Skipping non-object suggestion entry", "file", suggestionsFile, "index", i, "error", err)
			continue
		}
		idx.Suggestions = append(idx.Suggestions, e)
	}

	next.suggestions = idx
}
