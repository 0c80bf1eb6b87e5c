package dex

import (
	"fmt"
	"time"
)

// CollectionStatus reports whether a collection has ever loaded successfully
// and how many records it currently holds. A collection retained stale
// across a failed reload still counts as loaded.
type CollectionStatus struct {
	Loaded bool `json:"loaded"`
	Count  int  `json:"count"`
}

// Status describes the current load generation per collection. Callers and
// tests use it to assert on partial-load scenarios without re-parsing files.
type Status struct {
	Initialized     bool             `json:"initialized"`
	Generation      string           `json:"generation,omitempty"`
	LoadedAt        time.Time        `json:"loaded_at"`
	Pokemon         CollectionStatus `json:"pokemon"`
	Species         CollectionStatus `json:"species"`
	EvolutionChains CollectionStatus `json:"evolution_chains"`
	Types           CollectionStatus `json:"types"`
	Suggestions     CollectionStatus `json:"suggestions"`
}

// Status returns the per-collection load state of the current generation.
func (s *Service) Status() Status {
	d := s.snapshot()
	st := Status{
		Initialized:     len(d.pokemon) > 0 || d.suggestions != nil,
		Generation:      d.generation,
		LoadedAt:        d.loadedAt,
		Pokemon:         CollectionStatus{Loaded: d.pokemonLoaded, Count: len(d.pokemon)},
		Species:         CollectionStatus{Loaded: d.speciesLoaded, Count: len(d.species)},
		EvolutionChains: CollectionStatus{Loaded: d.chainsLoaded, Count: len(d.chains)},
		Types:           CollectionStatus{Loaded: d.typesLoaded, Count: len(d.types)},
	}
	if d.suggestions != nil {
		st.Suggestions = CollectionStatus{Loaded: true, Count: len(d.suggestions.Suggestions)}
	}
	return st
}

// ValidationResult is the advisory report produced by
// ValidateSuggestionIndex.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateSuggestionIndex walks every entry in the suggestion index and
// reports structural violations as human-readable messages. Validation is
// advisory: invalid entries are reported, never mutated or discarded.
func (s *Service) ValidateSuggestionIndex() ValidationResult {
	res := ValidationResult{Valid: true, Errors: []string{}}

	d := s.snapshot()
	if d.suggestions == nil {
		res.Valid = false
		res.Errors = append(res.Errors, "suggestion index is not loaded")
		return res
	}

	for i := range d.suggestions.Suggestions {
		e := &d.suggestions.Suggestions[i]
		if !e.idValid {
			res.Errors = append(res.Errors, fmt.Sprintf("entry %d: missing or non-numeric id", i))
		}
		if !e.nameValid {
			res.Errors = append(res.Errors, fmt.Sprintf("entry %d: missing or non-string name", i))
		}
		if !e.displayValid {
			res.Errors = append(res.Errors, fmt.Sprintf("entry %d: missing or non-string display name", i))
		}
	}
	if len(res.Errors) > 0 {
		res.Valid = false
	}
	return res
}
