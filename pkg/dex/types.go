package dex

import (
	"encoding/json"
	"time"
)

// NamedResource is a lightweight reference to another record: its name plus
// the canonical lookup URL.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// APIResource is a reference carrying only a lookup URL.
type APIResource struct {
	URL string `json:"url"`
}

// StatValue represents a single base stat of a Pokémon.
type StatValue struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort,omitempty"`
	Stat     NamedResource `json:"stat"`
}

// TypeSlot assigns a type to a Pokémon at a given slot.
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// Sprites holds image URLs for a Pokémon. These are derived on read from the
// configured sprite base URL, never stored on disk.
type Sprites struct {
	FrontDefault    string `json:"front_default,omitempty"`
	FrontShiny      string `json:"front_shiny,omitempty"`
	OfficialArtwork string `json:"official_artwork,omitempty"`
}

// Pokemon is the primary catalog record.
type Pokemon struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	BaseExperience int           `json:"base_experience,omitempty"`
	Height         int           `json:"height,omitempty"`
	Weight         int           `json:"weight,omitempty"`
	Stats          []StatValue   `json:"stats,omitempty"`
	Types          []TypeSlot    `json:"types,omitempty"`
	Sprites        Sprites       `json:"sprites,omitempty"`
	Species        NamedResource `json:"species"`
}

// FlavorText is a localized description entry on a species.
type FlavorText struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
}

// Genus is a localized genus entry on a species.
type Genus struct {
	Genus    string        `json:"genus"`
	Language NamedResource `json:"language"`
}

// PokemonSpecies is the taxonomic grouping a Pokémon belongs to.
type PokemonSpecies struct {
	ID                int          `json:"id"`
	Name              string       `json:"name"`
	IsBaby            bool         `json:"is_baby"`
	IsLegendary       bool         `json:"is_legendary"`
	IsMythical        bool         `json:"is_mythical"`
	EvolutionChain    APIResource  `json:"evolution_chain"`
	FlavorTextEntries []FlavorText `json:"flavor_text_entries,omitempty"`
	Genera            []Genus      `json:"genera,omitempty"`
}

// EvolutionDetail carries the trigger conditions for one evolution step.
type EvolutionDetail struct {
	Trigger      NamedResource  `json:"trigger"`
	MinLevel     int            `json:"min_level,omitempty"`
	MinHappiness int            `json:"min_happiness,omitempty"`
	Item         *NamedResource `json:"item,omitempty"`
	TimeOfDay    string         `json:"time_of_day,omitempty"`
}

// ChainLink is one node in an evolution chain tree.
type ChainLink struct {
	Species          NamedResource     `json:"species"`
	EvolutionDetails []EvolutionDetail `json:"evolution_details,omitempty"`
	EvolvesTo        []ChainLink       `json:"evolves_to,omitempty"`
}

// EvolutionChain is the full evolution tree rooted at a base species.
type EvolutionChain struct {
	ID    int       `json:"id"`
	Chain ChainLink `json:"chain"`
}

// DamageRelations describes how a type interacts with other types, in both
// directions.
type DamageRelations struct {
	DoubleDamageTo   []NamedResource `json:"double_damage_to,omitempty"`
	DoubleDamageFrom []NamedResource `json:"double_damage_from,omitempty"`
	HalfDamageTo     []NamedResource `json:"half_damage_to,omitempty"`
	HalfDamageFrom   []NamedResource `json:"half_damage_from,omitempty"`
	NoDamageTo       []NamedResource `json:"no_damage_to,omitempty"`
	NoDamageFrom     []NamedResource `json:"no_damage_from,omitempty"`
}

// TypeMember lists a Pokémon that belongs to a type.
type TypeMember struct {
	Slot    int           `json:"slot"`
	Pokemon NamedResource `json:"pokemon"`
}

// Type is a type/tag grouping with damage relations and a member list.
type Type struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	DamageRelations DamageRelations `json:"damage_relations"`
	Pokemon         []TypeMember    `json:"pokemon,omitempty"`
}

// SuggestionIndex is an independent flat list of name-search entries plus the
// metadata written by the index generator.
type SuggestionIndex struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Count       int               `json:"count"`
	Generation  string            `json:"generation"`
	Suggestions []SuggestionEntry `json:"suggestions"`
}

// SuggestionEntry is a lightweight projection of a Pokémon used purely for
// substring name search. Fields decode tolerantly: a missing or mis-typed
// field is zeroed and flagged rather than failing the entry, so one bad
// record cannot poison the rest of the index. Validation over the flags is
// exposed via Service.ValidateSuggestionIndex.
type SuggestionEntry struct {
	ID          int
	Name        string
	DisplayName string

	idValid      bool
	nameValid    bool
	displayValid bool
}

// UnmarshalJSON decodes an entry field by field so that an individually
// malformed field degrades to its zero value instead of rejecting the entry.
// A non-object entry still fails; the loader skips those per element.
func (e *SuggestionEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          json.RawMessage `json:"id"`
		Name        json.RawMessage `json:"name"`
		DisplayName json.RawMessage `json:"displayName"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = SuggestionEntry{}
	if len(raw.ID) > 0 {
		var id int
		if err := json.Unmarshal(raw.ID, &id); err == nil {
			e.ID = id
			e.idValid = true
		}
	}
	if len(raw.Name) > 0 {
		var name string
		if err := json.Unmarshal(raw.Name, &name); err == nil {
			e.Name = name
			e.nameValid = true
		}
	}
	if len(raw.DisplayName) > 0 {
		var display string
		if err := json.Unmarshal(raw.DisplayName, &display); err == nil {
			e.DisplayName = display
			e.displayValid = true
		}
	}
	return nil
}

// MarshalJSON writes the entry back in its on-disk shape.
func (e SuggestionEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID          int    `json:"id"`
		Name        string `json:"name"`
		DisplayName string `json:"displayName"`
	}{e.ID, e.Name, e.DisplayName})
}
