package dto

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var resourceKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9\-' .]+$`)

// RegisterCustomValidators registers custom validation rules for Pokédex DTOs
func RegisterCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("pokedex_resource_key", validateResourceKey)
	validate.RegisterValidation("pokedex_suggestion_query", validateSuggestionQuery)
}

// validateResourceKey validates an id-or-name path segment
func validateResourceKey(fl validator.FieldLevel) bool {
	return ValidateResourceKey(fl.Field().String())
}

// validateSuggestionQuery validates a suggestion query string
func validateSuggestionQuery(fl validator.FieldLevel) bool {
	return ValidateSuggestionQuery(fl.Field().String())
}

// ValidateResourceKey checks an id-or-name key for reasonable shape. Keys
// failing this check would never match a loaded record anyway, so routes may
// treat a failure as not-found rather than a client error.
func ValidateResourceKey(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" || len(key) > 100 {
		return false
	}
	return resourceKeyPattern.MatchString(key)
}

// ValidateSuggestionQuery reports whether a query is long enough to produce
// suggestions. Short queries are valid requests that yield an empty result.
func ValidateSuggestionQuery(query string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(query)) >= 3
}

// ValidateSearchQuery validates a Pokémon search query
func ValidateSearchQuery(query string) bool {
	if strings.TrimSpace(query) == "" {
		return false
	}
	return len(query) <= 100
}

// ValidateOffset validates a pagination offset
func ValidateOffset(offset int) bool {
	return offset >= 0
}

// ValidateLimit validates a pagination limit
func ValidateLimit(limit int) bool {
	return limit > 0 && limit <= 100
}
