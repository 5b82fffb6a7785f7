package common

import (
	"fmt"
	"strings"
)

// Language is one of the two supported locales
type Language string

const (
	English    Language = "en"
	Indonesian Language = "id"
)

// ParseLanguage normalises a locale tag such as "id-ID" or "EN"; anything else falls back to English.
func ParseLanguage(s string) Language {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "id" || strings.HasPrefix(s, "id-") || strings.HasPrefix(s, "id_") || s == "in" {
		return Indonesian
	}
	return English
}

// Pick returns en or id depending on the language
func (l Language) Pick(en, id string) string {
	if l == Indonesian {
		return id
	}
	return en
}

// Difficulty of a recipe
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty accepts easy, medium or hard and their Indonesian names; empty input yields medium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "medium", "sedang":
		return DifficultyMedium, nil
	case "easy", "mudah":
		return DifficultyEasy, nil
	case "hard", "sulit":
		return DifficultyHard, nil
	}
	return "", NewValidationError(fmt.Sprintf("invalid difficulty %q", s))
}

// RecipeRequest describes one recipe generation
type RecipeRequest struct {
	Ingredients         []string   `json:"ingredients"`
	Preferences         []string   `json:"preferences,omitempty"`
	DietaryRestrictions []string   `json:"dietaryRestrictions,omitempty"`
	CookingTime         *int       `json:"cookingTime,omitempty"`
	Difficulty          Difficulty `json:"difficulty,omitempty"`
	Cuisine             string     `json:"cuisine,omitempty"`
	Mood                string     `json:"mood,omitempty"`
	Language            Language   `json:"language,omitempty"`
}

// Normalize fills the defaults and validates the request
func (r *RecipeRequest) Normalize() error {
	names := make([]string, 0, len(r.Ingredients))
	for _, name := range r.Ingredients {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return NewValidationError("at least one ingredient is required")
	}
	r.Ingredients = names

	difficulty, err := ParseDifficulty(string(r.Difficulty))
	if err != nil {
		return err
	}
	r.Difficulty = difficulty

	if r.CookingTime != nil && *r.CookingTime <= 0 {
		return NewValidationError("cooking time must be a positive number of minutes")
	}

	r.Language = ParseLanguage(string(r.Language))
	r.Preferences = UniqueStrings(r.Preferences)
	r.DietaryRestrictions = UniqueStrings(r.DietaryRestrictions)
	r.Cuisine = strings.TrimSpace(r.Cuisine)
	r.Mood = strings.TrimSpace(r.Mood)
	return nil
}

// GeneratedRecipe is the structured recipe extracted from model output
type GeneratedRecipe struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	PrepTime     int      `json:"prepTime"`
	CookTime     int      `json:"cookTime"`
	Servings     int      `json:"servings"`
	Difficulty   string   `json:"difficulty"`
	Cuisine      string   `json:"cuisine"`
	Tags         []string `json:"tags"`
	Tips         []string `json:"tips"`
	Story        string   `json:"story"`
}

// ChatMessageType enumerates chat transcript entries
type ChatMessageType string

const (
	MessageUser   ChatMessageType = "user"
	MessageAI     ChatMessageType = "ai"
	MessageRecipe ChatMessageType = "recipe"
	MessageSystem ChatMessageType = "system"
)

// Valid reports whether t is a known message type
func (t ChatMessageType) Valid() bool {
	switch t {
	case MessageUser, MessageAI, MessageRecipe, MessageSystem:
		return true
	}
	return false
}

// UniqueStrings trims, drops blanks and duplicates, keeping first-seen order
func UniqueStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

