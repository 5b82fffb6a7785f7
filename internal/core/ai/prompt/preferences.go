package prompt

import "strings"

type preferenceRule struct {
	tag      string
	keywords []string
}

// preferenceRules are checked in order; English keywords first, then Indonesian ones
var preferenceRules = []preferenceRule{
	{"vegetarian", []string{"vegetarian", "nabati"}},
	{"vegan", []string{"vegan", "tanpa hewani"}},
	{"gluten-free", []string{"gluten-free", "bebas gluten", "tanpa gluten"}},
	{"healthy", []string{"healthy", "sehat", "bergizi"}},
	{"quick", []string{"quick", "fast", "cepat", "kilat", "praktis"}},
	{"easy", []string{"easy", "mudah", "gampang", "sederhana"}},
	{"spicy", []string{"pedas", "panas"}},
	{"sweet", []string{"manis"}},
	{"savory", []string{"gurih"}},
}

// recipeKeywords mark a chat message as a recipe request
var recipeKeywords = []string{"recipe", "cook", "make", "resep", "masak", "buat"}

// ExtractPreferences returns the preference tags mentioned in text, each once
func ExtractPreferences(text string) []string {
	lower := strings.ToLower(text)
	var tags []string
	for _, rule := range preferenceRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				tags = append(tags, rule.tag)
				break
			}
		}
	}
	return tags
}

// IsRecipeRequest reports whether text asks for a recipe
func IsRecipeRequest(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range recipeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
