// Package translation maps ingredient, unit and category names between English and Indonesian.
package translation

import (
	"strings"

	"kitchen-assistant/internal/pkg/common"
)

type matcher struct {
	entry Entry
	terms []string
}

func newMatchers(entries []Entry) []matcher {
	out := make([]matcher, 0, len(entries))
	for _, e := range entries {
		m := matcher{entry: e}
		seen := map[string]bool{}
		for _, term := range []string{e.Key, e.EN, e.ID} {
			term = strings.ToLower(term)
			if seen[term] {
				continue
			}
			seen[term] = true
			m.terms = append(m.terms, term)
		}
		out = append(out, m)
	}
	return out
}

var (
	ingredientMatchers = newMatchers(Ingredients)
	unitMatchers       = newMatchers(Units)
	categoryMatchers   = newMatchers(Categories)
)

func exact(input string, tables ...[]matcher) (Entry, bool) {
	for _, table := range tables {
		for _, m := range table {
			for _, term := range m.terms {
				if term == input {
					return m.entry, true
				}
			}
		}
	}
	return Entry{}, false
}

// contains returns the first entry, in declaration order, whose term contains
// input or is contained in it.
func contains(input string, table []matcher) (Entry, bool) {
	if input == "" {
		return Entry{}, false
	}
	for _, m := range table {
		for _, term := range m.terms {
			if strings.Contains(input, term) || strings.Contains(term, input) {
				return m.entry, true
			}
		}
	}
	return Entry{}, false
}

func pick(e Entry, lang common.Language) string {
	return lang.Pick(e.EN, e.ID)
}

// Translate returns the name of an ingredient in lang, or name unchanged when unknown
func Translate(name string, lang common.Language) string {
	input := strings.ToLower(strings.TrimSpace(name))
	if input == "" {
		return name
	}
	if e, ok := exact(input, ingredientMatchers, unitMatchers); ok {
		return pick(e, lang)
	}
	if e, ok := contains(input, ingredientMatchers); ok {
		return pick(e, lang)
	}
	return name
}

// TranslateCategory returns the display name of a category in lang
func TranslateCategory(category string, lang common.Language) string {
	input := strings.ToLower(strings.TrimSpace(category))
	if input == "" {
		return category
	}
	if e, ok := exact(input, categoryMatchers); ok {
		return pick(e, lang)
	}
	if e, ok := contains(input, categoryMatchers); ok {
		return pick(e, lang)
	}
	return category
}

// TranslateUnit returns a unit of measure in lang. Only exact matches are translated.
func TranslateUnit(unit string, lang common.Language) string {
	input := strings.ToLower(strings.TrimSpace(unit))
	if input == "" {
		return unit
	}
	if e, ok := exact(input, unitMatchers, ingredientMatchers); ok {
		return pick(e, lang)
	}
	return unit
}

// Bilingual returns the English and Indonesian forms of an ingredient name
func Bilingual(name string) (en, id string) {
	return Translate(name, common.English), Translate(name, common.Indonesian)
}

// CategoryKey normalises a category to its table key, or "other" when unknown
func CategoryKey(category string) string {
	input := strings.ToLower(strings.TrimSpace(category))
	if e, ok := exact(input, categoryMatchers); ok {
		return e.Key
	}
	if e, ok := contains(input, categoryMatchers); ok {
		return e.Key
	}
	return "other"
}
