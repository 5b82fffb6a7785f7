// Package parser turns free-form model output into structured values. It never fails:
// malformed output degrades to defaults.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"kitchen-assistant/internal/pkg/common"

	"go.uber.org/zap"
)

// Defaults applied to missing or malformed fields
const (
	DefaultTitle       = "Generated Recipe"
	DefaultDescription = "A delicious recipe created just for you"
	DefaultDifficulty  = "medium"
	DefaultCuisine     = "fusion"
	DefaultPrepTime    = 15
	DefaultCookTime    = 30
	DefaultServings    = 4

	maxFallbackIngredients  = 10
	maxFallbackInstructions = 8
)

// DefaultTags returns the tags used when the model gives none
func DefaultTags() []string {
	return []string{"ai-generated", "creative"}
}

var (
	errNoObject = errors.New("no JSON object in response")

	headingPrefix  = regexp.MustCompile(`^#+\s*`)
	numberedLine   = regexp.MustCompile(`^\d+\.`)
	unitSubstrings = []string{"cup", "tbsp", "tsp", "tablespoon", "teaspoon", "sdm", "sdt", "gelas"}
	stepSubstrings = []string{"step", "langkah"}
)

// ParseRecipe extracts a recipe from raw model output
func ParseRecipe(raw string) common.GeneratedRecipe {
	recipe, err := parseJSONRecipe(raw)
	if err == nil {
		return recipe
	}

	common.LogDebug("recipe JSON parse failed, using line fallback",
		zap.Error(err),
		zap.String("preview", common.Truncate(raw, 80)),
	)
	return fallbackRecipe(raw)
}

func parseJSONRecipe(raw string) (common.GeneratedRecipe, error) {
	fields, err := decodeObject(raw)
	if err != nil {
		return common.GeneratedRecipe{}, err
	}

	recipe := common.GeneratedRecipe{
		Title:        stringField(fields, "title", DefaultTitle),
		Description:  stringField(fields, "description", DefaultDescription),
		Ingredients:  listField(fields, "ingredients"),
		Instructions: listField(fields, "instructions"),
		PrepTime:     intField(fields, "prepTime", DefaultPrepTime, 0),
		CookTime:     intField(fields, "cookTime", DefaultCookTime, 0),
		Servings:     intField(fields, "servings", DefaultServings, 1),
		Difficulty:   stringField(fields, "difficulty", DefaultDifficulty),
		Cuisine:      stringField(fields, "cuisine", DefaultCuisine),
		Tags:         listField(fields, "tags"),
		Tips:         listField(fields, "tips"),
		Story:        stringField(fields, "story", ""),
	}

	if _, ok := fields["tags"].([]interface{}); !ok {
		recipe.Tags = DefaultTags()
	}
	if recipe.Ingredients == nil {
		recipe.Ingredients = []string{}
	}
	if recipe.Instructions == nil {
		recipe.Instructions = []string{}
	}
	if recipe.Tags == nil {
		recipe.Tags = []string{}
	}
	if recipe.Tips == nil {
		recipe.Tips = []string{}
	}
	return recipe, nil
}

// decodeObject takes the span between the first '{' and the last '}' and decodes it.
// Bare object keys are quoted on a second attempt.
func decodeObject(raw string) (map[string]interface{}, error) {
	clean := common.StripCodeFences(raw)
	start := strings.IndexByte(clean, '{')
	end := strings.LastIndexByte(clean, '}')
	if start < 0 || end <= start {
		return nil, errNoObject
	}
	span := clean[start : end+1]

	var fields map[string]interface{}
	err := common.ParseJSON(span, &fields)
	if err == nil {
		return fields, nil
	}
	if retryErr := common.ParseJSON(common.QuoteJSONKeys(span), &fields); retryErr == nil {
		return fields, nil
	}
	return nil, fmt.Errorf("decode recipe object: %w", err)
}

// stringField returns the value as written; only missing or blank values use def
func stringField(fields map[string]interface{}, key, def string) string {
	s, ok := fields[key].(string)
	if !ok || strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// intField accepts JSON numbers and numeric strings; anything below min uses def
func intField(fields map[string]interface{}, key string, def, min int) int {
	var f float64
	switch v := fields[key].(type) {
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return def
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return def
		}
		f = parsed
	default:
		return def
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt32 {
		return def
	}
	n := int(math.Round(f))
	if n < min {
		return def
	}
	return n
}

// listField returns nil unless the value is a JSON array
func listField(fields map[string]interface{}, key string) []string {
	items, ok := fields[key].([]interface{})
	if !ok {
		return nil
	}
	return stringsFromArray(items)
}

func stringsFromArray(items []interface{}) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := itemText(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// itemText flattens an array element. Objects such as {"name": "rice", "amount": "1 cup"}
// become "1 cup rice".
func itemText(item interface{}) string {
	switch v := item.(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case map[string]interface{}:
		var parts []string
		for _, key := range []string{"amount", "quantity", "unit", "name", "item", "ingredient", "text", "step", "description"} {
			if s := itemText(v[key]); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	}
	return ""
}

func fallbackRecipe(raw string) common.GeneratedRecipe {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	title := DefaultTitle
	if len(lines) > 0 {
		if t := strings.TrimSpace(headingPrefix.ReplaceAllString(lines[0], "")); t != "" {
			title = t
		}
	}

	ingredients := []string{}
	instructions := []string{}
	for _, line := range lines {
		lower := strings.ToLower(line)
		if len(ingredients) < maxFallbackIngredients && containsAny(lower, unitSubstrings) {
			ingredients = append(ingredients, line)
		}
		if len(instructions) < maxFallbackInstructions && (numberedLine.MatchString(line) || containsAny(lower, stepSubstrings)) {
			instructions = append(instructions, line)
		}
	}

	return common.GeneratedRecipe{
		Title:        title,
		Description:  DefaultDescription,
		Ingredients:  ingredients,
		Instructions: instructions,
		PrepTime:     DefaultPrepTime,
		CookTime:     DefaultCookTime,
		Servings:     DefaultServings,
		Difficulty:   DefaultDifficulty,
		Cuisine:      DefaultCuisine,
		Tags:         DefaultTags(),
		Tips:         []string{},
		Story:        "",
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
