package parser

import (
	"strings"

	"kitchen-assistant/internal/pkg/common"
)

// DefaultListLimit caps the line fallback for tips and substitutions
const DefaultListLimit = 5

// ParseStringList reads a JSON array of strings from raw model output.
// When no array can be decoded it returns the first limit non-empty lines.
func ParseStringList(raw string, limit int) []string {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	clean := common.StripCodeFences(raw)
	if items, ok := decodeArray(clean); ok {
		return items
	}

	out := []string{}
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == limit {
			break
		}
	}
	return out
}

func decodeArray(clean string) ([]string, bool) {
	var items []interface{}
	if err := common.ParseJSON(clean, &items); err == nil {
		return stringsFromArray(items), true
	}

	start := strings.IndexByte(clean, '[')
	end := strings.LastIndexByte(clean, ']')
	if start < 0 || end <= start {
		return nil, false
	}
	if err := common.ParseJSON(clean[start:end+1], &items); err != nil {
		return nil, false
	}
	return stringsFromArray(items), true
}
