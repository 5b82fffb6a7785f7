package common

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateUUID returns a random UUID string
func GenerateUUID() string {
	return uuid.New().String()
}

// Truncate shortens s to at most n runes, for log previews
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// ContainsFold reports whether substr is within s, ignoring case
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
