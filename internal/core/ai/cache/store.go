// Package cache stores advisory generation results (answers, tips, substitutions).
// Recipe generation is never cached.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Store is a string key/value cache with expiry. Get returns common.ErrCacheMiss when absent.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Key builds a cache key from the operation, language and input parts
func Key(operation, language string, parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return operation + ":" + language + ":" + hex.EncodeToString(hash[:])
}
