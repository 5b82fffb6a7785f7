// Package kitchen holds the per-user application state: pantry, saved recipes, chat transcript and the active chat session.
package kitchen

import (
	"context"
	"sync"

	"kitchen-assistant/internal/infrastructure/persistence"
)

// IngredientStore is the pantry table
type IngredientStore interface {
	List(ctx context.Context, userID string) ([]persistence.Ingredient, error)
	Get(ctx context.Context, userID, id string) (*persistence.Ingredient, error)
	Create(ctx context.Context, row *persistence.Ingredient) error
	Save(ctx context.Context, row *persistence.Ingredient) error
	Delete(ctx context.Context, userID, id string) error
}

// RecipeStore is the saved recipe table
type RecipeStore interface {
	List(ctx context.Context, userID string) ([]persistence.Recipe, error)
	Recent(ctx context.Context, userID string, limit int) ([]persistence.Recipe, error)
	Get(ctx context.Context, userID, id string) (*persistence.Recipe, error)
	Create(ctx context.Context, row *persistence.Recipe) error
	Delete(ctx context.Context, userID, id string) error
	Count(ctx context.Context, userID string) (int64, error)
}

// ChatStore is the chat transcript table
type ChatStore interface {
	List(ctx context.Context, userID string) ([]persistence.ChatMessage, error)
	LatestSessionID(ctx context.Context, userID string) (string, error)
	Create(ctx context.Context, row *persistence.ChatMessage) error
	DeleteAll(ctx context.Context, userID string) (int64, error)
}

// SessionStore remembers each user's active chat session.
// Get reports known=false when nothing was ever recorded for the user;
// an empty id with known=true means the user explicitly has no active session.
type SessionStore interface {
	Get(ctx context.Context, userID string) (sessionID string, known bool, err error)
	Set(ctx context.Context, userID, sessionID string) error
}

// MemorySessionStore is the in-process SessionStore
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]string
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]string)}
}

func (s *MemorySessionStore) Get(_ context.Context, userID string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.sessions[userID]
	return id, ok, nil
}

func (s *MemorySessionStore) Set(_ context.Context, userID, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = sessionID
	return nil
}
