package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "chat:session:"

// SessionStore keeps each user's active chat session id in Redis.
// An empty stored value means the user explicitly has no active session.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore wraps an already connected client; ttl 0 keeps keys forever
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// Get returns the active session and whether any state is recorded for the user
func (s *SessionStore) Get(ctx context.Context, userID string) (string, bool, error) {
	val, err := s.client.Get(ctx, sessionKeyPrefix+userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get active session: %w", err)
	}
	return val, true, nil
}

// Set records sessionID as active; an empty id marks "no active session"
func (s *SessionStore) Set(ctx context.Context, userID, sessionID string) error {
	if err := s.client.Set(ctx, sessionKeyPrefix+userID, sessionID, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set active session: %w", err)
	}
	return nil
}
