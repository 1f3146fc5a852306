package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	redisclient "github.com/velora-labs/storefront-backend/pkg/redis"
)

type sessionBackend interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Expire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	CartSessionKey(sessionID string) string
}

// Store issues and validates anonymous cart session identifiers backed by
// Redis. Sessions expire server-side after the configured TTL; a request
// presenting an expired or unknown id simply receives a fresh one.
type Store struct {
	backend sessionBackend
	ttl     time.Duration
}

// NewStore constructs a session store on top of the shared Redis client.
func NewStore(client *redisclient.Client, ttl time.Duration) (*Store, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	return &Store{backend: client, ttl: ttl}, nil
}

// Issue creates a new session id and registers it with the configured TTL.
func (s *Store) Issue(ctx context.Context) (string, error) {
	id := uuid.NewString()
	if err := s.backend.Set(ctx, s.backend.CartSessionKey(id), time.Now().UTC().Format(time.RFC3339), s.ttl); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return id, nil
}

// Validate reports whether the id names a live session and slides its TTL.
func (s *Store) Validate(ctx context.Context, id string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, nil
	}
	key := s.backend.CartSessionKey(id)
	if _, err := s.backend.Get(ctx, key); err != nil {
		if redisclient.IsNil(err) {
			return false, nil
		}
		return false, err
	}
	if _, err := s.backend.Expire(ctx, key, s.ttl); err != nil {
		return false, err
	}
	return true, nil
}

// TTL exposes the configured session lifetime (used for cookie max-age).
func (s *Store) TTL() time.Duration {
	return s.ttl
}
