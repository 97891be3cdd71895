package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// CookieName is the name of the admin session cookie.
const CookieName = "session"

const keyPrefix = "session:"

var ErrSessionNotFound = errors.New("session not found")

type redisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Store keeps admin sessions in Redis. A session is an opaque random token
// mapped to a user id with a fixed TTL; the token travels in a cookie and is
// the only session state held by the client.
type Store struct {
	client redisClient
	ttl    time.Duration
}

// NewStore creates a new session store.
func NewStore(client redisClient, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Create issues a fresh session token for a user. Callers must replace any
// existing session with the returned token so that login rotates the session
// id.
func (s *Store) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	token := hex.EncodeToString(raw)

	if err := s.client.Set(ctx, keyPrefix+token, userID.String(), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token, nil
}

// UserID resolves a session token to the logged-in user id.
func (s *Store) UserID(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := s.client.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, ErrSessionNotFound
		}

		return uuid.Nil, fmt.Errorf("failed to load session: %w", err)
	}

	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse stored user id: %w", err)
	}

	return id, nil
}

// Destroy removes a session, logging the user out everywhere the token is
// presented.
func (s *Store) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
