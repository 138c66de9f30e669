// Package session keeps elevated admin sessions in Redis. A session exists
// only between a successful login exchange and logout (or TTL expiry); its
// token carries no claims — possession is the whole credential.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "admin_session:"

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Create issues a new elevated session and returns its token.
func (s *Store) Create(ctx context.Context) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, keyPrefix+token, "1", s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Valid reports whether the token belongs to a live session. Redis errors
// count as invalid: the caller falls through to the credential check.
func (s *Store) Valid(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	n, err := s.rdb.Exists(ctx, keyPrefix+token).Result()
	return err == nil && n > 0
}

// Destroy ends the session; destroying an unknown token is a no-op.
func (s *Store) Destroy(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}

// TTL exposes the configured session lifetime (for cookie max-age).
func (s *Store) TTL() time.Duration { return s.ttl }
