package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	repo "github.com/oksasatya/devpad-api/internal/domain/repository"
	"github.com/oksasatya/devpad-api/pkg/helpers"
)

const tokenBytes = 32

func tokenKey(t string) string { return "auth:token:" + t }

// RedisStore keeps opaque bearer tokens in redis, one key per token
// mapping to the owning user id. Revoking deletes a single key, so
// other live tokens for the same user are untouched.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Mint(ctx context.Context, userID string) (string, error) {
	tok, err := helpers.NewOpaqueToken(tokenBytes)
	if err != nil {
		return "", fmt.Errorf("mint token: %w", err)
	}
	if err := s.rdb.Set(ctx, tokenKey(tok), userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}
	return tok, nil
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (string, error) {
	userID, err := s.rdb.Get(ctx, tokenKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", repo.ErrNotFound
		}
		return "", fmt.Errorf("resolve token: %w", err)
	}
	return userID, nil
}

func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, tokenKey(token)).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

var _ repo.TokenStore = (*RedisStore)(nil)
