package cache

import (
	"context"
	"fmt"
	"time"

	"ehr-vaccine-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const accessTokenKeyPrefix = "access_token"

type redisTokenStore struct {
	client redis.Cmdable
}

// NewTokenStore keeps one key per issued access token, expiring with the token.
func NewTokenStore(client redis.Cmdable) repository.TokenStore {
	return &redisTokenStore{client: client}
}

func accessTokenKey(userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s:%s:%s", accessTokenKeyPrefix, userID.String(), tokenID)
}

func (s *redisTokenStore) Store(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, accessTokenKey(userID, tokenID), "valid", ttl).Err()
}

func (s *redisTokenStore) Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, accessTokenKey(userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error {
	return s.client.Del(ctx, accessTokenKey(userID, tokenID)).Err()
}
