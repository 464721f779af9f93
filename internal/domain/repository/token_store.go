package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenStore tracks issued access tokens so they can be revoked before expiry.
type TokenStore interface {
	Store(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error)
	Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error
}
