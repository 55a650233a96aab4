package repository

import (
	"context"
	"time"
)

// SessionRepository tracks issued admin tokens so they can be revoked on logout.
type SessionRepository interface {
	Store(ctx context.Context, username, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, username, tokenID string) (bool, error)
	Delete(ctx context.Context, username, tokenID string) error
}
