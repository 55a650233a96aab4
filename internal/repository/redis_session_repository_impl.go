package repository

import (
	"context"
	"fmt"
	"time"

	domainRepo "practice-site/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

type redisSessionRepository struct {
	client *redis.Client
}

func NewRedisSessionRepository(client *redis.Client) domainRepo.SessionRepository {
	return &redisSessionRepository{client: client}
}

func sessionKey(username, tokenID string) string {
	return fmt.Sprintf("admin_session:%s:%s", username, tokenID)
}

func (r *redisSessionRepository) Store(ctx context.Context, username, tokenID string, ttl time.Duration) error {
	return r.client.Set(ctx, sessionKey(username, tokenID), "valid", ttl).Err()
}

func (r *redisSessionRepository) Exists(ctx context.Context, username, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, sessionKey(username, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *redisSessionRepository) Delete(ctx context.Context, username, tokenID string) error {
	return r.client.Del(ctx, sessionKey(username, tokenID)).Err()
}
