package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	return server, client
}

func TestRedisSessionRepository(t *testing.T) {
	server, client := setupMiniRedis(t)

	testSessionRepository(t, NewRedisSessionRepository(client), server.FastForward)
}

func TestRedisSessionRepository_KeyAndTTL(t *testing.T) {
	server, client := setupMiniRedis(t)
	repo := NewRedisSessionRepository(client)

	require.NoError(t, repo.Store(context.Background(), "admin", "abc", 30*time.Minute))

	key := "admin_session:admin:abc"
	assert.True(t, server.Exists(key))
	assert.Equal(t, 30*time.Minute, server.TTL(key))
}

func TestRedisSessionRepository_ServerDown(t *testing.T) {
	server, client := setupMiniRedis(t)
	repo := NewRedisSessionRepository(client)
	server.Close()

	ctx := context.Background()
	assert.Error(t, repo.Store(ctx, "admin", "abc", time.Minute))

	ok, err := repo.Exists(ctx, "admin", "abc")
	assert.Error(t, err)
	assert.False(t, ok)

	assert.Error(t, repo.Delete(ctx, "admin", "abc"))
}
