package repository

import (
	"context"
	"sync"
	"time"

	domainRepo "practice-site/internal/domain/repository"
)

// memorySessionRepository is used when no Redis is configured. Sessions do
// not survive a restart.
type memorySessionRepository struct {
	mu       sync.Mutex
	sessions map[string]time.Time
	now      func() time.Time
}

func NewMemorySessionRepository() domainRepo.SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[string]time.Time),
		now:      time.Now,
	}
}

func (r *memorySessionRepository) Store(ctx context.Context, username, tokenID string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for key, expiresAt := range r.sessions {
		if !expiresAt.After(now) {
			delete(r.sessions, key)
		}
	}
	r.sessions[sessionKey(username, tokenID)] = now.Add(ttl)
	return nil
}

func (r *memorySessionRepository) Exists(ctx context.Context, username, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := sessionKey(username, tokenID)
	expiresAt, ok := r.sessions[key]
	if !ok {
		return false, nil
	}
	if !expiresAt.After(r.now()) {
		delete(r.sessions, key)
		return false, nil
	}
	return true, nil
}

func (r *memorySessionRepository) Delete(ctx context.Context, username, tokenID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionKey(username, tokenID))
	return nil
}
