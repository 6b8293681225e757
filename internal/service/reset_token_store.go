package service

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

const resetTokenKeyPrefix = "quizdesk:reset-token:"

// ResetTokenStore remembers which password reset tokens were already used.
type ResetTokenStore interface {
	// MarkUsed records tokenID for ttl. It reports false when the token had
	// already been used.
	MarkUsed(ctx context.Context, tokenID string, ttl time.Duration) (bool, error)
}

// NewResetTokenStore uses Redis when a client is configured, so that every
// instance sees the same used tokens, and process memory otherwise.
func NewResetTokenStore(rdb *redis.Client) ResetTokenStore {
	if rdb == nil {
		return NewMemoryResetTokenStore()
	}
	return &redisResetTokenStore{rdb: rdb}
}

type redisResetTokenStore struct {
	rdb *redis.Client
}

func (s *redisResetTokenStore) MarkUsed(ctx context.Context, tokenID string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		ttl = time.Second
	}
	return s.rdb.SetNX(ctx, resetTokenKeyPrefix+tokenID, 1, ttl).Result()
}

type memoryResetTokenStore struct {
	mu   sync.Mutex
	used map[string]time.Time
	now  func() time.Time
}

func NewMemoryResetTokenStore() ResetTokenStore {
	return &memoryResetTokenStore{used: make(map[string]time.Time), now: time.Now}
}

func (s *memoryResetTokenStore) MarkUsed(_ context.Context, tokenID string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, expires := range s.used {
		if now.After(expires) {
			delete(s.used, id)
		}
	}
	if _, ok := s.used[tokenID]; ok {
		return false, nil
	}
	s.used[tokenID] = now.Add(ttl)
	return true, nil
}
