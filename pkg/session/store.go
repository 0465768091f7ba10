package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	apperrors "inventory-system/pkg/errors"
)

// Store resolves opaque session identifiers to user ids. The identifier is
// the only thing the client ever sees; a missing or expired session leaves
// the request anonymous.
type Store interface {
	Create(ctx context.Context, userID int64) (string, error)
	Get(ctx context.Context, sid string) (int64, error)
	Delete(ctx context.Context, sid string) error
}

const redisKeyPrefix = "session:"

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, userID int64) (string, error) {
	sid := uuid.NewString()
	if err := s.client.Set(ctx, redisKeyPrefix+sid, userID, s.ttl).Err(); err != nil {
		return "", err
	}
	return sid, nil
}

func (s *RedisStore) Get(ctx context.Context, sid string) (int64, error) {
	userID, err := s.client.Get(ctx, redisKeyPrefix+sid).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, apperrors.ErrUnauthorized
	}
	if err != nil {
		return 0, err
	}
	return userID, nil
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	return s.client.Del(ctx, redisKeyPrefix+sid).Err()
}

type memorySession struct {
	userID    int64
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Suitable for a single
// instance only; sessions are lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
	ttl      time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memorySession), ttl: ttl}
}

func (s *MemoryStore) Create(_ context.Context, userID int64) (string, error) {
	sid := uuid.NewString()
	s.mu.Lock()
	s.sessions[sid] = memorySession{userID: userID, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return sid, nil
}

func (s *MemoryStore) Get(_ context.Context, sid string) (int64, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sid]
	s.mu.RUnlock()
	if !ok {
		return 0, apperrors.ErrUnauthorized
	}
	if time.Now().After(sess.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, sid)
		s.mu.Unlock()
		return 0, apperrors.ErrUnauthorized
	}
	return sess.userID, nil
}

func (s *MemoryStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	delete(s.sessions, sid)
	s.mu.Unlock()
	return nil
}
