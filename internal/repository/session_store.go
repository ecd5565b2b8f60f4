package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"kenangan-bot/internal/domain"
)

// SessionStore keeps one conversation session per external user id.
// Get always yields a usable session, creating an empty one for unknown
// users. Sessions never expire on their own: cancellation and flow
// completion are the only things that reset them.
type SessionStore interface {
	Get(ctx context.Context, userID int64) (*domain.Session, error)
	Save(ctx context.Context, userID int64, session *domain.Session) error
}

type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]domain.Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[int64]domain.Session)}
}

func (s *MemorySessionStore) Get(_ context.Context, userID int64) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session := s.sessions[userID]
	return &session, nil
}

func (s *MemorySessionStore) Save(_ context.Context, userID int64, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[userID] = *session
	return nil
}

type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(userID int64) string {
	return fmt.Sprintf("session:%d", userID)
}

func (s *RedisSessionStore) Get(ctx context.Context, userID int64) (*domain.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(userID)).Bytes()
	if err == redis.Nil {
		return &domain.Session{}, nil
	}
	if err != nil {
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, userID int64, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, sessionKey(userID), data, 0).Err()
}
