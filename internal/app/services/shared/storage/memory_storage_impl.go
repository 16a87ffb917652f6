package storage

import (
	"context"
	"sync"
	"time"

	"vitalsync-client/internal/app/contracts"
	"vitalsync-client/internal/app/models"
)

// memoryStorage holds the session mirror in process memory only. Used in
// tests and in deployments that must not leave a credential on disk.
type memoryStorage struct {
	mu      sync.Mutex
	session *models.StoredSession
}

func NewMemorySessionStorage() contracts.SessionStorage {
	return &memoryStorage{}
}

func (s *memoryStorage) Get(ctx context.Context) (*models.StoredSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, nil
	}
	if s.session.Expired(time.Now()) {
		s.session = nil
		return nil, nil
	}
	copied := *s.session
	return &copied, nil
}

func (s *memoryStorage) Set(ctx context.Context, session *models.StoredSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	s.session = &copied
	return nil
}

func (s *memoryStorage) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}
