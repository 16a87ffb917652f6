package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"vitalsync-client/internal/app/contracts"
	"vitalsync-client/internal/app/models"
	"vitalsync-client/internal/pkg/constvars"
	"vitalsync-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// fileStorage persists the session mirror as a JSON file so the
// dashboard survives a restart. Writes go through a temp file and
// rename so a crash never leaves a torn session behind.
type fileStorage struct {
	path string
	log  *zap.Logger
	mu   sync.Mutex
}

func NewFileSessionStorage(path string, logger *zap.Logger) contracts.SessionStorage {
	return &fileStorage{
		path: path,
		log:  logger,
	}
}

func (s *fileStorage) Get(ctx context.Context) (*models.StoredSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrSessionStorageRead(err)
	}

	session := new(models.StoredSession)
	if err := json.Unmarshal(data, session); err != nil {
		s.log.Warn("fileStorage.Get "+constvars.ErrDevPersistedSessionCorrupted,
			zap.String(constvars.LoggingStorageKeyKey, s.path),
			zap.Error(err),
		)
		s.clearLocked()
		return nil, nil
	}

	if session.Expired(time.Now()) {
		s.log.Info("fileStorage.Get "+constvars.ErrDevPersistedSessionExpired,
			zap.String(constvars.LoggingStorageKeyKey, s.path),
		)
		s.clearLocked()
		return nil, nil
	}

	return session, nil
}

func (s *fileStorage) Set(ctx context.Context, session *models.StoredSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return exceptions.ErrSessionStorageWrite(err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return exceptions.ErrSessionStorageWrite(err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return exceptions.ErrSessionStorageWrite(err)
	}
	return nil
}

func (s *fileStorage) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocked()
}

func (s *fileStorage) clearLocked() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return exceptions.ErrSessionStorageClear(err)
	}
	return nil
}
