package storage

import (
	"context"
	"time"

	"vitalsync-client/internal/app/contracts"
	"vitalsync-client/internal/app/models"
	"vitalsync-client/internal/pkg/constvars"
	"vitalsync-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// redisStorage keeps the session mirror in Redis, for deployments where
// several dashboard stations share one caregiver workstation profile.
// The key TTL tracks the session expiry so stale mirrors evict
// themselves.
type redisStorage struct {
	client *redis.Client
	key    string
}

func NewRedisSessionStorage(client *redis.Client) contracts.SessionStorage {
	return &redisStorage{
		client: client,
		key:    constvars.SessionStorageKey,
	}
}

func (s *redisStorage) Get(ctx context.Context) (*models.StoredSession, error) {
	data, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}

	session := new(models.StoredSession)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		// undecodable mirror is as good as absent
		s.client.Del(ctx, s.key)
		return nil, nil
	}

	if session.Expired(time.Now()) {
		s.client.Del(ctx, s.key)
		return nil, nil
	}
	return session, nil
}

func (s *redisStorage) Set(ctx context.Context, session *models.StoredSession) error {
	jsonValue, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	var exp time.Duration
	if !session.ExpiresAt.IsZero() {
		exp = time.Until(session.ExpiresAt)
		if exp <= 0 {
			return s.Clear(ctx)
		}
	}

	if err := s.client.Set(ctx, s.key, jsonValue, exp).Err(); err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (s *redisStorage) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}
