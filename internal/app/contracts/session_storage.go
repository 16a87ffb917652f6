package contracts

import (
	"context"

	"vitalsync-client/internal/app/models"
)

// SessionStorage is the persistence port for the session mirror. Only the
// auth usecase writes through it. Get returns (nil, nil) when no session
// is stored or the stored one has expired.
type SessionStorage interface {
	Get(ctx context.Context) (*models.StoredSession, error)
	Set(ctx context.Context, session *models.StoredSession) error
	Clear(ctx context.Context) error
}
