package contracts

import (
	"context"
	"time"

	"vitalsync-client/internal/app/models"
)

// SyncScheduler keeps the patient collection fresh. Consumers only ever
// see copied snapshots.
type SyncScheduler interface {
	Start()
	Stop()
	Refresh(ctx context.Context)
	Snapshot() []models.Patient
	LastSyncedAt() time.Time
}
