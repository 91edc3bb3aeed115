package repositories

import (
	"context"
	"time"

	"alexsimon-listings/internal/models"
)

// SnapshotStore holds the single current listings snapshot. Write replaces
// it wholesale; a concurrent Read sees either the complete old snapshot or
// the complete new one, never a mix. Read before any Write returns the
// empty snapshot, not an error.
type SnapshotStore interface {
	Read(ctx context.Context) (*models.Snapshot, error)
	Write(ctx context.Context, snapshot *models.Snapshot) error
}

// SnapshotCache is an optional read-through cache in front of the store.
// Get returns (nil, nil) on a miss. Cache failures must degrade to store
// reads, never to request errors.
type SnapshotCache interface {
	Get(ctx context.Context) (*models.Snapshot, error)
	Set(ctx context.Context, snapshot *models.Snapshot, expiration time.Duration) error
	Invalidate(ctx context.Context) error
}
