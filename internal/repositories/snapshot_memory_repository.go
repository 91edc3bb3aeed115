package repositories

import (
	"context"
	"sync"

	"alexsimon-listings/internal/models"
)

// snapshotMemoryStore keeps the snapshot in a mutex-guarded cell. Used in
// tests and as the non-durable backend; read-after-write consistency within
// the process is all the store contract requires.
type snapshotMemoryStore struct {
	mu       sync.RWMutex
	snapshot *models.Snapshot
}

func NewSnapshotMemoryStore() SnapshotStore {
	return &snapshotMemoryStore{}
}

func (s *snapshotMemoryStore) Read(ctx context.Context) (*models.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return models.EmptySnapshot(), nil
	}
	copied := *s.snapshot
	return &copied, nil
}

func (s *snapshotMemoryStore) Write(ctx context.Context, snapshot *models.Snapshot) error {
	copied := *snapshot
	s.mu.Lock()
	s.snapshot = &copied
	s.mu.Unlock()
	return nil
}
