package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"alexsimon-listings/internal/models"
)

// snapshotFileStore persists the snapshot as one JSON file, the same
// data/properties.json layout the site has always served. Writes go to a
// temp file in the same directory and rename over the old one, so a crash
// mid-write leaves the previous snapshot intact.
type snapshotFileStore struct {
	path string
	mu   sync.RWMutex
}

func NewSnapshotFileStore(path string) SnapshotStore {
	return &snapshotFileStore{path: path}
}

func (s *snapshotFileStore) Read(ctx context.Context) (*models.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return models.EmptySnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot read failed: %v", err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("snapshot read failed: corrupt file %s: %v", s.path, err)
	}
	if snapshot.Properties == nil {
		snapshot.Properties = []models.Property{}
	}
	return &snapshot, nil
}

func (s *snapshotFileStore) Write(ctx context.Context, snapshot *models.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("snapshot write failed: %v", err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("snapshot write failed: %v", err)
	}

	tmp, err := os.CreateTemp(dir, ".properties-*.json")
	if err != nil {
		return fmt.Errorf("snapshot write failed: %v", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("snapshot write failed: %v", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("snapshot write failed: %v", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("snapshot write failed: %v", err)
	}
	return nil
}
