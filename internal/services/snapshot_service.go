package services

import (
	"context"

	"alexsimon-listings/internal/models"
	"alexsimon-listings/internal/repositories"
	"alexsimon-listings/pkg/logger"
	"alexsimon-listings/pkg/metrics"
)

// SnapshotService is the read path for the listings view.
type SnapshotService struct {
	store repositories.SnapshotStore
	cache repositories.SnapshotCache // may be nil
}

func NewSnapshotService(store repositories.SnapshotStore, cache repositories.SnapshotCache) *SnapshotService {
	return &SnapshotService{store: store, cache: cache}
}

// CurrentSnapshot returns the stored snapshot, going through the cache when
// one is configured. Cache errors fall back to the store.
func (s *SnapshotService) CurrentSnapshot(ctx context.Context) (*models.Snapshot, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			logger.GlobalLogger.Errorf("snapshot cache read failed: %v", err)
		} else if cached != nil {
			metrics.CacheHitsTotal.Inc()
			return cached, nil
		} else {
			metrics.CacheMissesTotal.Inc()
		}
	}

	snapshot, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && snapshot.LastUpdated != nil {
		if err := s.cache.Set(ctx, snapshot, snapshotCacheTTL); err != nil {
			logger.GlobalLogger.Errorf("snapshot cache refresh failed: %v", err)
		}
	}
	return snapshot, nil
}
