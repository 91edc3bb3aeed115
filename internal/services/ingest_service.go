package services

import (
	"context"
	"fmt"
	"time"

	"alexsimon-listings/internal/errors"
	"alexsimon-listings/internal/models"
	"alexsimon-listings/internal/repositories"
	"alexsimon-listings/internal/transformers"
	"alexsimon-listings/internal/validators"
	"alexsimon-listings/pkg/logger"
	"alexsimon-listings/pkg/metrics"
	"alexsimon-listings/pkg/scraper"
)

const snapshotCacheTTL = 5 * time.Minute

// IngestService runs the normalize → dedupe → store pipeline for both
// ingestion modes. Every successful ingestion replaces the snapshot
// wholesale; a failed one leaves the previous snapshot authoritative.
type IngestService struct {
	store       repositories.SnapshotStore
	cache       repositories.SnapshotCache // may be nil
	trans       transformers.PropertyTransformer
	dedup       *Deduplicator
	validator   validators.IngestValidator
	fetcher     scraper.ListingFetcher
	brokerName  string
	agency      string
	realtorName string
	now         func() time.Time
}

func NewIngestService(
	store repositories.SnapshotStore,
	cache repositories.SnapshotCache,
	trans transformers.PropertyTransformer,
	dedup *Deduplicator,
	validator validators.IngestValidator,
	fetcher scraper.ListingFetcher,
	brokerName, agency, realtorName string,
) *IngestService {
	return &IngestService{
		store:       store,
		cache:       cache,
		trans:       trans,
		dedup:       dedup,
		validator:   validator,
		fetcher:     fetcher,
		brokerName:  brokerName,
		agency:      agency,
		realtorName: realtorName,
		now:         time.Now,
	}
}

// SetClock overrides the timestamp source; tests only.
func (s *IngestService) SetClock(now func() time.Time) {
	s.now = now
}

// IngestPush accepts a full snapshot payload from a trusted automation
// caller and replaces the stored snapshot.
func (s *IngestService) IngestPush(ctx context.Context, req *models.IngestRequest) (*models.IngestResponse, error) {
	if err := s.validator.ValidatePush(req); err != nil {
		return nil, err
	}

	snapshot := s.buildSnapshot(req.Properties, req.Broker, req.ScrapedAt)
	if err := s.writeSnapshot(ctx, snapshot); err != nil {
		return nil, err
	}

	metrics.PropertiesIngestedTotal.WithLabelValues("push").Add(float64(snapshot.PropertyCount))
	logger.GlobalLogger.Printf("Push ingestion: received %d properties, kept %d",
		len(req.Properties), snapshot.PropertyCount)

	return &models.IngestResponse{
		Success: true,
		Message: fmt.Sprintf("Successfully updated %d properties", snapshot.PropertyCount),
		Data: models.IngestData{
			InsertedCount: snapshot.PropertyCount,
			TotalReceived: len(req.Properties),
			ScrapedAt:     snapshot.ScrapedAt,
		},
	}, nil
}

// IngestFromScraper pulls listings from the upstream scraping service and
// replaces the stored snapshot. An upstream failure aborts before any write.
func (s *IngestService) IngestFromScraper(ctx context.Context) (*models.FetchResponse, error) {
	logger.GlobalLogger.Printf("Fetching properties from scraper for %s", s.realtorName)

	result, err := s.fetcher.FetchListings(ctx, s.realtorName)
	if err != nil {
		return nil, errors.NewUpstreamError(err.Error(), err)
	}
	logger.GlobalLogger.Printf("Scraper returned %d properties", len(result.Properties))

	snapshot := s.buildSnapshot(result.Properties, result.Broker, result.ScrapedAt)
	if err := s.writeSnapshot(ctx, snapshot); err != nil {
		return nil, err
	}

	metrics.PropertiesIngestedTotal.WithLabelValues("pull").Add(float64(snapshot.PropertyCount))
	logger.GlobalLogger.Printf("Pull ingestion: received %d properties, kept %d",
		len(result.Properties), snapshot.PropertyCount)

	return &models.FetchResponse{
		Success:       true,
		Message:       fmt.Sprintf("Fetched and saved %d properties", snapshot.PropertyCount),
		PropertyCount: snapshot.PropertyCount,
		LastUpdated:   snapshot.LastUpdated.Format(time.RFC3339),
	}, nil
}

// buildSnapshot runs the pipeline over raw entries and assembles the
// replacement snapshot. Broker agency falls back to the configured default;
// scrapedAt passes through when the caller supplied one.
func (s *IngestService) buildSnapshot(raw []models.UpstreamProperty, broker *models.Broker, scrapedAt string) *models.Snapshot {
	properties := s.dedup.Dedupe(s.trans.TransformAll(raw))

	agency := s.agency
	if broker != nil && broker.Agency != "" {
		agency = broker.Agency
	}

	now := s.now().UTC().Truncate(time.Second)
	if scrapedAt == "" {
		scrapedAt = now.Format(time.RFC3339)
	}

	return &models.Snapshot{
		Success:       true,
		Broker:        &models.Broker{Name: s.brokerName, Agency: agency},
		Properties:    properties,
		PropertyCount: len(properties),
		LastUpdated:   &now,
		ScrapedAt:     scrapedAt,
	}
}

func (s *IngestService) writeSnapshot(ctx context.Context, snapshot *models.Snapshot) error {
	if err := s.store.Write(ctx, snapshot); err != nil {
		return errors.NewStoreError("snapshot write failed", err)
	}
	metrics.SnapshotWritesTotal.Inc()

	if s.cache != nil {
		if err := s.cache.Set(ctx, snapshot, snapshotCacheTTL); err != nil {
			// Stale cache is worse than no cache; drop the entry instead.
			if invErr := s.cache.Invalidate(ctx); invErr != nil {
				logger.GlobalLogger.Errorf("snapshot cache invalidation failed: %v", invErr)
			}
		}
	}
	return nil
}
