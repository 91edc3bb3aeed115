// Package scheduler triggers pull-mode ingestion on a cron schedule, so
// the site can refresh its listings without an external cron caller.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"alexsimon-listings/internal/services"
	"alexsimon-listings/pkg/logger"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	ingest   *services.IngestService
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
}

func New(ingest *services.IngestService, schedule string, timeout time.Duration) *Scheduler {
	return &Scheduler{
		ingest:   ingest,
		schedule: schedule,
		timeout:  timeout,
		cron:     cron.New(),
	}
}

// Start registers the scheduled run. A failed run only logs; the previous
// snapshot stays authoritative and the next tick retries.
func (s *Scheduler) Start() error {
	if s.schedule == "" {
		return nil
	}

	_, err := s.cron.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		resp, err := s.ingest.IngestFromScraper(ctx)
		if err != nil {
			logger.GlobalLogger.Errorf("Scheduled ingestion failed: %v", err)
			return
		}
		logger.GlobalLogger.Printf("Scheduled ingestion: %s", resp.Message)
	})
	if err != nil {
		return fmt.Errorf("invalid cron expression %q: %v", s.schedule, err)
	}

	logger.GlobalLogger.Printf("Starting ingestion scheduler with cron: %s", s.schedule)
	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
