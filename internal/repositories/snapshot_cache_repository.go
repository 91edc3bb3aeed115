package repositories

import (
	"context"
	"encoding/json"
	"time"

	"alexsimon-listings/internal/models"
	"alexsimon-listings/pkg/cache"
	"alexsimon-listings/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

type snapshotCache struct {
	client *redis.Client
}

func NewSnapshotCache(client *redis.Client) SnapshotCache {
	return &snapshotCache{client: client}
}

func (c *snapshotCache) Get(ctx context.Context) (*models.Snapshot, error) {
	start := time.Now()
	data, err := c.client.Get(ctx, cache.SnapshotKey()).Result()
	metrics.RedisOperationDuration.WithLabelValues("get").Observe(time.Since(start).Seconds())
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get").Inc()
		return nil, err
	}
	var snapshot models.Snapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *snapshotCache) Set(ctx context.Context, snapshot *models.Snapshot, expiration time.Duration) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	start := time.Now()
	err = c.client.Set(ctx, cache.SnapshotKey(), data, expiration).Err()
	metrics.RedisOperationDuration.WithLabelValues("set").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set").Inc()
		return err
	}
	return nil
}

func (c *snapshotCache) Invalidate(ctx context.Context) error {
	start := time.Now()
	err := c.client.Del(ctx, cache.SnapshotKey()).Err()
	metrics.RedisOperationDuration.WithLabelValues("del").Observe(time.Since(start).Seconds())
	if err != nil && err != redis.Nil {
		metrics.RedisErrorsTotal.WithLabelValues("del").Inc()
		return err
	}
	return nil
}
