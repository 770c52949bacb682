package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/bloglist/internal/logger"
	"github.com/sbilibin2017/bloglist/internal/models"
)

const statsCacheKey = "blog_stats"

// StatsCacheRepository caches the aggregated blog report in Redis.
type StatsCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached report
}

// NewStatsCacheRepository creates a new repository instance with the given TTL.
func NewStatsCacheRepository(client *redis.Client, expiration time.Duration) *StatsCacheRepository {
	return &StatsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached report, or models.ErrNotFound when nothing is cached.
func (r *StatsCacheRepository) Get(ctx context.Context) (models.Report, error) {
	val, err := r.client.Get(ctx, statsCacheKey).Bytes()

	logger.Log.Infow("redis operation",
		"key", statsCacheKey,
		"result", len(val),
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return models.Report{}, models.ErrNotFound
	}
	if err != nil {
		return models.Report{}, err
	}

	var report models.Report
	if err := json.Unmarshal(val, &report); err != nil {
		return models.Report{}, err
	}
	return report, nil
}

// Set caches the report with the repository TTL.
func (r *StatsCacheRepository) Set(ctx context.Context, report models.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, statsCacheKey, data, r.exp).Err()

	logger.Log.Infow("redis operation",
		"key", statsCacheKey,
		"value", string(data),
		"error", err,
	)

	return err
}

// Invalidate drops the cached report.
func (r *StatsCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, statsCacheKey).Err()

	logger.Log.Infow("redis operation",
		"key", statsCacheKey,
		"result", "deleted",
		"error", err,
	)

	return err
}
