package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/snacktrack-dev/snacktrack/internal/domain/entities"
	"github.com/snacktrack-dev/snacktrack/internal/domain/repositories"
	"github.com/snacktrack-dev/snacktrack/internal/domain/values"
)

// Ensure interface compliance
var _ repositories.ScanRepository = (*ScanRepository)(nil)

// ScanRepository is a Redis-backed implementation of ScanRepository.
// Reports are stored as JSON documents; a per-user sorted set scored by
// start time supports newest-first and time-range queries.
type ScanRepository struct {
	client *redis.Client
}

// NewScanRepository creates a repository over an existing client.
func NewScanRepository(client *redis.Client) *ScanRepository {
	return &ScanRepository{client: client}
}

func scanKey(id values.ScanID) string {
	return "snacktrack:scan:" + id.String()
}

func userIndexKey(user string) string {
	return "snacktrack:scans:" + user
}

// Save persists a verdict report and indexes it by user and start time.
func (r *ScanRepository) Save(ctx context.Context, report *entities.VerdictReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, scanKey(report.ID), data, 0)
	pipe.ZAdd(ctx, userIndexKey(report.User), redis.Z{
		Score:  float64(report.StartTime.UnixNano()),
		Member: report.ID.String(),
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store report %s: %w", report.ID, err)
	}
	return nil
}

// FindByID retrieves a report by its scan ID.
func (r *ScanRepository) FindByID(ctx context.Context, id values.ScanID) (*entities.VerdictReport, error) {
	data, err := r.client.Get(ctx, scanKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repositories.ErrScanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch report %s: %w", id, err)
	}

	var report entities.VerdictReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to decode report %s: %w", id, err)
	}
	return &report, nil
}

// FindByUser retrieves recent reports for a profile name, newest first.
func (r *ScanRepository) FindByUser(ctx context.Context, user string, limit int) ([]*entities.VerdictReport, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}

	ids, err := r.client.ZRevRange(ctx, userIndexKey(user), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list reports for %s: %w", user, err)
	}

	return r.fetchAll(ctx, ids)
}

// FindBetween retrieves reports for a profile name within [start, end],
// newest first.
func (r *ScanRepository) FindBetween(ctx context.Context, user string, start, end time.Time) ([]*entities.VerdictReport, error) {
	ids, err := r.client.ZRevRangeByScore(ctx, userIndexKey(user), &redis.ZRangeBy{
		Min: strconv.FormatInt(start.UnixNano(), 10),
		Max: strconv.FormatInt(end.UnixNano(), 10),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list reports for %s: %w", user, err)
	}

	return r.fetchAll(ctx, ids)
}

// fetchAll resolves scan IDs to reports, skipping index entries whose
// document has been deleted out from under the index.
func (r *ScanRepository) fetchAll(ctx context.Context, ids []string) ([]*entities.VerdictReport, error) {
	reports := make([]*entities.VerdictReport, 0, len(ids))
	for _, raw := range ids {
		id, err := values.ParseScanID(raw)
		if err != nil {
			continue
		}
		report, err := r.FindByID(ctx, id)
		if errors.Is(err, repositories.ErrScanNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
