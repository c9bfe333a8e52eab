package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/snacktrack-dev/snacktrack/internal/domain/entities"
	"github.com/snacktrack-dev/snacktrack/internal/domain/repositories"
	"github.com/snacktrack-dev/snacktrack/internal/domain/values"
)

// Ensure interface compliance
var _ repositories.ScanRepository = (*ScanRepository)(nil)

// ScanRepository is an in-memory implementation of ScanRepository.
type ScanRepository struct {
	reports map[values.ScanID]*entities.VerdictReport
	mu      sync.RWMutex
}

// NewScanRepository creates a new in-memory repository.
func NewScanRepository() *ScanRepository {
	return &ScanRepository{
		reports: make(map[values.ScanID]*entities.VerdictReport),
	}
}

// Save persists a verdict report.
func (r *ScanRepository) Save(_ context.Context, report *entities.VerdictReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Callers should not modify the report after saving.
	r.reports[report.ID] = report
	return nil
}

// FindByID retrieves a report by its scan ID.
func (r *ScanRepository) FindByID(_ context.Context, id values.ScanID) (*entities.VerdictReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, ok := r.reports[id]
	if !ok {
		return nil, repositories.ErrScanNotFound
	}
	return report, nil
}

// FindByUser retrieves recent reports for a profile name, newest first.
func (r *ScanRepository) FindByUser(_ context.Context, user string, limit int) ([]*entities.VerdictReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*entities.VerdictReport
	for _, report := range r.reports {
		if report.User == user {
			matches = append(matches, report)
		}
	}

	// Sort by start time descending (newest first)
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].StartTime.After(matches[j].StartTime)
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	return matches, nil
}

// FindBetween retrieves reports for a profile name within [start, end].
func (r *ScanRepository) FindBetween(_ context.Context, user string, start, end time.Time) ([]*entities.VerdictReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*entities.VerdictReport
	for _, report := range r.reports {
		if report.User != user {
			continue
		}
		if (report.StartTime.Equal(start) || report.StartTime.After(start)) &&
			(report.StartTime.Equal(end) || report.StartTime.Before(end)) {
			matches = append(matches, report)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].StartTime.After(matches[j].StartTime)
	})

	return matches, nil
}
