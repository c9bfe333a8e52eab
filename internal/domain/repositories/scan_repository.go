package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/snacktrack-dev/snacktrack/internal/domain/entities"
	"github.com/snacktrack-dev/snacktrack/internal/domain/values"
)

// Sentinel errors shared by all repository implementations.
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrScanNotFound    = errors.New("scan report not found")
)

// ScanRepository persists verdict reports for later retrieval.
type ScanRepository interface {
	// Save persists a verdict report.
	Save(ctx context.Context, report *entities.VerdictReport) error

	// FindByID retrieves a report by its scan ID. Returns ErrScanNotFound
	// when absent.
	FindByID(ctx context.Context, id values.ScanID) (*entities.VerdictReport, error)

	// FindByUser retrieves recent reports for a profile name, newest
	// first. A non-positive limit means no limit.
	FindByUser(ctx context.Context, user string, limit int) ([]*entities.VerdictReport, error)

	// FindBetween retrieves reports for a profile name within [start, end].
	FindBetween(ctx context.Context, user string, start, end time.Time) ([]*entities.VerdictReport, error)
}
