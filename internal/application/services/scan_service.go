// Package services contains application services that orchestrate the
// domain: they wire validation, evaluation and persistence for one use
// case each.
package services

import (
	"context"
	"errors"
	"log/slog"

	apperrors "github.com/snacktrack-dev/snacktrack/internal/application/errors"
	"github.com/snacktrack-dev/snacktrack/internal/domain/entities"
	"github.com/snacktrack-dev/snacktrack/internal/domain/repositories"
	"github.com/snacktrack-dev/snacktrack/internal/domain/values"
	"github.com/snacktrack-dev/snacktrack/internal/engine"
)

// ScanService orchestrates one ingredient scan: validate the profile,
// evaluate, persist the report, return it.
type ScanService struct {
	evaluator *engine.Evaluator
	scans     repositories.ScanRepository
}

// NewScanService creates a scan service. The scan repository may be nil,
// in which case reports are not persisted.
func NewScanService(evaluator *engine.Evaluator, scans repositories.ScanRepository) *ScanService {
	return &ScanService{
		evaluator: evaluator,
		scans:     scans,
	}
}

// Scan evaluates the ingredient list against the profile.
//
// An invalid profile fails the request with *apperrors.InvalidProfileError.
// Individual rule failures are logged and recorded on the report, never
// surfaced as request errors. Persistence is best-effort: a storage
// failure is logged but the caller still receives the report.
func (s *ScanService) Scan(ctx context.Context, profile *entities.Profile, ingredients []string) (*entities.VerdictReport, error) {
	if err := profile.Validate(); err != nil {
		var validationErr *entities.ProfileValidationError
		if errors.As(err, &validationErr) {
			return nil, &apperrors.InvalidProfileError{Issues: validationErr.Issues}
		}
		return nil, err
	}

	report, err := s.evaluator.Evaluate(ctx, profile, ingredients)
	if err != nil {
		return nil, err
	}

	for _, failure := range report.Failures {
		slog.Warn("rule failed during evaluation",
			"rule", failure.RuleID,
			"ingredient", failure.Ingredient,
			"error", failure.Message)
	}

	if s.scans != nil {
		if err := s.scans.Save(ctx, report); err != nil {
			slog.Error("failed to persist scan report", "scan_id", report.ID, "error", err)
		}
	}

	return report, nil
}

// History returns recent reports for a profile name, newest first.
func (s *ScanService) History(ctx context.Context, user string, limit int) ([]*entities.VerdictReport, error) {
	if s.scans == nil {
		return nil, nil
	}
	return s.scans.FindByUser(ctx, user, limit)
}

// Report retrieves one stored report by scan ID.
func (s *ScanService) Report(ctx context.Context, rawID string) (*entities.VerdictReport, error) {
	if s.scans == nil {
		return nil, apperrors.NewNotFoundError("scan", rawID)
	}

	id, err := values.ParseScanID(rawID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("scan", rawID)
	}

	report, err := s.scans.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrScanNotFound) {
		return nil, apperrors.NewNotFoundError("scan", rawID)
	}
	return report, err
}
