// Package services contains domain services that encapsulate business logic
// spanning multiple entities. These services are stateless and pure.
package services

import (
	"github.com/snacktrack-dev/snacktrack/internal/domain/entities"
)

// VerdictAggregator resolves per-ingredient finding conflicts and builds
// the final, order-preserving report. No I/O.
type VerdictAggregator struct{}

// NewVerdictAggregator creates a new verdict aggregator service.
func NewVerdictAggregator() *VerdictAggregator {
	return &VerdictAggregator{}
}

// Resolve reduces all findings produced for one ingredient to a single
// verdict.
//
// Business Rule: severity precedence for conflicting findings
// - The finding with the highest impact wins (Avoid > Caution > Safe)
// - On equal impact, the earliest finding wins. Findings arrive in
//   registry order (priority descending, then registration order), so
//   the tie-break is deterministic and reproducible.
// - No findings at all → the default Safe verdict.
func (a *VerdictAggregator) Resolve(ingredient string, findings []entities.Finding) entities.Finding {
	if len(findings) == 0 {
		return entities.DefaultFinding(ingredient)
	}

	winner := findings[0]
	for _, f := range findings[1:] {
		if f.Impact.IsHigherThan(winner.Impact) {
			winner = f
		}
	}
	return winner
}

// Aggregate completes a report from resolved per-ingredient verdicts.
// Findings must already be in input-ingredient order; Aggregate preserves
// that order and computes summary counts.
func (a *VerdictAggregator) Aggregate(report *entities.VerdictReport, findings []entities.Finding, failures []entities.RuleFailure) {
	report.Findings = append(report.Findings, findings...)
	report.Failures = append(report.Failures, failures...)
	report.Finalize()
}
