package entities

import (
	"time"

	"github.com/snacktrack-dev/snacktrack/internal/domain/values"
)

// VerdictReport represents the complete result of evaluating one
// ingredient list against one profile.
//
// Ordering guarantee: Findings holds exactly one entry per input
// ingredient, in input order, regardless of internal evaluation order.
type VerdictReport struct {
	ID        values.ScanID `json:"id" yaml:"id"`
	User      string        `json:"user" yaml:"user"`
	StartTime time.Time     `json:"start_time" yaml:"start_time"`
	Duration  time.Duration `json:"-" yaml:"-"`
	// DurationMS mirrors Duration in milliseconds for serialized output.
	DurationMS float64       `json:"duration_ms" yaml:"duration_ms"`
	Findings   []Finding     `json:"verdict" yaml:"verdict"`
	Failures   []RuleFailure `json:"rule_failures,omitempty" yaml:"rule_failures,omitempty"`
	Degraded   bool          `json:"degraded" yaml:"degraded"`
	Summary    ReportSummary `json:"summary" yaml:"summary"`
}

// RuleFailure records a rule that errored or panicked during evaluation.
// The failure is reported for observability but never aborts evaluation.
type RuleFailure struct {
	RuleID     string `json:"rule_id" yaml:"rule_id"`
	Ingredient string `json:"ingredient" yaml:"ingredient"`
	Message    string `json:"message" yaml:"message"`
}

// ReportSummary provides aggregate statistics about the evaluation.
type ReportSummary struct {
	Total   int `json:"total" yaml:"total"`
	Safe    int `json:"safe" yaml:"safe"`
	Caution int `json:"caution" yaml:"caution"`
	Avoid   int `json:"avoid" yaml:"avoid"`
}

// NewVerdictReport creates a report for the named profile with a fresh
// scan ID and start time.
func NewVerdictReport(user string) *VerdictReport {
	return &VerdictReport{
		ID:        values.NewScanID(),
		User:      user,
		StartTime: time.Now(),
		Findings:  make([]Finding, 0),
	}
}

// Finalize completes the report: sets duration, computes the summary
// and marks the report degraded when any rule failed.
func (r *VerdictReport) Finalize() {
	r.Duration = time.Since(r.StartTime)
	r.DurationMS = float64(r.Duration.Microseconds()) / 1000.0
	r.Degraded = len(r.Failures) > 0

	r.Summary = ReportSummary{Total: len(r.Findings)}
	for _, f := range r.Findings {
		switch f.Impact {
		case values.ImpactSafe:
			r.Summary.Safe++
		case values.ImpactCaution:
			r.Summary.Caution++
		case values.ImpactAvoid:
			r.Summary.Avoid++
		}
	}
}
