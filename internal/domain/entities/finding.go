package entities

import "github.com/snacktrack-dev/snacktrack/internal/domain/values"

// DefaultSafeReason is the reason attached when no rule has an opinion
// about an ingredient.
const DefaultSafeReason = "No matching rule; no known risk detected."

// Finding is the per-ingredient outcome produced by one rule, or the
// resolved verdict for one ingredient after conflict resolution.
// Findings are value objects (immutable once produced).
type Finding struct {
	Ingredient string        `json:"ingredient" yaml:"ingredient"`
	Impact     values.Impact `json:"impact" yaml:"impact"`
	Reason     string        `json:"reason" yaml:"reason"`
	RuleID     string        `json:"rule_id,omitempty" yaml:"rule_id,omitempty"`
}

// DefaultFinding returns the verdict used when no registered rule
// produced a finding for the ingredient.
func DefaultFinding(ingredient string) Finding {
	return Finding{
		Ingredient: ingredient,
		Impact:     values.ImpactSafe,
		Reason:     DefaultSafeReason,
	}
}
