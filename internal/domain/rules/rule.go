// Package rules defines the Rule contract, the built-in rule set and the
// process-wide rule registry.
package rules

import (
	"strings"

	"github.com/snacktrack-dev/snacktrack/internal/domain/entities"
)

// Rule is a pure unit of domain knowledge: it evaluates one ingredient
// against one profile and yields an optional finding.
//
// Contract:
// - Evaluate must be a pure function of its inputs (no side effects,
//   no shared mutable state), so evaluation order cannot affect outcomes.
// - "No opinion" is (nil, nil), never an error. Malformed ingredient
//   text yields no opinion.
// - A returned error (or a panic, which the engine recovers) drops only
//   this rule's contribution; evaluation continues.
type Rule interface {
	// ID uniquely identifies the rule within a registry.
	ID() string

	// Priority orders rules within the registry. Higher runs first and
	// wins ties between findings of equal impact.
	Priority() int

	// Evaluate inspects one ingredient for one profile.
	Evaluate(profile *entities.Profile, ingredient string) (*entities.Finding, error)
}

// containsToken reports whether the ingredient text contains any of the
// given tokens, case-insensitively. Ingredients are free text and are
// never normalized upstream, so matching happens on the lowered string.
func containsToken(ingredient string, tokens []string) (string, bool) {
	lowered := strings.ToLower(ingredient)
	for _, tok := range tokens {
		if strings.Contains(lowered, tok) {
			return tok, true
		}
	}
	return "", false
}
