// Package engine coordinates rule evaluation over ingredient lists.
package engine

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/snacktrack-dev/snacktrack/internal/application/errors"
	"github.com/snacktrack-dev/snacktrack/internal/domain/entities"
	"github.com/snacktrack-dev/snacktrack/internal/domain/rules"
	"github.com/snacktrack-dev/snacktrack/internal/domain/services"
)

// Evaluator runs every registered rule against each ingredient, resolves
// conflicting findings and produces one final report.
//
// The registry is frozen at construction: evaluation only ever sees an
// immutable rule set, so concurrent evaluations share it without locking.
type Evaluator struct {
	registry   *rules.Registry
	aggregator *services.VerdictAggregator
	config     Config
}

// NewEvaluator creates an evaluator over the given registry and freezes it.
func NewEvaluator(registry *rules.Registry, cfg Config) *Evaluator {
	registry.Freeze()
	return &Evaluator{
		registry:   registry,
		aggregator: services.NewVerdictAggregator(),
		config:     cfg,
	}
}

// Evaluate produces a verdict report for the profile and ingredient list.
//
// Guarantees:
// - Findings are in input order, one per ingredient, regardless of
//   internal evaluation order.
// - An empty ingredient list yields an empty report, not an error.
// - A rule error or panic drops only that rule's contribution for that
//   ingredient; the failure is recorded on the report and evaluation
//   continues.
//
// Cancellation is observed between ingredients, never mid-rule.
func (e *Evaluator) Evaluate(ctx context.Context, profile *entities.Profile, ingredients []string) (*entities.VerdictReport, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	report := entities.NewVerdictReport(profile.Name)

	if len(ingredients) == 0 {
		report.Finalize()
		return report, nil
	}

	// Each goroutine writes to a unique index, so no mutex is needed and
	// input order survives parallel evaluation.
	findings := make([]entities.Finding, len(ingredients))
	failures := make([][]entities.RuleFailure, len(ingredients))

	if e.config.Parallel && len(ingredients) > 1 {
		g, gctx := errgroup.WithContext(ctx)
		if e.config.MaxConcurrentIngredients > 0 {
			g.SetLimit(e.config.MaxConcurrentIngredients)
		}

		for i, ingredient := range ingredients {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				findings[i], failures[i] = e.evaluateIngredient(profile, ingredient)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("evaluation cancelled: %w", err)
		}
	} else {
		for i, ingredient := range ingredients {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("evaluation cancelled: %w", err)
			}
			findings[i], failures[i] = e.evaluateIngredient(profile, ingredient)
		}
	}

	flat := make([]entities.RuleFailure, 0)
	for _, fs := range failures {
		flat = append(flat, fs...)
	}

	e.aggregator.Aggregate(report, findings, flat)
	return report, nil
}

// evaluateIngredient runs every rule against one ingredient and resolves
// the candidate findings to a single verdict.
func (e *Evaluator) evaluateIngredient(profile *entities.Profile, ingredient string) (entities.Finding, []entities.RuleFailure) {
	var candidates []entities.Finding
	var failed []entities.RuleFailure

	for _, rule := range e.registry.Rules() {
		finding, err := runRule(rule, profile, ingredient)
		if err != nil {
			// RuleID and Ingredient are recorded as fields, so the
			// message only carries the underlying cause.
			msg := err.Error()
			var ruleErr *apperrors.RuleEvaluationError
			if errors.As(err, &ruleErr) {
				msg = ruleErr.Cause.Error()
			}
			failed = append(failed, entities.RuleFailure{
				RuleID:     rule.ID(),
				Ingredient: ingredient,
				Message:    msg,
			})
			continue
		}
		if finding != nil {
			candidates = append(candidates, *finding)
		}
	}

	return e.aggregator.Resolve(ingredient, candidates), failed
}

// runRule invokes a rule, converting a panic into an error so one
// misbehaving rule cannot abort the evaluation. Failures come back as
// *apperrors.RuleEvaluationError carrying the rule and ingredient.
func runRule(rule rules.Rule, profile *entities.Profile, ingredient string) (finding *entities.Finding, err error) {
	defer func() {
		if r := recover(); r != nil {
			finding = nil
			err = apperrors.NewRuleEvaluationError(rule.ID(), ingredient, fmt.Errorf("rule panicked: %v", r))
		}
	}()

	finding, evalErr := rule.Evaluate(profile, ingredient)
	if evalErr != nil {
		return nil, apperrors.NewRuleEvaluationError(rule.ID(), ingredient, evalErr)
	}
	return finding, nil
}
