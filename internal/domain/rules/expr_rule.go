package rules

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/snacktrack-dev/snacktrack/internal/domain/entities"
	"github.com/snacktrack-dev/snacktrack/internal/domain/values"
)

// RuleEnv exposes the ingredient and profile fields to rule expressions.
type RuleEnv struct {
	Ingredient  string   `expr:"ingredient"`
	Age         int      `expr:"age"`
	Gender      string   `expr:"gender"`
	Diet        string   `expr:"diet"`
	Conditions  []string `expr:"conditions"`
	Nationality string   `expr:"nationality"`
}

func newRuleEnv(profile *entities.Profile, ingredient string) RuleEnv {
	conditions := make([]string, 0, len(profile.HealthConditions))
	for _, c := range profile.HealthConditions {
		conditions = append(conditions, c.String())
	}
	return RuleEnv{
		Ingredient:  strings.ToLower(ingredient),
		Age:         profile.Age,
		Gender:      profile.Gender.String(),
		Diet:        profile.DietPreference.String(),
		Conditions:  conditions,
		Nationality: profile.Nationality,
	}
}

// exprOptions returns the compile options shared by all expression rules.
// The expression must yield a bool; a case-insensitive contains() helper
// is provided because ingredient text is free-form.
func exprOptions() []expr.Option {
	return []expr.Option{
		expr.Env(RuleEnv{}),
		expr.AsBool(),
		expr.Function("contains",
			func(params ...any) (any, error) {
				s, ok1 := params[0].(string)
				sub, ok2 := params[1].(string)
				if !ok1 || !ok2 {
					return nil, fmt.Errorf("contains expects two strings")
				}
				return strings.Contains(strings.ToLower(s), strings.ToLower(sub)), nil
			},
			new(func(string, string) bool),
		),
	}
}

// ExprRule is a rule whose predicate is a compiled expression over the
// ingredient text and profile fields. The program is compiled once at
// construction; evaluation never recompiles.
type ExprRule struct {
	id       string
	priority int
	impact   values.Impact
	reason   string
	program  *vm.Program
}

// NewExprRule compiles the `when` expression and returns the rule.
// A compile failure rejects the rule outright rather than deferring the
// error to evaluation time.
func NewExprRule(id string, priority int, impact values.Impact, reason, when string) (*ExprRule, error) {
	if id == "" {
		return nil, fmt.Errorf("rule ID cannot be empty")
	}
	if when == "" {
		return nil, fmt.Errorf("rule %s: when expression cannot be empty", id)
	}

	program, err := expr.Compile(when, exprOptions()...)
	if err != nil {
		return nil, fmt.Errorf("rule %s: failed to compile expression: %w", id, err)
	}

	return &ExprRule{
		id:       id,
		priority: priority,
		impact:   impact,
		reason:   reason,
		program:  program,
	}, nil
}

// ID returns the rule identifier.
func (r *ExprRule) ID() string { return r.id }

// Priority returns the rule priority.
func (r *ExprRule) Priority() int { return r.priority }

// Evaluate runs the compiled predicate against the profile and ingredient.
func (r *ExprRule) Evaluate(profile *entities.Profile, ingredient string) (*entities.Finding, error) {
	out, err := expr.Run(r.program, newRuleEnv(profile, ingredient))
	if err != nil {
		return nil, fmt.Errorf("rule %s: expression failed: %w", r.id, err)
	}

	matched, ok := out.(bool)
	if !ok {
		return nil, fmt.Errorf("rule %s: expression returned %T, want bool", r.id, out)
	}
	if !matched {
		return nil, nil
	}

	return &entities.Finding{
		Ingredient: ingredient,
		Impact:     r.impact,
		Reason:     r.reason,
		RuleID:     r.id,
	}, nil
}
