package rules

import (
	"fmt"
	"sort"
)

// Registry holds the process-wide rule set.
//
// Lifecycle: populated once during a quiesced initialization phase, then
// frozen. After Freeze the registry is effectively immutable, so
// concurrent reads during evaluation need no locking. Late registration
// is rejected rather than silently ignored.
type Registry struct {
	rules  []Rule
	frozen bool
}

// NewRegistry creates an empty, unfrozen registry.
func NewRegistry() *Registry {
	return &Registry{rules: make([]Rule, 0)}
}

// Register adds a rule to the registry. Registration order is preserved
// and breaks ties between rules of equal priority.
func (r *Registry) Register(rule Rule) error {
	if r.frozen {
		return fmt.Errorf("registry is frozen, cannot register rule %s", rule.ID())
	}
	if rule.ID() == "" {
		return fmt.Errorf("rule ID cannot be empty")
	}
	for _, existing := range r.rules {
		if existing.ID() == rule.ID() {
			return fmt.Errorf("duplicate rule ID: %s", rule.ID())
		}
	}
	r.rules = append(r.rules, rule)
	return nil
}

// Freeze sorts the rule set into its final evaluation order (priority
// descending, registration order on ties) and rejects all further
// registration. Idempotent.
func (r *Registry) Freeze() {
	if r.frozen {
		return
	}
	sort.SliceStable(r.rules, func(i, j int) bool {
		return r.rules[i].Priority() > r.rules[j].Priority()
	})
	r.frozen = true
}

// Frozen reports whether the registry has been frozen.
func (r *Registry) Frozen() bool {
	return r.frozen
}

// Rules returns the rule set in evaluation order. Must only be called
// after Freeze; the returned slice must not be mutated.
func (r *Registry) Rules() []Rule {
	return r.rules
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	return len(r.rules)
}

// DefaultRegistry builds a frozen registry holding the built-in rule set.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	for _, rule := range BuiltinRules() {
		// Built-in IDs are unique by construction.
		if err := reg.Register(rule); err != nil {
			panic(err)
		}
	}
	reg.Freeze()
	return reg
}
