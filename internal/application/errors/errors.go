// Package apperrors defines application-level error types.
package apperrors

import (
	"fmt"
)

// InvalidProfileError indicates profile validation failed. Fatal to the
// request, surfaced as a client error; never fatal to the process.
type InvalidProfileError struct {
	Issues []string // One entry per violated invariant
}

func (e *InvalidProfileError) Error() string {
	if len(e.Issues) == 1 {
		return fmt.Sprintf("invalid profile: %s", e.Issues[0])
	}
	return fmt.Sprintf("invalid profile: %d issues", len(e.Issues))
}

// NewInvalidProfileError creates a new invalid profile error.
func NewInvalidProfileError(issues ...string) *InvalidProfileError {
	return &InvalidProfileError{Issues: issues}
}

// RuleEvaluationError indicates an isolated per-rule failure. Recovered
// locally: evaluation continues and the failure is recorded for
// observability, never surfaced verbatim to the caller.
type RuleEvaluationError struct {
	Cause      error
	RuleID     string
	Ingredient string
}

func (e *RuleEvaluationError) Error() string {
	return fmt.Sprintf("rule %s failed on ingredient %q: %v", e.RuleID, e.Ingredient, e.Cause)
}

func (e *RuleEvaluationError) Unwrap() error {
	return e.Cause
}

// NewRuleEvaluationError creates a new rule evaluation error.
func NewRuleEvaluationError(ruleID, ingredient string, cause error) *RuleEvaluationError {
	return &RuleEvaluationError{
		RuleID:     ruleID,
		Ingredient: ingredient,
		Cause:      cause,
	}
}

// NotFoundError indicates a requested resource does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// NewNotFoundError creates a new not found error.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConfigurationError indicates system config or setup issue.
type ConfigurationError struct {
	Cause   error
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (%s): %s: %v", e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}
