// Package entities contains domain entities for the SnackTrack domain model.
// These are pure domain types with NO infrastructure dependencies.
package entities

import (
	"fmt"

	"github.com/snacktrack-dev/snacktrack/internal/domain/values"
)

// Profile represents a consumer health profile.
//
// Profiles arrive per request (or from a keyed store) and are treated as
// immutable values during evaluation: rules read from a profile, never
// write to it.
//
// Invariants Enforced:
// - Name is required
// - Age is non-negative
// - HeightCM and WeightKG, when present, are positive
// - All enum fields carry valid values
type Profile struct {
	Name             string                   `json:"name" yaml:"name"`
	Age              int                      `json:"age" yaml:"age"`
	Gender           values.Gender            `json:"gender" yaml:"gender"`
	HeightCM         *float64                 `json:"height_cm,omitempty" yaml:"height_cm,omitempty"`
	WeightKG         *float64                 `json:"weight_kg,omitempty" yaml:"weight_kg,omitempty"`
	HealthConditions []values.HealthCondition `json:"health_conditions" yaml:"health_conditions"`
	DietPreference   values.DietPreference    `json:"diet_preference" yaml:"diet_preference"`
	Language         values.Language          `json:"language" yaml:"language"`
	Nationality      string                   `json:"nationality" yaml:"nationality"`
}

// Validate validates the profile and reports every violation, not just
// the first one. Returns a *ProfileValidationError on failure.
func (p *Profile) Validate() error {
	var issues []string

	if p.Name == "" {
		issues = append(issues, "name cannot be empty")
	}
	if p.Age < 0 {
		issues = append(issues, fmt.Sprintf("age must be non-negative, got %d", p.Age))
	}
	if err := p.Gender.Validate(); err != nil {
		issues = append(issues, err.Error())
	}
	if p.HeightCM != nil && *p.HeightCM <= 0 {
		issues = append(issues, fmt.Sprintf("height_cm must be positive, got %v", *p.HeightCM))
	}
	if p.WeightKG != nil && *p.WeightKG <= 0 {
		issues = append(issues, fmt.Sprintf("weight_kg must be positive, got %v", *p.WeightKG))
	}
	for _, cond := range p.HealthConditions {
		if err := cond.Validate(); err != nil {
			issues = append(issues, err.Error())
		}
	}
	if err := p.DietPreference.Validate(); err != nil {
		issues = append(issues, err.Error())
	}
	if err := p.Language.Validate(); err != nil {
		issues = append(issues, err.Error())
	}

	if len(issues) > 0 {
		return &ProfileValidationError{Issues: issues}
	}
	return nil
}

// HasCondition checks whether the profile declares the given condition.
func (p *Profile) HasCondition(cond values.HealthCondition) bool {
	for _, c := range p.HealthConditions {
		if c == cond {
			return true
		}
	}
	return false
}
