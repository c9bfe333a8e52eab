package values

import "fmt"

// HealthCondition represents a diagnosed condition declared on a profile.
// Conditions sharpen rule verdicts (e.g. sugar for diabetics) but never
// rank against each other; only Impact severity orders findings.
type HealthCondition string

const (
	ConditionDiabetes     HealthCondition = "diabetes"
	ConditionHypertension HealthCondition = "hypertension"
	ConditionCeliac       HealthCondition = "celiac"
	ConditionNone         HealthCondition = "none"
)

// Validate returns an error if the condition value is invalid
func (c HealthCondition) Validate() error {
	switch c {
	case ConditionDiabetes, ConditionHypertension, ConditionCeliac, ConditionNone:
		return nil
	default:
		return fmt.Errorf("invalid health condition: %s", c)
	}
}

// String returns the string representation
func (c HealthCondition) String() string {
	return string(c)
}
