// Package values contains domain value objects that encapsulate
// primitive types with validation and such.
package values

import (
	"fmt"
	"strings"
)

// Impact represents the health impact verdict for a single ingredient.
// Enforces valid impact values and provides ordering for conflict resolution.
type Impact struct {
	value impactLevel
}

// impactLevel is the internal representation
type impactLevel int

const (
	impactSafe    impactLevel = 0
	impactCaution impactLevel = 1
	impactAvoid   impactLevel = 2
)

// Predefined impact values
var (
	ImpactSafe    = Impact{impactSafe}
	ImpactCaution = Impact{impactCaution}
	ImpactAvoid   = Impact{impactAvoid}
)

// ParseImpact creates an Impact from string
func ParseImpact(s string) (Impact, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "safe":
		return ImpactSafe, nil
	case "caution":
		return ImpactCaution, nil
	case "avoid":
		return ImpactAvoid, nil
	default:
		return Impact{}, fmt.Errorf("invalid impact: %s", s)
	}
}

// MustParseImpact creates an Impact or panics
func MustParseImpact(s string) Impact {
	impact, err := ParseImpact(s)
	if err != nil {
		panic(err)
	}
	return impact
}

// String returns the string representation
func (i Impact) String() string {
	switch i.value {
	case impactCaution:
		return "Caution"
	case impactAvoid:
		return "Avoid"
	default:
		return "Safe"
	}
}

// Level returns the numeric impact level (for ordering)
func (i Impact) Level() int {
	return int(i.value)
}

// IsHigherThan returns true if this impact is more severe than the other.
// Ordering: Avoid > Caution > Safe.
func (i Impact) IsHigherThan(other Impact) bool {
	return i.value > other.value
}

// Equals checks if two impacts are equal
func (i Impact) Equals(other Impact) bool {
	return i.value == other.value
}

// MarshalJSON implements json.Marshaler
func (i Impact) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (i *Impact) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) < 2 {
		return fmt.Errorf("invalid impact JSON")
	}
	str = str[1 : len(str)-1]

	impact, err := ParseImpact(str)
	if err != nil {
		return err
	}
	*i = impact
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (i Impact) MarshalYAML() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (i *Impact) UnmarshalYAML(data []byte) error {
	impact, err := ParseImpact(strings.Trim(string(data), `"'`))
	if err != nil {
		return err
	}
	*i = impact
	return nil
}
