package values

import "fmt"

// Gender represents the gender declared on a consumer profile.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Validate returns an error if the gender value is invalid
func (g Gender) Validate() error {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return nil
	default:
		return fmt.Errorf("invalid gender: %s", g)
	}
}

// String returns the string representation
func (g Gender) String() string {
	return string(g)
}
