package values

import "fmt"

// DietPreference represents the dietary practice declared on a profile.
// It participates in rule evaluation: animal-derived ingredient rules key
// off this value.
type DietPreference string

const (
	DietVegan         DietPreference = "vegan"
	DietVegetarian    DietPreference = "vegetarian"
	DietNonVegetarian DietPreference = "non-vegetarian"
)

// Validate returns an error if the diet preference value is invalid
func (d DietPreference) Validate() error {
	switch d {
	case DietVegan, DietVegetarian, DietNonVegetarian:
		return nil
	default:
		return fmt.Errorf("invalid diet preference: %s", d)
	}
}

// String returns the string representation
func (d DietPreference) String() string {
	return string(d)
}

// ExcludesAnimalProducts returns true for diets that exclude all
// animal-derived ingredients.
func (d DietPreference) ExcludesAnimalProducts() bool {
	return d == DietVegan
}

// ExcludesMeat returns true for diets that exclude meat-derived
// ingredients (vegan and vegetarian).
func (d DietPreference) ExcludesMeat() bool {
	return d == DietVegan || d == DietVegetarian
}
