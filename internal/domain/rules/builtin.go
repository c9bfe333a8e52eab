package rules

import (
	"fmt"

	"github.com/snacktrack-dev/snacktrack/internal/domain/entities"
	"github.com/snacktrack-dev/snacktrack/internal/domain/values"
)

// BuiltinRules returns the built-in rule set in descending priority order.
func BuiltinRules() []Rule {
	return []Rule{
		&AddedSugarRule{},
		&GlutenRule{},
		&AnimalDerivedRule{},
		&SodiumRule{},
	}
}

// AddedSugarRule flags ingredients that contain added sugar.
// Diabetic profiles get a sharper verdict reason.
type AddedSugarRule struct{}

func (r *AddedSugarRule) ID() string    { return "added-sugar" }
func (r *AddedSugarRule) Priority() int { return 40 }

func (r *AddedSugarRule) Evaluate(profile *entities.Profile, ingredient string) (*entities.Finding, error) {
	if _, ok := containsToken(ingredient, []string{"sugar"}); !ok {
		return nil, nil
	}

	reason := "Contains added sugar which may affect blood sugar levels"
	if profile.HasCondition(values.ConditionDiabetes) {
		reason = "Contains added sugar; high risk for diabetic blood sugar control"
	}

	return &entities.Finding{
		Ingredient: ingredient,
		Impact:     values.ImpactAvoid,
		Reason:     reason,
		RuleID:     r.ID(),
	}, nil
}

// GlutenRule flags gluten-bearing grains. Avoid for celiac profiles,
// Caution otherwise.
type GlutenRule struct{}

var glutenTokens = []string{"gluten", "wheat", "barley", "rye", "malt"}

func (r *GlutenRule) ID() string    { return "gluten-celiac" }
func (r *GlutenRule) Priority() int { return 30 }

func (r *GlutenRule) Evaluate(profile *entities.Profile, ingredient string) (*entities.Finding, error) {
	tok, ok := containsToken(ingredient, glutenTokens)
	if !ok {
		return nil, nil
	}

	impact := values.ImpactCaution
	reason := fmt.Sprintf("Contains gluten source (%s)", tok)
	if profile.HasCondition(values.ConditionCeliac) {
		impact = values.ImpactAvoid
		reason = fmt.Sprintf("Contains gluten source (%s); unsafe for celiac disease", tok)
	}

	return &entities.Finding{
		Ingredient: ingredient,
		Impact:     impact,
		Reason:     reason,
		RuleID:     r.ID(),
	}, nil
}

// AnimalDerivedRule flags animal-derived ingredients against vegan and
// vegetarian diet preferences. Non-vegetarian profiles get no opinion.
type AnimalDerivedRule struct{}

var (
	// Excluded by both vegan and vegetarian diets.
	meatTokens = []string{"gelatin", "gelatine", "lard", "tallow", "rennet", "anchovy", "fish", "chicken", "beef", "pork"}
	// Excluded by vegan diets only.
	dairyEggTokens = []string{"whey", "casein", "milk", "butter", "ghee", "egg", "honey"}
)

func (r *AnimalDerivedRule) ID() string    { return "animal-derived-diet" }
func (r *AnimalDerivedRule) Priority() int { return 20 }

func (r *AnimalDerivedRule) Evaluate(profile *entities.Profile, ingredient string) (*entities.Finding, error) {
	if !profile.DietPreference.ExcludesMeat() {
		return nil, nil
	}

	if tok, ok := containsToken(ingredient, meatTokens); ok {
		return &entities.Finding{
			Ingredient: ingredient,
			Impact:     values.ImpactAvoid,
			Reason:     fmt.Sprintf("Contains animal-derived ingredient (%s) excluded by a %s diet", tok, profile.DietPreference),
			RuleID:     r.ID(),
		}, nil
	}

	if tok, ok := containsToken(ingredient, dairyEggTokens); ok && profile.DietPreference.ExcludesAnimalProducts() {
		return &entities.Finding{
			Ingredient: ingredient,
			Impact:     values.ImpactAvoid,
			Reason:     fmt.Sprintf("Contains animal product (%s) excluded by a vegan diet", tok),
			RuleID:     r.ID(),
		}, nil
	}

	return nil, nil
}

// SodiumRule flags high-sodium markers. Avoid for hypertensive profiles,
// Caution otherwise.
type SodiumRule struct{}

var sodiumTokens = []string{"salt", "sodium", "msg", "monosodium", "brine"}

func (r *SodiumRule) ID() string    { return "sodium-hypertension" }
func (r *SodiumRule) Priority() int { return 10 }

func (r *SodiumRule) Evaluate(profile *entities.Profile, ingredient string) (*entities.Finding, error) {
	tok, ok := containsToken(ingredient, sodiumTokens)
	if !ok {
		return nil, nil
	}

	impact := values.ImpactCaution
	reason := fmt.Sprintf("High sodium marker (%s)", tok)
	if profile.HasCondition(values.ConditionHypertension) {
		impact = values.ImpactAvoid
		reason = fmt.Sprintf("High sodium marker (%s); may raise blood pressure", tok)
	}

	return &entities.Finding{
		Ingredient: ingredient,
		Impact:     impact,
		Reason:     reason,
		RuleID:     r.ID(),
	}, nil
}
