package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snacktrack-dev/snacktrack/internal/domain/entities"
	"github.com/snacktrack-dev/snacktrack/internal/domain/values"
)

func testProfile(diet values.DietPreference, conditions ...values.HealthCondition) *entities.Profile {
	return &entities.Profile{
		Name:             "Asha",
		Age:              34,
		Gender:           values.GenderFemale,
		HealthConditions: conditions,
		DietPreference:   diet,
		Language:         values.LangHindi,
		Nationality:      "Indian",
	}
}

func Test_AddedSugarRule(t *testing.T) {
	rule := &AddedSugarRule{}

	tests := []struct {
		name       string
		profile    *entities.Profile
		ingredient string
		wantMatch  bool
		wantReason string
	}{
		{
			name:       "plain sugar",
			profile:    testProfile(values.DietNonVegetarian),
			ingredient: "cane sugar",
			wantMatch:  true,
			wantReason: "Contains added sugar which may affect blood sugar levels",
		},
		{
			name:       "case insensitive",
			profile:    testProfile(values.DietNonVegetarian),
			ingredient: "SUGAR syrup",
			wantMatch:  true,
			wantReason: "Contains added sugar which may affect blood sugar levels",
		},
		{
			name:       "diabetic gets sharper reason",
			profile:    testProfile(values.DietNonVegetarian, values.ConditionDiabetes),
			ingredient: "brown sugar",
			wantMatch:  true,
			wantReason: "Contains added sugar; high risk for diabetic blood sugar control",
		},
		{
			name:       "no sugar token",
			profile:    testProfile(values.DietNonVegetarian),
			ingredient: "stevia extract",
			wantMatch:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finding, err := rule.Evaluate(tt.profile, tt.ingredient)
			require.NoError(t, err)

			if !tt.wantMatch {
				assert.Nil(t, finding)
				return
			}

			require.NotNil(t, finding)
			assert.Equal(t, tt.ingredient, finding.Ingredient)
			assert.True(t, finding.Impact.Equals(values.ImpactAvoid))
			assert.Equal(t, tt.wantReason, finding.Reason)
			assert.Equal(t, "added-sugar", finding.RuleID)
		})
	}
}

func Test_GlutenRule(t *testing.T) {
	rule := &GlutenRule{}

	t.Run("caution without celiac", func(t *testing.T) {
		finding, err := rule.Evaluate(testProfile(values.DietNonVegetarian), "wheat flour")
		require.NoError(t, err)
		require.NotNil(t, finding)
		assert.True(t, finding.Impact.Equals(values.ImpactCaution))
	})

	t.Run("avoid for celiac", func(t *testing.T) {
		finding, err := rule.Evaluate(testProfile(values.DietNonVegetarian, values.ConditionCeliac), "barley malt")
		require.NoError(t, err)
		require.NotNil(t, finding)
		assert.True(t, finding.Impact.Equals(values.ImpactAvoid))
		assert.Contains(t, finding.Reason, "celiac")
	})

	t.Run("no gluten token", func(t *testing.T) {
		finding, err := rule.Evaluate(testProfile(values.DietNonVegetarian), "rice flour")
		require.NoError(t, err)
		assert.Nil(t, finding)
	})
}

func Test_AnimalDerivedRule(t *testing.T) {
	rule := &AnimalDerivedRule{}

	tests := []struct {
		name       string
		diet       values.DietPreference
		ingredient string
		wantMatch  bool
	}{
		{"gelatin flagged for vegetarian", values.DietVegetarian, "pork gelatin", true},
		{"gelatin flagged for vegan", values.DietVegan, "gelatin", true},
		{"gelatin fine for non-vegetarian", values.DietNonVegetarian, "gelatin", false},
		{"whey flagged for vegan", values.DietVegan, "whey protein", true},
		{"whey fine for vegetarian", values.DietVegetarian, "whey protein", false},
		{"honey flagged for vegan", values.DietVegan, "wild honey", true},
		{"plant ingredient never flagged", values.DietVegan, "pea protein", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finding, err := rule.Evaluate(testProfile(tt.diet), tt.ingredient)
			require.NoError(t, err)

			if !tt.wantMatch {
				assert.Nil(t, finding)
				return
			}

			require.NotNil(t, finding)
			assert.True(t, finding.Impact.Equals(values.ImpactAvoid))
			assert.Equal(t, "animal-derived-diet", finding.RuleID)
		})
	}
}

func Test_SodiumRule(t *testing.T) {
	rule := &SodiumRule{}

	t.Run("caution without hypertension", func(t *testing.T) {
		finding, err := rule.Evaluate(testProfile(values.DietNonVegetarian), "sea salt")
		require.NoError(t, err)
		require.NotNil(t, finding)
		assert.True(t, finding.Impact.Equals(values.ImpactCaution))
	})

	t.Run("avoid for hypertension", func(t *testing.T) {
		finding, err := rule.Evaluate(testProfile(values.DietNonVegetarian, values.ConditionHypertension), "monosodium glutamate")
		require.NoError(t, err)
		require.NotNil(t, finding)
		assert.True(t, finding.Impact.Equals(values.ImpactAvoid))
	})

	t.Run("no sodium token", func(t *testing.T) {
		finding, err := rule.Evaluate(testProfile(values.DietNonVegetarian), "pepper")
		require.NoError(t, err)
		assert.Nil(t, finding)
	})
}
