package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snacktrack-dev/snacktrack/internal/domain/values"
)

func Test_NewExprRule(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		when    string
		wantErr bool
	}{
		{"valid predicate", "r1", `contains(ingredient, "sugar")`, false},
		{"profile fields available", "r2", `age > 18 && diet == "vegan"`, false},
		{"condition membership", "r3", `"diabetes" in conditions`, false},
		{"empty id", "", `true`, true},
		{"empty expression", "r4", "", true},
		{"syntax error", "r5", `contains(`, true},
		{"non-bool expression", "r6", `ingredient`, true},
		{"unknown variable", "r7", `brand == "x"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := NewExprRule(tt.id, 10, values.ImpactCaution, "reason", tt.when)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.id, rule.ID())
				assert.Equal(t, 10, rule.Priority())
			}
		})
	}
}

func Test_ExprRule_Evaluate(t *testing.T) {
	rule, err := NewExprRule("caffeine-hypertension", 5, values.ImpactCaution,
		"Caffeine can raise blood pressure",
		`contains(ingredient, "caffeine") && ("hypertension" in conditions)`)
	require.NoError(t, err)

	t.Run("matches when predicate holds", func(t *testing.T) {
		profile := testProfile(values.DietNonVegetarian, values.ConditionHypertension)

		finding, err := rule.Evaluate(profile, "Caffeine Anhydrous")
		require.NoError(t, err)
		require.NotNil(t, finding)
		assert.Equal(t, "Caffeine Anhydrous", finding.Ingredient)
		assert.True(t, finding.Impact.Equals(values.ImpactCaution))
		assert.Equal(t, "caffeine-hypertension", finding.RuleID)
	})

	t.Run("no finding when condition absent", func(t *testing.T) {
		profile := testProfile(values.DietNonVegetarian)

		finding, err := rule.Evaluate(profile, "caffeine")
		require.NoError(t, err)
		assert.Nil(t, finding)
	})

	t.Run("no finding when ingredient differs", func(t *testing.T) {
		profile := testProfile(values.DietNonVegetarian, values.ConditionHypertension)

		finding, err := rule.Evaluate(profile, "chicory root")
		require.NoError(t, err)
		assert.Nil(t, finding)
	})
}

func Test_ExprRule_ContainsIsCaseInsensitive(t *testing.T) {
	rule, err := NewExprRule("dye", 1, values.ImpactCaution, "synthetic dye",
		`contains(ingredient, "Red 40")`)
	require.NoError(t, err)

	finding, err := rule.Evaluate(testProfile(values.DietNonVegetarian), "RED 40 LAKE")
	require.NoError(t, err)
	assert.NotNil(t, finding)
}

func Test_ContainsToken(t *testing.T) {
	tok, ok := containsToken("Monosodium Glutamate", []string{"salt", "msg", "monosodium"})
	require.True(t, ok)
	assert.Equal(t, "monosodium", tok)

	_, ok = containsToken("pepper", []string{"salt", "msg"})
	assert.False(t, ok)
}
