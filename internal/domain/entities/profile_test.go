package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snacktrack-dev/snacktrack/internal/domain/values"
)

func validProfile() *Profile {
	return &Profile{
		Name:             "Asha",
		Age:              34,
		Gender:           values.GenderFemale,
		HealthConditions: []values.HealthCondition{values.ConditionDiabetes},
		DietPreference:   values.DietVegetarian,
		Language:         values.LangHindi,
		Nationality:      "Indian",
	}
}

func Test_Profile_Validate(t *testing.T) {
	t.Run("valid profile passes", func(t *testing.T) {
		assert.NoError(t, validProfile().Validate())
	})

	t.Run("optional measurements may be absent", func(t *testing.T) {
		p := validProfile()
		p.HeightCM = nil
		p.WeightKG = nil
		assert.NoError(t, p.Validate())
	})

	t.Run("no conditions declared is valid", func(t *testing.T) {
		p := validProfile()
		p.HealthConditions = nil
		assert.NoError(t, p.Validate())
	})
}

func Test_Profile_Validate_CollectsAllIssues(t *testing.T) {
	badHeight := -170.0
	p := &Profile{
		Name:           "",
		Age:            -1,
		Gender:         values.Gender("robot"),
		HeightCM:       &badHeight,
		DietPreference: values.DietPreference("carnivore"),
		Language:       values.Language("Latin"),
	}

	err := p.Validate()
	require.Error(t, err)

	var verr *ProfileValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Issues, 6)
	assert.Contains(t, verr.Issues[0], "name")
}

func Test_Profile_Validate_InvalidCondition(t *testing.T) {
	p := validProfile()
	p.HealthConditions = append(p.HealthConditions, values.HealthCondition("gout"))

	err := p.Validate()
	require.Error(t, err)

	var verr *ProfileValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Issues, 1)
}

func Test_Profile_HasCondition(t *testing.T) {
	p := validProfile()

	assert.True(t, p.HasCondition(values.ConditionDiabetes))
	assert.False(t, p.HasCondition(values.ConditionCeliac))

	p.HealthConditions = nil
	assert.False(t, p.HasCondition(values.ConditionDiabetes))
}
