package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snacktrack-dev/snacktrack/internal/domain/values"
)

func Test_NewVerdictReport(t *testing.T) {
	report := NewVerdictReport("Asha")

	assert.False(t, report.ID.IsZero())
	assert.Equal(t, "Asha", report.User)
	assert.False(t, report.StartTime.IsZero())
	assert.Empty(t, report.Findings)
}

func Test_VerdictReport_Finalize(t *testing.T) {
	report := NewVerdictReport("Asha")
	report.Findings = []Finding{
		{Ingredient: "cane sugar", Impact: values.ImpactAvoid},
		{Ingredient: "salt", Impact: values.ImpactCaution},
		{Ingredient: "water", Impact: values.ImpactSafe},
		{Ingredient: "rock salt", Impact: values.ImpactCaution},
	}

	report.Finalize()

	assert.Equal(t, 4, report.Summary.Total)
	assert.Equal(t, 1, report.Summary.Safe)
	assert.Equal(t, 2, report.Summary.Caution)
	assert.Equal(t, 1, report.Summary.Avoid)
	assert.False(t, report.Degraded)
	assert.GreaterOrEqual(t, report.Duration, time.Duration(0))
}

func Test_VerdictReport_Finalize_Degraded(t *testing.T) {
	report := NewVerdictReport("Asha")
	report.Failures = []RuleFailure{
		{RuleID: "flaky-rule", Ingredient: "salt", Message: "boom"},
	}

	report.Finalize()

	assert.True(t, report.Degraded)
	assert.Equal(t, 0, report.Summary.Total)
}

func Test_DefaultFinding(t *testing.T) {
	f := DefaultFinding("water")

	require.Equal(t, "water", f.Ingredient)
	assert.True(t, f.Impact.Equals(values.ImpactSafe))
	assert.Equal(t, DefaultSafeReason, f.Reason)
	assert.Empty(t, f.RuleID)
}
