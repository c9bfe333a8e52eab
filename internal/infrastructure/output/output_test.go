package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snacktrack-dev/snacktrack/internal/domain/entities"
	"github.com/snacktrack-dev/snacktrack/internal/domain/values"
)

func sampleReport() *entities.VerdictReport {
	report := entities.NewVerdictReport("Asha")
	report.Findings = []entities.Finding{
		{Ingredient: "cane sugar", Impact: values.ImpactAvoid, Reason: "Contains added sugar which may affect blood sugar levels", RuleID: "added-sugar"},
		{Ingredient: "salt", Impact: values.ImpactCaution, Reason: "High sodium marker (salt)", RuleID: "sodium-hypertension"},
		{Ingredient: "water", Impact: values.ImpactSafe, Reason: entities.DefaultSafeReason},
	}
	report.Finalize()
	return report
}

func Test_TableFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewTableFormatter(&buf)
	formatter.EnableColor = false

	require.NoError(t, formatter.Format(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Scan for: Asha")
	assert.Contains(t, out, "cane sugar: Avoid")
	assert.Contains(t, out, "salt: Caution")
	assert.Contains(t, out, "water: Safe")
	assert.Contains(t, out, "3 ingredients: 1 safe, 1 caution, 1 avoid")
	assert.NotContains(t, out, "\033[")
}

func Test_TableFormatter_Format_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewTableFormatter(&buf)
	formatter.EnableColor = false

	report := entities.NewVerdictReport("Asha")
	report.Finalize()

	require.NoError(t, formatter.Format(report))
	assert.Contains(t, buf.String(), "No ingredients evaluated.")
}

func Test_TableFormatter_Format_Degraded(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewTableFormatter(&buf)
	formatter.EnableColor = false

	report := sampleReport()
	report.Failures = []entities.RuleFailure{
		{RuleID: "flaky", Ingredient: "salt", Message: "boom"},
	}
	report.Finalize()

	require.NoError(t, formatter.Format(report))
	assert.Contains(t, buf.String(), "1 rule(s) failed")
}

func Test_JSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewJSONFormatter(&buf, true)

	report := sampleReport()
	require.NoError(t, formatter.Format(report))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, report.ID.String(), decoded["id"])
	assert.Equal(t, "Asha", decoded["user"])

	verdict, ok := decoded["verdict"].([]any)
	require.True(t, ok)
	require.Len(t, verdict, 3)

	first, ok := verdict[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "cane sugar", first["ingredient"])
	assert.Equal(t, "Avoid", first["impact"])
}

func Test_YAMLFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewYAMLFormatter(&buf)

	require.NoError(t, formatter.Format(sampleReport()))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Asha", decoded["user"])
}
