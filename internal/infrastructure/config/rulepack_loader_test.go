package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPackYAML = `
pack:
  name: regional
  version: 1.2.0
  min_engine: 0.2.0

rules:
  defaults:
    priority: 5
    impact: Caution

  items:
    - id: trans-fat
      priority: 25
      impact: Avoid
      reason: Trans fats are linked to heart disease
      when: contains(ingredient, "hydrogenated")

    - id: artificial-color
      reason: Contains a synthetic food dye
      when: contains(ingredient, "tartrazine")
`

func newTestLoader(t *testing.T) *RulePackLoader {
	t.Helper()
	loader, err := NewRulePackLoader("0.3.0")
	require.NoError(t, err)
	return loader
}

func Test_NewRulePackLoader(t *testing.T) {
	_, err := NewRulePackLoader("0.3.0")
	assert.NoError(t, err)

	_, err = NewRulePackLoader("not-a-version")
	assert.Error(t, err)
}

func Test_RulePackLoader_LoadFromReader(t *testing.T) {
	loader := newTestLoader(t)

	pack, err := loader.LoadFromReader(strings.NewReader(validPackYAML))
	require.NoError(t, err)

	assert.Equal(t, "regional", pack.Metadata.Name)
	assert.Equal(t, "1.2.0", pack.Metadata.Version)
	require.Len(t, pack.Rules.Items, 2)
}

func Test_RulePackLoader_AppliesDefaults(t *testing.T) {
	loader := newTestLoader(t)

	pack, err := loader.LoadFromReader(strings.NewReader(validPackYAML))
	require.NoError(t, err)

	// Explicit values survive.
	assert.Equal(t, 25, pack.Rules.Items[0].Priority)
	assert.Equal(t, "Avoid", pack.Rules.Items[0].Impact)

	// Omitted values fall back to the pack defaults.
	assert.Equal(t, 5, pack.Rules.Items[1].Priority)
	assert.Equal(t, "Caution", pack.Rules.Items[1].Impact)
}

func Test_RulePackLoader_LoadFromReader_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "missing pack name",
			yaml: `
pack:
  version: 1.0.0
rules:
  items:
    - id: a
      impact: Safe
      when: "true"
`,
			want: "name",
		},
		{
			name: "bad pack version",
			yaml: `
pack:
  name: p
  version: one
rules:
  items:
    - id: a
      impact: Safe
      when: "true"
`,
			want: "version",
		},
		{
			name: "duplicate rule IDs",
			yaml: `
pack:
  name: p
  version: 1.0.0
rules:
  items:
    - id: a
      impact: Safe
      when: "true"
    - id: a
      impact: Safe
      when: "true"
`,
			want: "duplicate",
		},
		{
			name: "missing when expression",
			yaml: `
pack:
  name: p
  version: 1.0.0
rules:
  items:
    - id: a
      impact: Safe
`,
			want: "when",
		},
		{
			name: "invalid impact",
			yaml: `
pack:
  name: p
  version: 1.0.0
rules:
  items:
    - id: a
      impact: Deadly
      when: "true"
`,
			want: "impact",
		},
	}

	loader := newTestLoader(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.LoadFromReader(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func Test_RulePackLoader_EngineCompat(t *testing.T) {
	packYAML := `
pack:
  name: future
  version: 1.0.0
  min_engine: 9.0.0
rules:
  items:
    - id: a
      impact: Safe
      when: "true"
`

	loader := newTestLoader(t)

	_, err := loader.LoadFromReader(strings.NewReader(packYAML))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires engine")
}

func Test_RulePack_Compile(t *testing.T) {
	loader := newTestLoader(t)

	pack, err := loader.LoadFromReader(strings.NewReader(validPackYAML))
	require.NoError(t, err)

	compiled, err := pack.Compile()
	require.NoError(t, err)

	require.Len(t, compiled, 2)
	assert.Equal(t, "trans-fat", compiled[0].ID())
	assert.Equal(t, 25, compiled[0].Priority())
	assert.Equal(t, "artificial-color", compiled[1].ID())
	assert.Equal(t, 5, compiled[1].Priority())
}

func Test_RulePack_Compile_BadExpression(t *testing.T) {
	packYAML := `
pack:
  name: p
  version: 1.0.0
rules:
  items:
    - id: broken
      impact: Safe
      when: "contains("
`

	loader := newTestLoader(t)

	pack, err := loader.LoadFromReader(strings.NewReader(packYAML))
	require.NoError(t, err)

	_, err = pack.Compile()
	assert.Error(t, err)
}
