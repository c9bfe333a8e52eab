// Package validation validates inbound profile documents against a JSON
// Schema before they are bound into domain entities.
package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/snacktrack-dev/snacktrack/internal/domain/entities"
)

// profileSchema is the JSON Schema for inbound consumer profiles.
// Enum values mirror the domain value types; structural violations are
// caught here so handlers can reject requests before binding.
const profileSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "age", "gender", "health_conditions", "diet_preference", "language", "nationality"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "age": {"type": "integer", "minimum": 0},
    "gender": {"enum": ["male", "female", "other"]},
    "height_cm": {"type": "number", "exclusiveMinimum": 0},
    "weight_kg": {"type": "number", "exclusiveMinimum": 0},
    "health_conditions": {
      "type": "array",
      "items": {"enum": ["diabetes", "hypertension", "celiac", "none"]}
    },
    "diet_preference": {"enum": ["vegan", "vegetarian", "non-vegetarian"]},
    "language": {"enum": ["English", "Hindi", "Punjabi", "Tamil", "Telugu", "Marathi", "Bengali", "Kannada", "Gujarati", "Malayalam", "Urdu"]},
    "nationality": {"type": "string"}
  }
}`

// ProfileValidator validates raw profile JSON against the profile schema.
type ProfileValidator struct {
	schema *jsonschema.Schema
}

// NewProfileValidator compiles the embedded profile schema.
func NewProfileValidator() (*ProfileValidator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource("profile.schema.json", strings.NewReader(profileSchema)); err != nil {
		return nil, fmt.Errorf("failed to add profile schema resource: %w", err)
	}

	schema, err := compiler.Compile("profile.schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile profile schema: %w", err)
	}

	return &ProfileValidator{schema: schema}, nil
}

// Validate checks raw profile JSON against the schema. Violations are
// returned as a *entities.ProfileValidationError listing every issue.
func (v *ProfileValidator) Validate(raw []byte) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &entities.ProfileValidationError{
			Issues: []string{fmt.Sprintf("profile is not valid JSON: %v", err)},
		}
	}

	if err := v.schema.Validate(doc); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return &entities.ProfileValidationError{Issues: collectIssues(validationErr)}
		}
		return fmt.Errorf("profile validation failed: %w", err)
	}

	return nil
}

// collectIssues flattens a nested schema validation error into
// per-location messages.
func collectIssues(err *jsonschema.ValidationError) []string {
	var messages []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if e.Message != "" && len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	if len(messages) == 0 {
		messages = append(messages, "profile does not match schema")
	}
	return messages
}
