package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/goccy/go-yaml"
	"github.com/snacktrack-dev/snacktrack/internal/domain/entities"
	"github.com/snacktrack-dev/snacktrack/internal/domain/values"
	"github.com/spf13/cobra"
)

var profileOutFile string

// profileCmd groups profile management commands.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage consumer profiles",
}

// profileCreateCmd interactively authors a profile YAML file.
var profileCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a profile interactively",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runProfileCreate()
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileCreateCmd)

	profileCreateCmd.Flags().StringVarP(&profileOutFile, "output", "o", "profile.yaml", "Where to write the profile")
}

func runProfileCreate() error {
	var (
		name        string
		ageStr      string
		gender      string
		conditions  []string
		diet        string
		language    string
		nationality string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Age").
				Value(&ageStr).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 0 {
						return fmt.Errorf("age must be a non-negative integer")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Gender").
				Options(
					huh.NewOption("Male", "male"),
					huh.NewOption("Female", "female"),
					huh.NewOption("Other", "other"),
				).
				Value(&gender),
			huh.NewMultiSelect[string]().
				Title("Health conditions").
				Options(
					huh.NewOption("Diabetes", "diabetes"),
					huh.NewOption("Hypertension", "hypertension"),
					huh.NewOption("Celiac disease", "celiac"),
					huh.NewOption("None", "none").Selected(true),
				).
				Value(&conditions),
			huh.NewSelect[string]().
				Title("Diet preference").
				Options(
					huh.NewOption("Vegan", "vegan"),
					huh.NewOption("Vegetarian", "vegetarian"),
					huh.NewOption("Non-vegetarian", "non-vegetarian"),
				).
				Value(&diet),
			huh.NewSelect[string]().
				Title("Language").
				Options(
					huh.NewOption("English", "English"),
					huh.NewOption("Hindi", "Hindi"),
					huh.NewOption("Punjabi", "Punjabi"),
					huh.NewOption("Tamil", "Tamil"),
					huh.NewOption("Telugu", "Telugu"),
					huh.NewOption("Marathi", "Marathi"),
					huh.NewOption("Bengali", "Bengali"),
					huh.NewOption("Kannada", "Kannada"),
					huh.NewOption("Gujarati", "Gujarati"),
					huh.NewOption("Malayalam", "Malayalam"),
					huh.NewOption("Urdu", "Urdu"),
				).
				Value(&language),
			huh.NewInput().
				Title("Nationality").
				Value(&nationality),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("profile creation cancelled: %w", err)
	}

	age, _ := strconv.Atoi(ageStr) // Validated by the form

	healthConditions := make([]values.HealthCondition, 0, len(conditions))
	for _, c := range conditions {
		healthConditions = append(healthConditions, values.HealthCondition(c))
	}

	profile := entities.Profile{
		Name:             name,
		Age:              age,
		Gender:           values.Gender(gender),
		HealthConditions: healthConditions,
		DietPreference:   values.DietPreference(diet),
		Language:         values.Language(language),
		Nationality:      nationality,
	}

	if err := profile.Validate(); err != nil {
		return err
	}

	data, err := yaml.MarshalWithOptions(profile, yaml.Indent(2))
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	if err := os.WriteFile(profileOutFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}

	fmt.Printf("Profile for %s written to %s\n", profile.Name, profileOutFile)
	return nil
}
