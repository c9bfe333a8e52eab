package main

import (
	"fmt"
	"log/slog"

	"github.com/snacktrack-dev/snacktrack/internal/application/services"
	"github.com/snacktrack-dev/snacktrack/internal/engine"
	"github.com/snacktrack-dev/snacktrack/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

var (
	scanProfilePath string
	scanPackPaths   []string
	scanFormat      string
	scanOutFile     string
	scanSequential  bool
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <ingredient>...",
	Short: "Evaluate ingredients against a health profile",
	Long: `Load a consumer profile and evaluate each ingredient against the
registered rule set. Every ingredient receives exactly one verdict,
in the order given.

Examples:
  snacktrack scan --profile asha.yaml "cane sugar" salt "whey protein"
  snacktrack scan --profile asha.yaml --rulepack regional.yaml --format json sugar`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScan(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanProfilePath, "profile", "p", "", "Path to the profile YAML file (required)")
	scanCmd.Flags().StringSliceVar(&scanPackPaths, "rulepack", nil, "Rule pack YAML files to load in addition to built-in rules")
	scanCmd.Flags().StringVar(&scanFormat, "format", "table", "Output format: table, json, yaml")
	scanCmd.Flags().StringVarP(&scanOutFile, "output", "o", "", "Output file path (default: stdout)")
	scanCmd.Flags().BoolVar(&scanSequential, "sequential", false, "Evaluate ingredients sequentially instead of in parallel")

	_ = scanCmd.MarkFlagRequired("profile")
}

// runScan implements the core logic for the scan command
func runScan(cmd *cobra.Command, ingredients []string) error {
	profile, err := config.NewProfileLoader().LoadProfile(scanProfilePath)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	slog.Debug("profile loaded", "name", profile.Name, "diet", profile.DietPreference)

	registry, err := buildRegistry(scanPackPaths)
	if err != nil {
		return err
	}

	cfg := engine.DefaultConfig()
	if scanSequential {
		cfg.Parallel = false
	}

	evaluator := engine.NewEvaluator(registry, cfg)
	service := services.NewScanService(evaluator, nil)

	report, err := service.Scan(cmd.Context(), profile, ingredients)
	if err != nil {
		return err
	}

	return writeReport(report, scanFormat, scanOutFile)
}
