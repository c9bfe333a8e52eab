package main

import (
	"errors"
	"log/slog"
	"os"

	apperrors "github.com/snacktrack-dev/snacktrack/internal/application/errors"
	"github.com/snacktrack-dev/snacktrack/internal/domain/entities"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "snacktrack",
	Short: "Food ingredient health impact scanner",
	Long: `SnackTrack evaluates food ingredient lists against a consumer health
profile and reports a per-ingredient verdict (Safe, Caution or Avoid)
with the reason behind it. Verdicts come from a registered rule set:
built-in rules cover common conditions and diets, and YAML rule packs
add expression-based rules without recompiling.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
	SilenceUsage: true,
}

// Execute runs the root command. Invalid profiles exit with code 2 so
// scripts can tell bad input from operational failures.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var invalidProfile *apperrors.InvalidProfileError
		var validationErr *entities.ProfileValidationError
		if errors.As(err, &invalidProfile) || errors.As(err, &validationErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.snacktrack.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// initConfig loads configuration from the config file and environment.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			slog.Error("failed to find home directory", "error", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".snacktrack")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "file", viper.ConfigFileUsed())
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
