package main

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/snacktrack-dev/snacktrack/internal/api"
	apperrors "github.com/snacktrack-dev/snacktrack/internal/application/errors"
	"github.com/snacktrack-dev/snacktrack/internal/application/services"
	"github.com/snacktrack-dev/snacktrack/internal/domain/repositories"
	"github.com/snacktrack-dev/snacktrack/internal/engine"
	"github.com/snacktrack-dev/snacktrack/internal/infrastructure/persistence/memory"
	redisrepo "github.com/snacktrack-dev/snacktrack/internal/infrastructure/persistence/redis"
	"github.com/snacktrack-dev/snacktrack/internal/infrastructure/validation"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serve the scan engine over HTTP.

Configuration (config file or environment):
  storage.backend      memory (default) or redis
  storage.redis.addr   Redis address when the redis backend is selected
  rulepacks            Rule pack YAML files loaded at startup`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
}

// runServe wires storage, the rule set and the HTTP server.
func runServe() error {
	registry, err := buildRegistry(viper.GetStringSlice("rulepacks"))
	if err != nil {
		return err
	}

	evaluator := engine.NewEvaluator(registry, engine.DefaultConfig())

	profiles, scans, err := buildStores()
	if err != nil {
		return err
	}

	validator, err := validation.NewProfileValidator()
	if err != nil {
		return err
	}

	service := services.NewScanService(evaluator, scans)
	server := api.NewServer(service, profiles, validator)

	slog.Info("starting server", "addr", serveAddr, "rules", registry.Len())
	return server.Run(serveAddr)
}

// buildStores selects the storage backend from configuration.
func buildStores() (repositories.ProfileRepository, repositories.ScanRepository, error) {
	backend := viper.GetString("storage.backend")

	switch backend {
	case "", "memory":
		return memory.NewProfileRepository(), memory.NewScanRepository(), nil

	case "redis":
		addr := viper.GetString("storage.redis.addr")
		if addr == "" {
			return nil, nil, apperrors.NewConfigurationError("storage", "storage.redis.addr is required for the redis backend", nil)
		}
		client := redis.NewClient(&redis.Options{Addr: addr})
		return redisrepo.NewProfileRepository(client), redisrepo.NewScanRepository(client), nil

	default:
		return nil, nil, apperrors.NewConfigurationError("storage",
			fmt.Sprintf("unknown backend %q (supported: memory, redis)", backend), nil)
	}
}
