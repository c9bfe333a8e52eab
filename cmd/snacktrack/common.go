package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/snacktrack-dev/snacktrack/internal/domain/entities"
	"github.com/snacktrack-dev/snacktrack/internal/domain/rules"
	"github.com/snacktrack-dev/snacktrack/internal/infrastructure/config"
	"github.com/snacktrack-dev/snacktrack/internal/infrastructure/output"
	"github.com/snacktrack-dev/snacktrack/internal/version"
)

// buildRegistry assembles the rule set: built-in rules plus any rule
// packs. The caller (or the evaluator) freezes the result.
func buildRegistry(packPaths []string) (*rules.Registry, error) {
	registry := rules.NewRegistry()

	for _, rule := range rules.BuiltinRules() {
		if err := registry.Register(rule); err != nil {
			return nil, fmt.Errorf("failed to register built-in rule: %w", err)
		}
	}

	if len(packPaths) == 0 {
		return registry, nil
	}

	loader, err := config.NewRulePackLoader(version.Version)
	if err != nil {
		return nil, err
	}

	for _, path := range packPaths {
		pack, err := loader.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load rule pack %s: %w", path, err)
		}

		compiled, err := pack.Compile()
		if err != nil {
			return nil, fmt.Errorf("failed to compile rule pack %s: %w", path, err)
		}

		for _, rule := range compiled {
			if err := registry.Register(rule); err != nil {
				return nil, fmt.Errorf("rule pack %s: %w", pack.Metadata.Name, err)
			}
		}

		slog.Debug("rule pack loaded", "pack", pack.Metadata.Name, "version", pack.Metadata.Version, "rules", len(compiled))
	}

	return registry, nil
}

// writeReport renders the report in the requested format to stdout or a
// file.
func writeReport(report *entities.VerdictReport, format, outPath string) error {
	var writer io.Writer = os.Stdout

	if outPath != "" {
		file, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			_ = file.Close() // Best-effort cleanup
		}()
		writer = file
	}

	formatter, err := output.NewFormatterFactory().Create(format, writer)
	if err != nil {
		return err
	}

	return formatter.Format(report)
}
