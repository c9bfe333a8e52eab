// Package config provides infrastructure for loading rule pack
// configurations. This package handles YAML parsing, file I/O and
// compilation of expression rules.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
	"github.com/snacktrack-dev/snacktrack/internal/domain/rules"
	"github.com/snacktrack-dev/snacktrack/internal/domain/values"
)

// RulePack represents a loadable set of expression rules.
//
// Invariants Enforced:
// - Pack name and version are required; version is semver
// - Rule IDs are unique within the pack
// - Every rule has a non-empty `when` expression and a valid impact
type RulePack struct {
	Metadata PackMetadata `yaml:"pack"`
	Rules    RulesSection `yaml:"rules"`
}

// PackMetadata contains metadata about the rule pack.
type PackMetadata struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	MinEngine   string `yaml:"min_engine,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// RulesSection contains rule defaults and individual rules.
type RulesSection struct {
	Defaults *RuleDefaults `yaml:"defaults,omitempty"`
	Items    []PackRule    `yaml:"items"`
}

// RuleDefaults defines default values applied to all rules in the pack.
// Individual rules can override these defaults.
type RuleDefaults struct {
	Priority int    `yaml:"priority,omitempty"`
	Impact   string `yaml:"impact,omitempty"`
}

// PackRule describes one expression rule.
type PackRule struct {
	ID       string `yaml:"id"`
	Priority int    `yaml:"priority,omitempty"`
	Impact   string `yaml:"impact,omitempty"`
	Reason   string `yaml:"reason"`
	When     string `yaml:"when"`
}

// RulePackLoader handles loading rule packs from YAML files.
type RulePackLoader struct {
	engineVersion *semver.Version
}

// NewRulePackLoader creates a loader that checks packs against the given
// engine version.
func NewRulePackLoader(engineVersion string) (*RulePackLoader, error) {
	v, err := semver.NewVersion(engineVersion)
	if err != nil {
		return nil, fmt.Errorf("invalid engine version %q: %w", engineVersion, err)
	}
	return &RulePackLoader{engineVersion: v}, nil
}

// Load loads and parses a rule pack from a YAML file.
func (l *RulePackLoader) Load(path string) (*RulePack, error) {
	// Security: Use os.OpenRoot to prevent path traversal attacks
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open rule pack directory: %w", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(base)
	if err != nil {
		return nil, fmt.Errorf("failed to open rule pack: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	return l.LoadFromReader(file)
}

// LoadFromReader loads a rule pack from an io.Reader.
func (l *RulePackLoader) LoadFromReader(r io.Reader) (*RulePack, error) {
	var pack RulePack

	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&pack); err != nil {
		return nil, fmt.Errorf("failed to decode rule pack YAML: %w", err)
	}

	pack.ApplyDefaults()

	if err := pack.Validate(); err != nil {
		return nil, fmt.Errorf("rule pack validation failed: %w", err)
	}

	if err := l.checkEngineCompat(&pack); err != nil {
		return nil, err
	}

	return &pack, nil
}

// checkEngineCompat rejects packs that declare a min_engine newer than
// the running engine.
func (l *RulePackLoader) checkEngineCompat(pack *RulePack) error {
	if pack.Metadata.MinEngine == "" {
		return nil
	}

	min, err := semver.NewVersion(pack.Metadata.MinEngine)
	if err != nil {
		return fmt.Errorf("pack %s: invalid min_engine %q: %w", pack.Metadata.Name, pack.Metadata.MinEngine, err)
	}

	if l.engineVersion.LessThan(min) {
		return fmt.Errorf("pack %s requires engine >= %s, running %s",
			pack.Metadata.Name, min, l.engineVersion)
	}
	return nil
}

// ApplyDefaults applies pack-level defaults to rules that omit them.
func (p *RulePack) ApplyDefaults() {
	if p.Rules.Defaults == nil {
		return
	}
	for i := range p.Rules.Items {
		rule := &p.Rules.Items[i]
		if rule.Priority == 0 {
			rule.Priority = p.Rules.Defaults.Priority
		}
		if rule.Impact == "" {
			rule.Impact = p.Rules.Defaults.Impact
		}
	}
}

// Validate validates the entire rule pack configuration.
func (p *RulePack) Validate() error {
	if p.Metadata.Name == "" {
		return fmt.Errorf("pack name cannot be empty")
	}
	if p.Metadata.Version == "" {
		return fmt.Errorf("pack version cannot be empty")
	}
	if _, err := semver.NewVersion(p.Metadata.Version); err != nil {
		return fmt.Errorf("invalid pack version %q: %w", p.Metadata.Version, err)
	}

	ruleIDs := make(map[string]bool)
	for i, rule := range p.Rules.Items {
		if rule.ID == "" {
			return fmt.Errorf("rule %d: ID cannot be empty", i)
		}
		if ruleIDs[rule.ID] {
			return fmt.Errorf("duplicate rule ID: %s", rule.ID)
		}
		ruleIDs[rule.ID] = true

		if rule.When == "" {
			return fmt.Errorf("rule %s: when expression cannot be empty", rule.ID)
		}
		if _, err := values.ParseImpact(rule.Impact); err != nil {
			return fmt.Errorf("rule %s: %w", rule.ID, err)
		}
	}

	return nil
}

// Compile compiles every rule in the pack into an engine-ready Rule.
func (p *RulePack) Compile() ([]rules.Rule, error) {
	compiled := make([]rules.Rule, 0, len(p.Rules.Items))
	for _, item := range p.Rules.Items {
		impact := values.MustParseImpact(item.Impact) // Validate checked this already
		rule, err := rules.NewExprRule(item.ID, item.Priority, impact, item.Reason, item.When)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, rule)
	}
	return compiled, nil
}
