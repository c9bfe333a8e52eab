package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rulesPackPaths []string

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List registered rules in evaluation order",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runRules()
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)

	rulesCmd.Flags().StringSliceVar(&rulesPackPaths, "rulepack", nil, "Rule pack YAML files to include")
}

func runRules() error {
	registry, err := buildRegistry(rulesPackPaths)
	if err != nil {
		return err
	}
	registry.Freeze()

	fmt.Printf("%-28s %s\n", "RULE", "PRIORITY")
	for _, rule := range registry.Rules() {
		fmt.Printf("%-28s %d\n", rule.ID(), rule.Priority())
	}
	fmt.Printf("\n%d rules registered\n", registry.Len())
	return nil
}
