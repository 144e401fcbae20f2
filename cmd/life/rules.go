package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List rule presets",
	Long: `Shows the transition rule presets that simulation.rule can name.

Rules are written in B/S notation: B lists the neighbor counts that bring a
dead cell to life, S the counts that keep a live cell alive.`,
	Args: cobra.NoArgs,
	Run:  runRules,
}

func runRules(_ *cobra.Command, _ []string) {
	presets := rules.List()
	active := cfg.Simulation.Rule
	if active == "" {
		active = rules.DefaultID
	}

	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, "ID", "Rule", "Title")
	fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, "--", "----", "-----")

	for _, p := range presets {
		marker := " "
		if p.ID == active {
			marker = "*"
		}
		fmt.Printf("%s %-*s  %-9s  %s\n", marker, maxIDLen, p.ID, p.Rule, p.Title)
	}

	fmt.Println()
	fmt.Println("* = active. Set simulation.rule in the config to switch.")
}
