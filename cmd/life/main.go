// life is a cellular automaton simulator for the terminal.
//
// Usage:
//
//	life play                - Edit and run the simulation interactively
//	life run -n 200          - Run headless for a number of generations
//	life serve               - Serve the simulator over SSH
//	life rules               - List rule presets
//	life history             - Show recorded runs
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.life/config.yaml, ./configs/life.yaml)
//	--seed <value>      - RNG seed for randomize (0 = from config, then time)
//	--db <path>         - History database (default: ~/.life/history.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Resolved in PersistentPreRunE
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Cellular automaton on a toroidal grid, in your terminal",
	Long: `life runs a two-state cellular automaton on a wrap-around grid.

Cells are toggled by hand or randomized, then the grid advances one
generation at a time under a survival/birth rule.

Available commands:
  play     - Interactive editor and simulator
  run      - Headless run with optional population chart
  serve    - Start SSH server for remote sessions
  rules    - List rule presets
  history  - Show recorded runs

Examples:
  life play
  life play --fit
  life run --generations 500 --chart population.png
  life serve --ssh :23235
  life history --longest`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = use config, then time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.life/history.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(historyCmd)
}

// setup loads configuration and builds the logger shared by all subcommands.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "life " + cmd.Name(),
		Level:           level,
	})

	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagSeed != 0 {
		cfg.Simulation.Seed = flagSeed
	}
	return nil
}
