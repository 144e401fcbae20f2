package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// fitReservedRows leaves room for the separator, status and help lines.
const fitReservedRows = 3

var flagFit bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Edit and run the simulation interactively",
	Long: `Open the grid editor. The simulation starts stopped with every cell dead.

Controls:
  Click/Space/Enter - Toggle cell (only while stopped)
  Arrows/hjkl       - Move cursor
  S/P               - Start/Stop
  N                 - Single step
  R                 - Randomize
  C                 - Clear
  ?                 - More keys
  Q/Ctrl+C          - Quit and record the run

Grids larger than the terminal scroll with the cursor. Use --fit to size
the grid to the terminal instead of the configured display.

Examples:
  life play
  life play --fit
  life play --config ./conway.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagFit, "fit", false, "Size the grid to the terminal")
}

func runPlay(_ *cobra.Command, _ []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	playCfg := cfg
	if flagFit {
		// Two terminal columns per cell.
		playCfg = config.FitTerminal(cfg, width/2, height, fitReservedRows)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config: playCfg,
		Store:  store,
		Source: storage.SourcePlay,
		Width:  width,
		Height: height,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulator: %v\n", runErr)
		os.Exit(1)
	}
}
