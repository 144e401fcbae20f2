package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/platform/headless"
	"github.com/vovakirdan/tui-life/internal/report"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagGenerations int
	flagChart       string
	flagPrint       bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation headless",
	Long: `Randomize a grid, run it for a fixed number of generations at the
configured step delay, then stop and report.

Each generation's population is logged at debug level. The run is
recorded in the history database.

Examples:
  life run --generations 200
  life run -n 1000 --chart population.png
  life run -n 50 --print --seed 7 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runHeadless,
}

func init() {
	runCmd.Flags().IntVarP(&flagGenerations, "generations", "n", 100, "Number of generations to run")
	runCmd.Flags().StringVar(&flagChart, "chart", "", "Write a population chart PNG to this path")
	runCmd.Flags().BoolVar(&flagPrint, "print", false, "Print the final grid to stdout")
}

func runHeadless(cmd *cobra.Command, _ []string) error {
	settings, err := cfg.Settings()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := headless.Run(ctx, headless.Options{
		Settings:    settings,
		Interval:    cfg.StepDelay(),
		Generations: flagGenerations,
		Logger:      logger,
	})
	if errors.Is(err, context.Canceled) {
		logger.Warn("run interrupted", "generations", res.Generations)
	} else if err != nil {
		return err
	}

	logger.Info("run finished",
		"generations", res.Generations,
		"peak", res.Peak,
		"final", res.Final,
		"seed", settings.Seed,
	)

	if flagPrint {
		fmt.Println(res.Grid)
	}

	if flagChart != "" {
		opts := report.DefaultChartOptions()
		opts.Title = fmt.Sprintf("Population %dx%d %s", settings.Width, settings.Height, res.Rule)
		if chartErr := report.SavePopulationChart(flagChart, res.History, opts); chartErr != nil {
			logger.Error("could not write chart", "path", flagChart, "error", chartErr)
		} else {
			logger.Info("chart written", "path", flagChart)
		}
	}

	recordRun(res, settings.Width, settings.Height)
	return nil
}

// recordRun stores the run summary. Failures only warn.
func recordRun(res headless.Result, width, height int) {
	if res.Generations == 0 {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return
	}
	defer store.Close()

	id, err := store.SaveRun(storage.RunRecord{
		Source:          storage.SourceHeadless,
		Rule:            res.Rule.String(),
		Width:           width,
		Height:          height,
		Generations:     res.Generations,
		PeakPopulation:  res.Peak,
		FinalPopulation: res.Final,
	})
	if err != nil {
		logger.Warn("could not record run", "error", err)
		return
	}
	logger.Debug("run recorded", "id", id)
}
