package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagLimit   int
	flagLongest bool
	flagBrowse  bool
	flagRunID   int64
	flagClear   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Display recorded simulation runs, newest first.

Examples:
  life history
  life history --longest --limit 5
  life history --browse
  life history --id 12
  life history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Maximum number of runs to show")
	historyCmd.Flags().BoolVar(&flagLongest, "longest", false, "Order by generations instead of date")
	historyCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive history table")
	historyCmd.Flags().Int64Var(&flagRunID, "id", 0, "Show a single run")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	case flagRunID != 0:
		showRun(store, flagRunID)
		return
	}

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, flagLimit, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running history browser: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.RunRecord
	if flagLongest {
		runs, err = store.LongestRuns(flagLimit)
	} else {
		runs, err = store.RecentRuns(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'life play' or 'life run' to record one.")
		return
	}

	fmt.Printf("  %-5s  %-6s  %-9s  %-8s  %-7s  %-7s  %-7s  %s\n",
		"ID", "Source", "Rule", "Size", "Gens", "Peak", "Final", "Date")
	fmt.Printf("  %-5s  %-6s  %-9s  %-8s  %-7s  %-7s  %-7s  %s\n",
		"--", "------", "----", "----", "----", "----", "-----", "----")

	for _, r := range runs {
		fmt.Printf("  %-5d  %-6s  %-9s  %-8s  %-7d  %-7d  %-7d  %s\n",
			r.ID, r.Source, r.Rule, fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.Generations, r.PeakPopulation, r.FinalPopulation,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(); err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("%d runs, %d generations total, avg %.1f, longest %d, peak population %d\n",
			stats.Runs, stats.TotalGenerations, stats.AvgGenerations, stats.MaxGenerations, stats.MaxPopulation)
		fmt.Printf("Last run: %s\n", stats.LastRun.Format("2006-01-02 15:04"))
	}
}

func showRun(store *storage.Store, id int64) {
	r, err := store.RunByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		os.Exit(1)
	}
	if r == nil {
		fmt.Fprintf(os.Stderr, "Error: no run with id %d\n", id)
		os.Exit(1)
	}

	fmt.Printf("Run #%d\n\n", r.ID)
	fmt.Printf("  Source:      %s\n", r.Source)
	if r.User != "" {
		fmt.Printf("  User:        %s\n", r.User)
	}
	fmt.Printf("  Rule:        %s\n", r.Rule)
	fmt.Printf("  Grid:        %dx%d\n", r.Width, r.Height)
	fmt.Printf("  Generations: %d\n", r.Generations)
	fmt.Printf("  Peak:        %d\n", r.PeakPopulation)
	fmt.Printf("  Final:       %d\n", r.FinalPopulation)
	fmt.Printf("  Date:        %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
}
