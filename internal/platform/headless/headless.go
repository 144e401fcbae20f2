// Package headless runs the simulation without a terminal UI, driving the
// controller from a ticker until a generation limit is reached.
package headless

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/report"
)

// ErrNoGenerations is returned when the generation limit is not positive.
var ErrNoGenerations = errors.New("headless: generation limit must be positive")

// Options configures a headless run.
type Options struct {
	Settings    life.Settings
	Interval    time.Duration // Delay between generations
	Generations int           // Stop after this many generations
	Logger      *log.Logger   // Optional, receives per-generation debug lines
}

// Result summarises a finished run.
type Result struct {
	Grid        *life.Grid
	Rule        life.Rule
	Generations int
	Peak        int
	Final       int
	History     []int // Population after each generation
}

// progress stops the controller once the limit is reached.
type progress struct {
	ctrl   *life.Controller
	limit  int
	steps  int
	logger *log.Logger
}

func (p *progress) CellChanged(int, int, life.Cell) {}

func (p *progress) GridReplaced(g *life.Grid, reason life.Reason) {
	if reason != life.ReasonStep {
		p.logger.Debug("grid replaced", "reason", reason, "population", g.Population())
		return
	}
	p.steps++
	p.logger.Debug("generation", "n", p.steps, "population", g.Population())
	if p.steps >= p.limit {
		p.ctrl.Stop()
	}
}

// Run randomizes a fresh grid, starts the simulation and blocks until the
// generation limit is reached or ctx is cancelled. On cancellation the
// partial result is returned together with ctx.Err().
func Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Generations <= 0 {
		return Result{}, ErrNoGenerations
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	ctrl, err := life.NewController(opts.Settings)
	if err != nil {
		return Result{}, fmt.Errorf("headless: %w", err)
	}

	session := report.NewSession(0)
	ctrl.SetObserver(life.Observers{
		session,
		&progress{ctrl: ctrl, limit: opts.Generations, logger: logger},
	})

	sched := life.NewTickerScheduler(opts.Interval, ctrl.Tick)
	ctrl.SetScheduler(sched)

	ctrl.Randomize()
	logger.Info("starting run",
		"size", fmt.Sprintf("%dx%d", opts.Settings.Width, opts.Settings.Height),
		"rule", ctrl.Rule(),
		"population", session.Population(),
		"generations", opts.Generations,
		"interval", sched.Interval(),
	)

	ctrl.Start()
	runErr := sched.Run(ctx)
	ctrl.Stop()

	return Result{
		Grid:        ctrl.Grid().Clone(),
		Rule:        ctrl.Rule(),
		Generations: session.Generations(),
		Peak:        session.Peak(),
		Final:       session.Population(),
		History:     session.History(),
	}, runErr
}
