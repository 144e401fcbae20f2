package life

import (
	"fmt"
	"math/rand/v2"
)

// Mode is the run state of the simulation.
type Mode uint8

const (
	Stopped Mode = iota
	Running
)

// String returns the mode name as shown to users.
func (m Mode) String() string {
	if m == Running {
		return "RUNNING"
	}
	return "STOPPED"
}

// Reason tells an Observer why the whole grid was replaced.
type Reason uint8

const (
	ReasonRandomize Reason = iota
	ReasonClear
	ReasonStep
)

// String returns a lowercase name for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonRandomize:
		return "randomize"
	case ReasonClear:
		return "clear"
	case ReasonStep:
		return "step"
	default:
		return "unknown"
	}
}

// Observer receives change notifications from a Controller.
// Grids passed to GridReplaced are snapshots owned by the observer.
type Observer interface {
	CellChanged(row, col int, c Cell)
	GridReplaced(g *Grid, reason Reason)
}

// Scheduler arranges for Controller.Tick to be called periodically.
// The controller calls Start when entering Running and Stop when leaving it.
type Scheduler interface {
	Start()
	Stop()
}

type nopObserver struct{}

func (nopObserver) CellChanged(int, int, Cell) {}
func (nopObserver) GridReplaced(*Grid, Reason) {}

type nopScheduler struct{}

func (nopScheduler) Start() {}
func (nopScheduler) Stop()  {}

// Settings configures a new Controller.
type Settings struct {
	Width   int
	Height  int
	Rule    Rule
	Density float64 // Probability that Randomize makes a cell alive, in [0, 1]
	Seed    int64   // RNG seed for Randomize
}

// Controller owns the current grid and mode and is the only thing that mutates them.
// It is not safe for concurrent use; every call must come from one goroutine.
type Controller struct {
	grid      *Grid
	mode      Mode
	rule      Rule
	density   float64
	rng       *rand.Rand
	observer  Observer
	scheduler Scheduler
}

// NewController creates a stopped controller with an all-dead grid.
func NewController(s Settings) (*Controller, error) {
	g, err := NewGrid(s.Width, s.Height)
	if err != nil {
		return nil, err
	}
	if s.Density < 0 || s.Density > 1 {
		return nil, fmt.Errorf("life: density %v outside [0, 1]", s.Density)
	}
	return &Controller{
		grid:      g,
		mode:      Stopped,
		rule:      s.Rule,
		density:   s.Density,
		rng:       rand.New(rand.NewPCG(uint64(s.Seed), 0)),
		observer:  nopObserver{},
		scheduler: nopScheduler{},
	}, nil
}

// SetObserver replaces the change observer. nil disables notifications.
func (c *Controller) SetObserver(o Observer) {
	if o == nil {
		o = nopObserver{}
	}
	c.observer = o
}

// SetScheduler replaces the scheduler used while running. nil disables automatic stepping.
func (c *Controller) SetScheduler(s Scheduler) {
	if s == nil {
		s = nopScheduler{}
	}
	c.scheduler = s
}

// Grid returns the current generation. Callers must treat it as read-only;
// it is replaced, not updated, when the simulation advances.
func (c *Controller) Grid() *Grid { return c.grid }

// Mode returns the current run state.
func (c *Controller) Mode() Mode { return c.mode }

// Running reports whether automatic stepping is active.
func (c *Controller) Running() bool { return c.mode == Running }

// Rule returns the transition rule in use.
func (c *Controller) Rule() Rule { return c.rule }

// Start switches to Running, performs the first step immediately and starts the scheduler.
// Returns false if already running.
func (c *Controller) Start() bool {
	if c.mode == Running {
		return false
	}
	c.mode = Running
	c.advance()
	// An observer may have stopped the run during the first step.
	if c.mode == Running {
		c.scheduler.Start()
	}
	return true
}

// Stop switches to Stopped and stops the scheduler. Returns false if already stopped.
func (c *Controller) Stop() bool {
	if c.mode == Stopped {
		return false
	}
	c.mode = Stopped
	c.scheduler.Stop()
	return true
}

// ToggleRunning starts a stopped simulation or stops a running one.
func (c *Controller) ToggleRunning() {
	if c.mode == Running {
		c.Stop()
		return
	}
	c.Start()
}

// Tick advances one generation if running. Schedulers call it; it never re-arms itself.
// A tick that arrives after Stop does nothing.
func (c *Controller) Tick() bool {
	if c.mode != Running {
		return false
	}
	c.advance()
	return true
}

// ToggleCell flips the cell at (row, col). Ignored while running.
func (c *Controller) ToggleCell(row, col int) bool {
	if c.mode == Running {
		return false
	}
	next := c.grid.Get(row, col).Flip()
	c.grid.Set(row, col, next)
	c.observer.CellChanged(row, col, next)
	return true
}

// Randomize makes each cell alive with the configured density. Ignored while running.
func (c *Controller) Randomize() bool {
	if c.mode == Running {
		return false
	}
	for row := 0; row < c.grid.h; row++ {
		for col := 0; col < c.grid.w; col++ {
			cell := Dead
			if c.rng.Float64() < c.density {
				cell = Alive
			}
			c.grid.Set(row, col, cell)
		}
	}
	c.observer.GridReplaced(c.grid.Clone(), ReasonRandomize)
	return true
}

// Clear kills every cell. Ignored while running.
func (c *Controller) Clear() bool {
	if c.mode == Running {
		return false
	}
	c.grid.Fill(Dead)
	c.observer.GridReplaced(c.grid.Clone(), ReasonClear)
	return true
}

// SingleStep advances exactly one generation without changing mode. Ignored while running.
func (c *Controller) SingleStep() bool {
	if c.mode == Running {
		return false
	}
	c.advance()
	return true
}

// advance computes the next generation and installs it.
func (c *Controller) advance() {
	c.install(NextGeneration(c.grid, c.rule))
	c.observer.GridReplaced(c.grid.Clone(), ReasonStep)
}

// install swaps in a new generation. A size mismatch means a bug upstream and
// installing it would corrupt the simulation, so it panics.
func (c *Controller) install(next *Grid) {
	if !next.SameSize(c.grid) {
		panic(fmt.Sprintf("life: generation is %dx%d, controller grid is %dx%d",
			next.w, next.h, c.grid.w, c.grid.h))
	}
	c.grid = next
}

// Observers fans notifications out to several observers in order.
type Observers []Observer

// CellChanged forwards to every observer.
func (obs Observers) CellChanged(row, col int, c Cell) {
	for _, o := range obs {
		o.CellChanged(row, col, c)
	}
}

// GridReplaced forwards to every observer.
func (obs Observers) GridReplaced(g *Grid, reason Reason) {
	for _, o := range obs {
		o.GridReplaced(g, reason)
	}
}
