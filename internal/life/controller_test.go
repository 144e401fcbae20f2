package life

import (
	"testing"
)

// recorder is an Observer that keeps every notification it receives.
type recorder struct {
	cells   [][3]int
	grids   []*Grid
	reasons []Reason
}

func (r *recorder) CellChanged(row, col int, c Cell) {
	r.cells = append(r.cells, [3]int{row, col, int(c)})
}

func (r *recorder) GridReplaced(g *Grid, reason Reason) {
	r.grids = append(r.grids, g)
	r.reasons = append(r.reasons, reason)
}

func newTestController(t *testing.T, w, h int, density float64) (*Controller, *recorder, *ManualScheduler) {
	t.Helper()
	c, err := NewController(Settings{
		Width:   w,
		Height:  h,
		Rule:    DefaultRule,
		Density: density,
		Seed:    42,
	})
	if err != nil {
		t.Fatalf("NewController() failed: %v", err)
	}
	rec := &recorder{}
	sched := &ManualScheduler{}
	c.SetObserver(rec)
	c.SetScheduler(sched)
	return c, rec, sched
}

func TestNewControllerInitialState(t *testing.T) {
	c, _, _ := newTestController(t, 10, 8, 0.3)

	if c.Mode() != Stopped {
		t.Errorf("initial mode = %v, expected STOPPED", c.Mode())
	}
	if c.Grid().Width() != 10 || c.Grid().Height() != 8 {
		t.Errorf("grid is %dx%d, expected 10x8", c.Grid().Width(), c.Grid().Height())
	}
	if c.Grid().Population() != 0 {
		t.Error("initial grid should be all dead")
	}
}

func TestNewControllerRejectsBadSettings(t *testing.T) {
	if _, err := NewController(Settings{Width: 0, Height: 5}); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := NewController(Settings{Width: 5, Height: 5, Density: 1.5}); err == nil {
		t.Error("expected error for density above 1")
	}
}

func TestToggleCellFlipsOnlyTarget(t *testing.T) {
	c, rec, _ := newTestController(t, 5, 5, 0.3)

	if !c.ToggleCell(2, 3) {
		t.Fatal("ToggleCell should apply while stopped")
	}
	g := c.Grid()
	if g.Get(2, 3) != Alive {
		t.Error("target cell should be alive")
	}
	if g.Population() != 1 {
		t.Errorf("population = %d, expected only the target cell alive", g.Population())
	}
	if len(rec.cells) != 1 || rec.cells[0] != [3]int{2, 3, int(Alive)} {
		t.Errorf("expected one CellChanged(2, 3, Alive), got %v", rec.cells)
	}

	c.ToggleCell(2, 3)
	if c.Grid().Get(2, 3) != Dead {
		t.Error("second toggle should kill the cell again")
	}
}

func TestGatedOperationsIgnoredWhileRunning(t *testing.T) {
	c, rec, _ := newTestController(t, 6, 6, 1.0)
	c.ToggleCell(0, 0)
	c.Start()

	before := c.Grid().Clone()
	notifications := len(rec.grids)

	if c.ToggleCell(1, 1) {
		t.Error("ToggleCell should be refused while running")
	}
	if c.Randomize() {
		t.Error("Randomize should be refused while running")
	}
	if c.Clear() {
		t.Error("Clear should be refused while running")
	}
	if c.SingleStep() {
		t.Error("SingleStep should be refused while running")
	}

	if !c.Grid().Equal(before) {
		t.Error("grid changed while running despite refused operations")
	}
	if len(rec.grids) != notifications || len(rec.cells) != 1 {
		t.Error("refused operations must not notify the observer")
	}
}

func TestRandomizeExtremes(t *testing.T) {
	c, rec, _ := newTestController(t, 12, 9, 0)
	c.ToggleCell(4, 4)
	c.Randomize()
	if c.Grid().Population() != 0 {
		t.Errorf("density 0 produced %d live cells", c.Grid().Population())
	}
	if rec.reasons[len(rec.reasons)-1] != ReasonRandomize {
		t.Error("Randomize should notify with ReasonRandomize")
	}

	full, _, _ := newTestController(t, 12, 9, 1)
	full.Randomize()
	if full.Grid().Population() != 12*9 {
		t.Errorf("density 1 produced %d live cells, expected %d", full.Grid().Population(), 12*9)
	}
}

func TestRandomizeIsSeeded(t *testing.T) {
	a, _, _ := newTestController(t, 20, 20, 0.3)
	b, _, _ := newTestController(t, 20, 20, 0.3)
	a.Randomize()
	b.Randomize()
	if !a.Grid().Equal(b.Grid()) {
		t.Error("controllers with the same seed should randomize identically")
	}
	if p := a.Grid().Population(); p == 0 || p == 400 {
		t.Errorf("density 0.3 produced a degenerate population of %d", p)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	c, rec, _ := newTestController(t, 8, 8, 0.5)
	c.Randomize()

	c.Clear()
	once := c.Grid().Clone()
	c.Clear()

	if !c.Grid().Equal(once) || once.Population() != 0 {
		t.Error("Clear should leave an all-dead grid and be idempotent")
	}
	if rec.reasons[len(rec.reasons)-1] != ReasonClear {
		t.Error("Clear should notify with ReasonClear")
	}
}

func TestSingleStep(t *testing.T) {
	c, rec, sched := newTestController(t, 3, 3, 0)
	c.ToggleCell(1, 1)

	if !c.SingleStep() {
		t.Fatal("SingleStep should apply while stopped")
	}
	if c.Mode() != Stopped {
		t.Error("SingleStep must not change mode")
	}
	if sched.Starts != 0 {
		t.Error("SingleStep must not start the scheduler")
	}
	if c.Grid().Population() != 8 || c.Grid().Get(1, 1) != Dead {
		t.Errorf("unexpected grid after step:\n%s", c.Grid())
	}
	if len(rec.grids) != 1 || rec.reasons[0] != ReasonStep {
		t.Error("SingleStep should notify once with ReasonStep")
	}
}

func TestStartStopTransitions(t *testing.T) {
	c, rec, sched := newTestController(t, 3, 3, 0)
	c.ToggleCell(1, 1)

	if !c.Start() {
		t.Fatal("Start from STOPPED should succeed")
	}
	if c.Mode() != Running {
		t.Errorf("mode after Start = %v, expected RUNNING", c.Mode())
	}
	if !sched.Active || sched.Starts != 1 {
		t.Error("Start should start the scheduler once")
	}
	if len(rec.grids) != 1 {
		t.Errorf("Start should perform the first step immediately, got %d notifications", len(rec.grids))
	}
	if c.Start() {
		t.Error("Start while RUNNING should be a no-op")
	}

	if !c.Stop() {
		t.Fatal("Stop from RUNNING should succeed")
	}
	if c.Mode() != Stopped || sched.Active {
		t.Error("Stop should return to STOPPED and stop the scheduler")
	}
	if c.Stop() {
		t.Error("Stop while STOPPED should be a no-op")
	}
	if sched.Stops != 1 {
		t.Errorf("scheduler stopped %d times, expected 1", sched.Stops)
	}
}

func TestTickAfterStopDoesNothing(t *testing.T) {
	c, rec, _ := newTestController(t, 4, 4, 0)
	c.ToggleCell(0, 0)
	c.Start()

	if !c.Tick() {
		t.Error("Tick while running should advance")
	}
	c.Stop()

	after := c.Grid().Clone()
	steps := len(rec.grids)

	// A tick that was already pending when Stop happened.
	if c.Tick() {
		t.Error("Tick after Stop should report no advance")
	}
	if !c.Grid().Equal(after) || len(rec.grids) != steps {
		t.Error("Tick after Stop must not change the grid")
	}
}

func TestToggleRunning(t *testing.T) {
	c, _, _ := newTestController(t, 4, 4, 0)

	c.ToggleRunning()
	if !c.Running() {
		t.Error("ToggleRunning from STOPPED should start")
	}
	c.ToggleRunning()
	if c.Running() {
		t.Error("ToggleRunning from RUNNING should stop")
	}
}

func TestObserverCanStopDuringFirstStep(t *testing.T) {
	c, _, sched := newTestController(t, 4, 4, 0)
	c.SetObserver(stopOnStep{c})

	c.Start()

	if c.Running() {
		t.Error("observer stopped the run, controller should be STOPPED")
	}
	if sched.Starts != 0 {
		t.Error("scheduler should not start when the run was stopped during the first step")
	}
}

type stopOnStep struct{ c *Controller }

func (stopOnStep) CellChanged(int, int, Cell) {}

func (s stopOnStep) GridReplaced(_ *Grid, reason Reason) {
	if reason == ReasonStep {
		s.c.Stop()
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	c, rec, _ := newTestController(t, 3, 3, 0)
	c.ToggleCell(0, 0)
	c.SingleStep()

	rec.grids[0].Fill(Dead)
	if c.Grid().Population() == 0 {
		t.Error("modifying an observer snapshot must not affect the controller grid")
	}
}

func TestInstallSizeMismatchPanics(t *testing.T) {
	c, _, _ := newTestController(t, 3, 3, 0)
	defer func() {
		if recover() == nil {
			t.Error("installing a grid of a different size should panic")
		}
	}()
	c.install(MustGrid(4, 3))
}
