package life

import (
	"context"
	"time"
)

// ManualScheduler records Start/Stop calls and never ticks on its own.
// Tests drive the controller by calling Tick directly.
type ManualScheduler struct {
	Active bool
	Starts int
	Stops  int
}

// Start marks the scheduler active.
func (s *ManualScheduler) Start() {
	s.Active = true
	s.Starts++
}

// Stop marks the scheduler inactive.
func (s *ManualScheduler) Stop() {
	s.Active = false
	s.Stops++
}

// TickerScheduler calls a tick function at a fixed interval from inside Run.
// Start, Stop and the tick function all run on the goroutine that calls Run
// (or before Run is entered), so the controller is never touched concurrently.
type TickerScheduler struct {
	interval time.Duration
	tick     func() bool
	active   bool
	stopped  bool
}

// NewTickerScheduler creates a scheduler that calls tick every interval while active.
// tick is usually Controller.Tick.
func NewTickerScheduler(interval time.Duration, tick func() bool) *TickerScheduler {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &TickerScheduler{interval: interval, tick: tick}
}

// Interval returns the delay between ticks.
func (s *TickerScheduler) Interval() time.Duration { return s.interval }

// Start enables ticking.
func (s *TickerScheduler) Start() {
	s.active = true
	s.stopped = false
}

// Stop disables ticking and makes Run return after the current tick.
func (s *TickerScheduler) Stop() {
	s.active = false
	s.stopped = true
}

// Run blocks, ticking while active, until ctx is cancelled or Stop is called.
// Returns ctx.Err() on cancellation and nil on Stop.
func (s *TickerScheduler) Run(ctx context.Context) error {
	if s.stopped {
		return nil
	}

	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if s.active {
				s.tick()
			}
			if s.stopped {
				return nil
			}
		}
	}
}
