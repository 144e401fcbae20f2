// Package tui provides the Bubble Tea front end for the simulator.
// It maps keys and mouse clicks to controller intents, drives automatic
// stepping with tick messages and renders grid snapshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to advance one generation.
// Seq identifies the run that scheduled it.
type TickMsg struct {
	Seq int
}

// teaScheduler is a life.Scheduler backed by tea.Tick.
// Controller callbacks happen inside Update, so Start and Stop only record
// what to do and the model hands the pending command back to Bubble Tea.
type teaScheduler struct {
	interval time.Duration
	seq      int
	active   bool
	pending  tea.Cmd
}

func newTeaScheduler(interval time.Duration) *teaScheduler {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &teaScheduler{interval: interval}
}

// Start begins a new run. Ticks from earlier runs become stale.
func (s *teaScheduler) Start() {
	s.seq++
	s.active = true
	s.pending = s.tickCmd()
}

// Stop ends the run. A tick already in flight is discarded on arrival.
func (s *teaScheduler) Stop() {
	s.seq++
	s.active = false
	s.pending = nil
}

// accept reports whether msg belongs to the current run.
func (s *teaScheduler) accept(msg TickMsg) bool {
	return s.active && msg.Seq == s.seq
}

// rearm schedules the next tick if the run is still active.
func (s *teaScheduler) rearm() {
	if s.active {
		s.pending = s.tickCmd()
	}
}

// take returns and clears the pending command.
func (s *teaScheduler) take() tea.Cmd {
	cmd := s.pending
	s.pending = nil
	return cmd
}

func (s *teaScheduler) tickCmd() tea.Cmd {
	seq := s.seq
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return TickMsg{Seq: seq}
	})
}
