// Package report tracks per-session simulation statistics and renders them
// as population charts. It sits on the presentation side of the engine: the
// engine itself keeps no history.
package report

import (
	"github.com/vovakirdan/tui-life/internal/life"
)

// maxHistory bounds the population series kept for charts.
const maxHistory = 10000

// Session is a life.Observer that counts generations and tracks population.
type Session struct {
	generations int
	peak        int
	population  int
	history     []int
	lastEdit    string
}

// NewSession creates a session starting from the given population.
func NewSession(population int) *Session {
	return &Session{population: population, peak: population}
}

// CellChanged keeps the population current after a toggle.
func (s *Session) CellChanged(_, _ int, c life.Cell) {
	if c == life.Alive {
		s.population++
	} else {
		s.population--
	}
	s.peak = max(s.peak, s.population)
	s.lastEdit = "toggle"
}

// GridReplaced records a new generation or an edit of the whole grid.
func (s *Session) GridReplaced(g *life.Grid, reason life.Reason) {
	s.population = g.Population()
	s.peak = max(s.peak, s.population)

	if reason != life.ReasonStep {
		s.lastEdit = reason.String()
		return
	}

	s.generations++
	if len(s.history) < maxHistory {
		s.history = append(s.history, s.population)
	}
}

// Generations returns how many generations were computed in this session.
func (s *Session) Generations() int { return s.generations }

// Population returns the live cell count of the latest grid.
func (s *Session) Population() int { return s.population }

// Peak returns the highest population seen.
func (s *Session) Peak() int { return s.peak }

// History returns the population after each generation, oldest first.
func (s *Session) History() []int { return s.history }

// LastEdit names the most recent non-step change ("toggle", "randomize", "clear"), or "".
func (s *Session) LastEdit() string { return s.lastEdit }
