package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
)

// Cell glyphs. Each grid cell is two characters wide so it looks square.
const (
	cellWidth  = 2
	aliveGlyph = "  "
	deadGlyph  = "· "
	cursorDead = "[]"
)

// palette maps core.Color roles to lipgloss styles.
type palette map[core.Color]lipgloss.Style

// newPalette builds styles for the theme. Cells are painted with background
// colors so that dead and alive cells look like the original board.
// r must be the renderer of the output the styles are written to.
func newPalette(r *lipgloss.Renderer, theme config.ThemeConfig) palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return palette{
		core.ColorDefault: r.NewStyle(),
		core.ColorAlive:   r.NewStyle().Background(lipgloss.Color(theme.Alive)),
		core.ColorDead: r.NewStyle().
			Foreground(lipgloss.Color(theme.Grid)).
			Background(lipgloss.Color(theme.Dead)),
		core.ColorCursor:  r.NewStyle().Foreground(lipgloss.Color(theme.Alive)).Background(lipgloss.Color(theme.Cursor)),
		core.ColorGrid:    r.NewStyle().Foreground(lipgloss.Color(theme.Grid)),
		core.ColorRunning: r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		core.ColorStopped: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		core.ColorMuted:   r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color are grouped to keep escape sequences short.
func (p palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
