package core

// Color is a semantic foreground role for a screen cell.
// The platform layer maps roles to terminal colors from the theme.
type Color uint8

const (
	ColorDefault Color = iota
	ColorAlive
	ColorDead
	ColorGrid
	ColorCursor
	ColorRunning
	ColorStopped
	ColorMuted
)

// String returns the role name.
func (c Color) String() string {
	switch c {
	case ColorAlive:
		return "alive"
	case ColorDead:
		return "dead"
	case ColorGrid:
		return "grid"
	case ColorCursor:
		return "cursor"
	case ColorRunning:
		return "running"
	case ColorStopped:
		return "stopped"
	case ColorMuted:
		return "muted"
	default:
		return "default"
	}
}
