package core

// Action is a semantic user intent, abstracted from physical key presses
// and mouse events.
type Action int

const (
	ActionNone      Action = iota
	ActionToggle           // Space, Enter, left click - flip the cell under the cursor
	ActionStartStop        // S, P - start or stop continuous stepping
	ActionStep             // N - advance one generation while stopped
	ActionRandomize        // R - fill the grid randomly
	ActionClear            // C - kill every cell
	ActionUp               // K, Up arrow - move cursor
	ActionDown             // J, Down arrow
	ActionLeft             // H, Left arrow
	ActionRight            // L, Right arrow
	ActionHelp             // ? - toggle full help
	ActionQuit             // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionToggle:
		return "Toggle"
	case ActionStartStop:
		return "StartStop"
	case ActionStep:
		return "Step"
	case ActionRandomize:
		return "Randomize"
	case ActionClear:
		return "Clear"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Edits reports whether the action mutates the grid and is therefore only
// honoured while the simulation is stopped.
func (a Action) Edits() bool {
	switch a {
	case ActionToggle, ActionStep, ActionRandomize, ActionClear:
		return true
	}
	return false
}

// Delta returns the cursor movement for a direction action.
func (a Action) Delta() (dRow, dCol int) {
	switch a {
	case ActionUp:
		return -1, 0
	case ActionDown:
		return 1, 0
	case ActionLeft:
		return 0, -1
	case ActionRight:
		return 0, 1
	}
	return 0, 0
}
