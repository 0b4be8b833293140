package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - move cursor up
	ActionDown             // S, Down arrow - move cursor down
	ActionLeft             // A, Left arrow - move cursor left
	ActionRight            // D, Right arrow - move cursor right
	ActionSelect1          // 1 - select first next tile
	ActionSelect2          // 2 - select second next tile
	ActionSelect3          // 3 - select third next tile
	ActionRotateCW         // X - rotate selected tile clockwise
	ActionRotateCCW        // Z - rotate selected tile counter-clockwise
	ActionPlace            // Enter, Space - place selected tile at cursor
	ActionUndo             // U - undo last placement
	ActionEnd              // E - end the session
	ActionRestart          // R key - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect1:
		return "Select1"
	case ActionSelect2:
		return "Select2"
	case ActionSelect3:
		return "Select3"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionPlace:
		return "Place"
	case ActionUndo:
		return "Undo"
	case ActionEnd:
		return "End"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected between two simulation ticks:
// the triggered actions and, optionally, one pointer click.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	click   Point
	clicked bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetClick records a pointer click at screen cell (x, y). A later click in
// the same frame replaces an earlier one.
func (f *InputFrame) SetClick(x, y int) {
	f.click = Point{X: x, Y: y}
	f.clicked = true
}

// Click returns the clicked cell, if any.
func (f InputFrame) Click() (Point, bool) {
	return f.click, f.clicked
}

// Empty reports whether nothing was triggered this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && !f.clicked
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.clicked = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.click = f.click
	clone.clicked = f.clicked
	return clone
}
