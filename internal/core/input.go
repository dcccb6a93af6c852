package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - nudge the pointer up
	ActionDown           // S, Down arrow - nudge the pointer down
	ActionLeft           // A, Left arrow - nudge the pointer left
	ActionRight          // D, Right arrow - nudge the pointer right
	ActionDash           // Space, mouse click - dash toward the pointer
	ActionConfirm        // Enter - confirm selection
	ActionBack           // B, Escape - go back
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
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
	case ActionDash:
		return "Dash"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
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

// Pointer is a screen cell the player is aiming at.
type Pointer struct {
	X, Y int
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame and the
// last known pointer position.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer is valid only when HasPointer is true.
	Pointer    Pointer
	HasPointer bool
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

// SetPointer records the pointer cell for this frame.
func (f *InputFrame) SetPointer(x, y int) {
	f.Pointer = Pointer{X: x, Y: y}
	f.HasPointer = true
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.HasPointer = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	clone.HasPointer = f.HasPointer
	return clone
}
