package core

// Action represents a semantic intent, abstracted from physical key presses
// and swipe gestures.
type Action int

const (
	ActionNone      Action = iota
	ActionLaneLeft         // A, Left arrow, swipe left
	ActionLaneRight        // D, Right arrow, swipe right
	ActionJump             // W, Up arrow, Space, swipe up
	ActionDuck             // S, Down arrow, swipe down (fast-fall while airborne)
	ActionConfirm          // Enter - start a run / confirm selection
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart after game over
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLaneLeft:
		return "LaneLeft"
	case ActionLaneRight:
		return "LaneRight"
	case ActionJump:
		return "Jump"
	case ActionDuck:
		return "Duck"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the intent mailbox between the input listener and the
// simulation: listeners Set actions between ticks, the next Step consumes
// them and the host clears the frame. Setting an action twice in one frame
// is the same as setting it once.
//
// Lane changes are counted rather than flagged so two quick presses within a
// single frame still move two lanes.
type InputFrame struct {
	actions   uint32
	laneDelta int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	switch a {
	case ActionNone:
		return
	case ActionLaneLeft:
		f.laneDelta--
	case ActionLaneRight:
		f.laneDelta++
	}
	f.actions |= 1 << uint(a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if a == ActionNone {
		return false
	}
	return f.actions&(1<<uint(a)) != 0
}

// LaneDelta returns the net lane change requested this frame
// (negative = left).
func (f InputFrame) LaneDelta() int {
	return f.laneDelta
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.actions == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = 0
	f.laneDelta = 0
}
