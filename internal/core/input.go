package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform keymap produces actions; the frame-loop driver
// routes them to the clock (pause), the input aggregator (lanes, jump)
// or itself (restart, quit).
type Action int

const (
	ActionNone Action = iota
	ActionLaneLeft
	ActionLaneRight
	ActionJump
	ActionPause
	ActionRestart
	ActionQuit
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
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
