package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - jump
	ActionLeft           // A, Left arrow - run left
	ActionRight          // D, Right arrow - run right
	ActionStart          // Space - leave the title screen
	ActionRestart        // Enter - play again after game over
	ActionQuit           // Esc, Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputSnapshot is the "is held" state of every action, sampled once per frame.
// It is a plain value: games derive edges (pressed this frame) themselves by
// comparing against what they saw on the previous frame.
type InputSnapshot struct {
	Quit    bool
	Jump    bool
	Left    bool
	Right   bool
	Start   bool
	Restart bool
}

// SnapshotOf builds a snapshot with the given actions held.
func SnapshotOf(actions ...Action) InputSnapshot {
	var s InputSnapshot
	for _, a := range actions {
		s.Set(a, true)
	}
	return s
}

// Set marks an action as held or released.
func (s *InputSnapshot) Set(a Action, held bool) {
	switch a {
	case ActionJump:
		s.Jump = held
	case ActionLeft:
		s.Left = held
	case ActionRight:
		s.Right = held
	case ActionStart:
		s.Start = held
	case ActionRestart:
		s.Restart = held
	case ActionQuit:
		s.Quit = held
	}
}

// Held reports whether the action is held in this snapshot.
func (s InputSnapshot) Held(a Action) bool {
	switch a {
	case ActionJump:
		return s.Jump
	case ActionLeft:
		return s.Left
	case ActionRight:
		return s.Right
	case ActionStart:
		return s.Start
	case ActionRestart:
		return s.Restart
	case ActionQuit:
		return s.Quit
	default:
		return false
	}
}

// Empty reports whether no action is held.
func (s InputSnapshot) Empty() bool {
	return s == InputSnapshot{}
}

// Actions lists every action a snapshot can carry, in a stable order.
func Actions() []Action {
	return []Action{ActionJump, ActionLeft, ActionRight, ActionStart, ActionRestart, ActionQuit}
}
