package veggie

import "github.com/vovakirdan/veggie-jump/internal/physics"

// State is the phase of a session.
type State int

const (
	StateNotStarted State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Tick       uint64
	State      State
	Score      int
	Multiplier float64
	ScreenW    float64
	ScreenH    float64
	Floor      float64 // Y of the ground line
	Grounded   bool
	Player     physics.Body
	Hazard     physics.Body
}

// StepResult is returned by Tick.
type StepResult struct {
	Snapshot Snapshot
	Events   []Event
}

// Snapshot returns the current state for rendering and tests.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		State:      g.state,
		Score:      g.score,
		Multiplier: g.multiplier,
		ScreenW:    g.screenW,
		ScreenH:    g.screenH,
		Floor:      g.floor(),
		Grounded:   g.grounded(),
		Player:     g.player,
		Hazard:     g.hazard,
	}
}
