package veggie

// Event is something that happened during a tick. Hosts log them and play
// sounds; the game never reads them back.
type Event interface {
	veggieEvent()
}

// StartedEvent is emitted when a game (re)starts.
type StartedEvent struct {
	Multiplier float64
}

func (StartedEvent) veggieEvent() {}

// JumpedEvent is emitted when the player leaves the floor.
type JumpedEvent struct{}

func (JumpedEvent) veggieEvent() {}

// DodgedEvent is emitted when the hazard leaves the playfield and the score goes up.
type DodgedEvent struct {
	Score int
	Edge  Edge // Edge the next hazard enters from
}

func (DodgedEvent) veggieEvent() {}

// DifficultyEvent is emitted when a spawn raises the hazard speed multiplier.
type DifficultyEvent struct {
	Score      int
	Multiplier float64
}

func (DifficultyEvent) veggieEvent() {}

// GameOverEvent is emitted once when the hazard hits the player.
type GameOverEvent struct {
	Score int
}

func (GameOverEvent) veggieEvent() {}
