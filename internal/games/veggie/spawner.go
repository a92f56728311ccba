package veggie

import (
	"github.com/vovakirdan/veggie-jump/internal/config"
	"github.com/vovakirdan/veggie-jump/internal/physics"
)

// Rand is the source of randomness for spawning. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Edge is the side of the screen the hazard enters from.
type Edge int

const (
	EdgeLeft Edge = iota + 1
	EdgeTop
	EdgeRight
	EdgeBottom
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// SpawnDirector relocates the hazard off-screen and aims it at a target.
type SpawnDirector struct {
	rng    Rand
	offset float64
	spin   float64
	step   float64
	every  int
	last   Edge
}

// NewSpawnDirector creates a director drawing from rng.
func NewSpawnDirector(rng Rand, spawn config.SpawnConfig, diff config.DifficultyConfig) *SpawnDirector {
	every := diff.Every
	if every <= 0 {
		every = 1
	}
	return &SpawnDirector{
		rng:    rng,
		offset: spawn.Offset,
		spin:   spawn.Spin,
		step:   diff.Step,
		every:  every,
	}
}

// Spawn moves hazard just outside a random edge of a screenW x screenH screen
// and sets its velocity toward target. It returns the multiplier to use from
// now on: bumped by one step when score is a multiple of the progression
// interval, including score 0.
//
// The velocity is the offset to the target scaled by the multiplier, not a
// unit vector, so distant spawns start faster.
func (d *SpawnDirector) Spawn(hazard *physics.Body, target physics.Body, screenW, screenH float64, score int, multiplier float64) float64 {
	d.last = Edge(d.rng.Intn(4) + 1)
	switch d.last {
	case EdgeLeft:
		hazard.X = -d.offset
		hazard.Y = d.rng.Float64() * screenH
	case EdgeTop:
		hazard.Y = -d.offset
		hazard.X = d.rng.Float64() * screenW
	case EdgeRight:
		hazard.X = screenW + d.offset
		hazard.Y = d.rng.Float64() * screenH
	case EdgeBottom:
		hazard.Y = screenH + d.offset
		hazard.X = d.rng.Float64() * screenW
	}

	if score%d.every == 0 {
		multiplier += d.step
	}

	hazard.DX = (target.X - hazard.X) * multiplier
	hazard.DY = (target.Y - hazard.Y) * multiplier
	hazard.DA = d.spin
	return multiplier
}

// LastEdge returns the edge chosen by the most recent Spawn.
func (d *SpawnDirector) LastEdge() Edge {
	return d.last
}
