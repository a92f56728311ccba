// Package veggie implements Veggie Jump: the player runs and jumps along the
// ground while a spinning vegetable is thrown at them from off-screen. Every
// throw that leaves the playfield scores a point and the throws speed up.
package veggie

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/veggie-jump/internal/config"
	"github.com/vovakirdan/veggie-jump/internal/core"
	"github.com/vovakirdan/veggie-jump/internal/physics"
)

// ErrInvalidViewport is returned when the screen cannot hold the game.
var ErrInvalidViewport = errors.New("invalid viewport")

// ErrInvalidEntity is returned for an entity with a degenerate footprint.
var ErrInvalidEntity = errors.New("invalid entity")

// groundTolerance is how far above the floor the player still counts as grounded.
const groundTolerance = 1

// Entity is the plain-data description of a body: footprint and render scale.
type Entity struct {
	Size  physics.Size
	Scale float64
}

func (e Entity) validate(name string) error {
	if e.Size.W <= 0 || e.Size.H <= 0 || e.Scale <= 0 {
		return fmt.Errorf("%w: %s is %vx%v at scale %v", ErrInvalidEntity, name, e.Size.W, e.Size.H, e.Scale)
	}
	return nil
}

// Options configures a new Game.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig // Screen size and density; Seed is used when Rand is nil
	Player  Entity
	Hazard  Entity
	Rand    Rand
}

// Game implements the Veggie Jump state machine and per-frame physics.
type Game struct {
	cfg      config.Config
	screenW  float64
	screenH  float64
	collider physics.Collider
	director *SpawnDirector

	player physics.Body
	hazard physics.Body

	state      State
	score      int
	multiplier float64
	tick       uint64

	// Held state of edge-triggered inputs on the previous frame.
	jumpHeld    bool
	startHeld   bool
	restartHeld bool

	events []Event
}

// New validates the options and creates a game on the title screen.
// Physics constants and entity scales are multiplied by Runtime.Density.
func New(opts Options) (*Game, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	rt := opts.Runtime
	if !core.IsFinite(rt.ScreenW) || !core.IsFinite(rt.ScreenH) || rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidViewport, rt.ScreenW, rt.ScreenH)
	}
	density := rt.Density
	if density <= 0 {
		density = 1
	}

	if err := opts.Player.validate("player"); err != nil {
		return nil, err
	}
	if err := opts.Hazard.validate("hazard"); err != nil {
		return nil, err
	}

	player := physics.NewBody(opts.Player.Size, opts.Player.Scale*density)
	if hw, _ := player.HalfExtents(); rt.ScreenW < 2*hw {
		return nil, fmt.Errorf("%w: %v wide screen cannot fit a %v wide player", ErrInvalidViewport, rt.ScreenW, 2*hw)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rt.Seed))
	}

	cfg := opts.Config.Scaled(density)
	g := &Game{
		cfg:      cfg,
		screenW:  rt.ScreenW,
		screenH:  rt.ScreenH,
		collider: physics.NewCollider(cfg.Collision.HitboxShrink),
		director: NewSpawnDirector(rng, cfg.Spawn, cfg.Difficulty),
		player:   player,
		hazard:   physics.NewBody(opts.Hazard.Size, opts.Hazard.Scale*density),
	}
	g.reset()
	return g, nil
}

// reset puts the game on the title screen with the hazard parked off-screen.
func (g *Game) reset() {
	g.state = StateNotStarted
	g.score = 0
	g.multiplier = g.cfg.Difficulty.BaseMultiplier
	g.tick = 0
	g.jumpHeld, g.startHeld, g.restartHeld = false, false, false

	g.player.Stop()
	g.player.Angle = 0
	g.player.MoveTo(g.screenW/2, g.floor())

	g.hazard.Stop()
	g.hazard.Angle = 0
	g.hazard.MoveTo(-g.cfg.Spawn.Offset, -g.cfg.Spawn.Offset)
}

// StartGame begins a new round: the multiplier goes back to its base, the
// player returns to the middle of the floor, the hazard is thrown once and
// the score is zeroed.
//
// The throw still sees the previous round's score. A first start (score 0)
// or a restart after a multiple of the bump interval raises the multiplier
// one step; any other restart keeps the base.
func (g *Game) StartGame() {
	g.multiplier = g.cfg.Difficulty.BaseMultiplier

	g.player.Stop()
	g.player.MoveTo(g.screenW/2, g.floor())

	g.throw()
	g.score = 0
	g.state = StatePlaying
	g.emit(StartedEvent{Multiplier: g.multiplier})
}

// Tick advances the game by elapsed seconds using the held input of this frame.
// Negative or non-finite elapsed time is treated as 0.
func (g *Game) Tick(elapsed float64, in core.InputSnapshot) StepResult {
	g.events = g.events[:0]
	if !core.IsFinite(elapsed) || elapsed < 0 {
		elapsed = 0
	}

	g.handleInput(in)

	// Freeze everything once the game is lost
	if g.state == StateGameOver {
		g.player.Stop()
		g.hazard.Stop()
	}

	g.player.Update(elapsed)
	g.hazard.Update(elapsed)

	// Gravity applies on the ground too; the floor clamp cancels it
	g.player.DY += g.cfg.Physics.Gravity * elapsed

	g.clampPlayer()

	if g.state == StatePlaying {
		if g.hazardGone() {
			g.throw()
			g.score++
			g.emit(DodgedEvent{Score: g.score, Edge: g.director.LastEdge()})
		}

		if g.collider.Collides(g.player, g.hazard) {
			g.state = StateGameOver
			g.emit(GameOverEvent{Score: g.score})
		}
	}

	g.tick++

	events := make([]Event, len(g.events))
	copy(events, g.events)
	return StepResult{Snapshot: g.Snapshot(), Events: events}
}

// handleInput turns held keys into state changes and player velocity.
func (g *Game) handleInput(in core.InputSnapshot) {
	startPressed := in.Start && !g.startHeld
	restartPressed := in.Restart && !g.restartHeld
	g.startHeld = in.Start
	g.restartHeld = in.Restart

	switch g.state {
	case StateNotStarted:
		if startPressed {
			g.StartGame()
			// The start key is usually the jump key; do not jump on the same press
			g.jumpHeld = true
			return
		}
		g.jumpHeld = in.Jump
		return

	case StateGameOver:
		if !restartPressed {
			g.jumpHeld = in.Jump
			return
		}
		g.StartGame()
	}

	if in.Jump {
		if !g.jumpHeld && g.grounded() {
			g.player.DY = g.cfg.Physics.JumpImpulse
			g.emit(JumpedEvent{})
		}
		g.jumpHeld = true
	} else {
		g.jumpHeld = false
	}

	switch {
	case in.Left:
		g.player.DX = -g.cfg.Physics.RunSpeed
	case in.Right:
		g.player.DX = g.cfg.Physics.RunSpeed
	default:
		g.player.DX = 0
	}
}

// clampPlayer keeps the player on or above the floor and inside the side edges.
func (g *Game) clampPlayer() {
	if floor := g.floor(); g.player.Y > floor {
		g.player.Y = floor
		g.player.DY = 0
	}

	hw, _ := g.player.HalfExtents()
	if g.player.X > g.screenW-hw {
		g.player.X = g.screenW - hw
		g.player.DX = 0
	}
	if g.player.X < hw {
		g.player.X = hw
		g.player.DX = 0
	}
}

// throw respawns the hazard and records a difficulty bump if there was one.
func (g *Game) throw() {
	before := g.multiplier
	g.multiplier = g.director.Spawn(&g.hazard, g.player, g.screenW, g.screenH, g.score, g.multiplier)
	if g.multiplier > before {
		g.emit(DifficultyEvent{Score: g.score, Multiplier: g.multiplier})
	}
}

// hazardGone reports whether the hazard is outside the padded screen.
func (g *Game) hazardGone() bool {
	b := g.cfg.World.Bounds
	h := g.hazard
	return h.X < -b || h.X > g.screenW+b || h.Y < -b || h.Y > g.screenH+b
}

func (g *Game) floor() float64 {
	return g.screenH * g.cfg.World.SkyRatio
}

func (g *Game) grounded() bool {
	return g.player.Y >= g.floor()-groundTolerance
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// State returns the current phase.
func (g *Game) State() State {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Multiplier returns the current hazard speed multiplier.
func (g *Game) Multiplier() float64 {
	return g.multiplier
}
