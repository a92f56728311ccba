// Package frame runs one update-then-render pass of the game per host frame.
// Hosts (the terminal loop and the desktop window) own the clock and call
// Driver.Step; everything platform specific sits behind the interfaces here.
package frame

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/veggie-jump/internal/core"
	"github.com/vovakirdan/veggie-jump/internal/games/veggie"
)

// ErrNoViewport is returned when the platform cannot report a usable screen size.
var ErrNoViewport = errors.New("no viewport")

// Viewport reports the drawable area in world units.
type Viewport interface {
	Size() (w, h float64, err error)
}

// InputSource samples which actions are held right now.
type InputSource interface {
	Snapshot() core.InputSnapshot
}

// Renderer draws one frame of game state.
type Renderer interface {
	Render(veggie.Snapshot)
}

// EventSink receives every game event after it has been logged.
type EventSink interface {
	Handle(veggie.Event)
}

// Simulation is the game as seen by the driver. *veggie.Game satisfies it.
type Simulation interface {
	Tick(elapsed float64, in core.InputSnapshot) veggie.StepResult
	Snapshot() veggie.Snapshot
}

// Options configures a Driver.
type Options struct {
	Game     Simulation
	Input    InputSource
	Renderer Renderer
	Sinks    []EventSink
	Logger   *log.Logger   // nil discards
	MaxFrame time.Duration // 0 disables the cap
}

// Driver samples input, advances the game, reports events and renders.
type Driver struct {
	game     Simulation
	input    InputSource
	renderer Renderer
	sinks    []EventSink
	logger   *log.Logger
	maxFrame time.Duration

	last veggie.Snapshot
}

// New creates a driver. Game and Input are required.
func New(opts Options) *Driver {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{
		game:     opts.Game,
		input:    opts.Input,
		renderer: opts.Renderer,
		sinks:    opts.Sinks,
		logger:   logger,
		maxFrame: opts.MaxFrame,
		last:     opts.Game.Snapshot(),
	}
}

// Step runs one frame covering elapsed wall time. It returns false once the
// player asked to quit; the game is not advanced on that frame.
func (d *Driver) Step(elapsed time.Duration) bool {
	in := d.input.Snapshot()
	if in.Quit {
		d.logger.Info("quit requested", "score", d.last.Score, "state", d.last.State)
		return false
	}

	if elapsed < 0 {
		elapsed = 0
	}
	if d.maxFrame > 0 && elapsed > d.maxFrame {
		d.logger.Debug("frame capped", "elapsed", elapsed, "max", d.maxFrame)
		elapsed = d.maxFrame
	}

	res := d.game.Tick(elapsed.Seconds(), in)
	d.last = res.Snapshot

	for _, e := range res.Events {
		d.report(e)
	}

	if d.renderer != nil {
		d.renderer.Render(res.Snapshot)
	}
	return true
}

// Redraw renders the last snapshot again without advancing the game,
// for hosts that repaint after a resize.
func (d *Driver) Redraw() {
	if d.renderer != nil {
		d.renderer.Render(d.last)
	}
}

// Last returns the snapshot produced by the most recent Step.
func (d *Driver) Last() veggie.Snapshot {
	return d.last
}

func (d *Driver) report(e veggie.Event) {
	switch e := e.(type) {
	case veggie.StartedEvent:
		d.logger.Info("game started", "multiplier", e.Multiplier)
	case veggie.JumpedEvent:
		d.logger.Debug("jump")
	case veggie.DodgedEvent:
		d.logger.Info("hazard dodged", "score", e.Score, "next_edge", e.Edge)
	case veggie.DifficultyEvent:
		d.logger.Info("difficulty increased", "score", e.Score, "multiplier", e.Multiplier)
	case veggie.GameOverEvent:
		d.logger.Info("game over", "score", e.Score)
	}

	for _, s := range d.sinks {
		s.Handle(e)
	}
}

// Runtime measures the viewport and builds the runtime settings for a new game.
// Non-positive density and tick rate keep the defaults.
func Runtime(v Viewport, density float64, tickRate int, seed int64) (core.RuntimeConfig, error) {
	w, h, err := v.Size()
	if err != nil {
		return core.RuntimeConfig{}, fmt.Errorf("%w: %w", ErrNoViewport, err)
	}
	if !core.IsFinite(w) || !core.IsFinite(h) || w <= 0 || h <= 0 {
		return core.RuntimeConfig{}, fmt.Errorf("%w: size %vx%v", ErrNoViewport, w, h)
	}
	rt := core.DefaultConfig()
	rt.ScreenW, rt.ScreenH = w, h
	rt.Seed = seed
	if density > 0 {
		rt.Density = density
	}
	if tickRate > 0 {
		rt.TickRate = tickRate
	}
	return rt, nil
}
