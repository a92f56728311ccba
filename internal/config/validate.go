package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
// All problems are reported together.
func (c Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.World.SkyRatio <= 0 || c.World.SkyRatio > 1 {
		fail("world.sky_ratio must be in (0, 1], got %v", c.World.SkyRatio)
	}
	if c.World.Bounds < 0 {
		fail("world.bounds must not be negative, got %v", c.World.Bounds)
	}
	if c.Physics.RunSpeed < 0 {
		fail("physics.run_speed must not be negative, got %v", c.Physics.RunSpeed)
	}
	if c.Physics.Gravity < 0 {
		fail("physics.gravity must not be negative, got %v", c.Physics.Gravity)
	}
	if c.Spawn.Offset < 0 {
		fail("spawn.offset must not be negative, got %v", c.Spawn.Offset)
	}
	if c.Spawn.Offset > c.World.Bounds {
		fail("spawn.offset (%v) must not exceed world.bounds (%v) or the hazard respawns forever", c.Spawn.Offset, c.World.Bounds)
	}
	if c.Difficulty.BaseMultiplier <= 0 {
		fail("difficulty.base_multiplier must be positive, got %v", c.Difficulty.BaseMultiplier)
	}
	if c.Difficulty.Step < 0 {
		fail("difficulty.step must not be negative, got %v", c.Difficulty.Step)
	}
	if c.Difficulty.Every <= 0 {
		fail("difficulty.every must be positive, got %d", c.Difficulty.Every)
	}
	if c.Collision.HitboxShrink <= 0 || c.Collision.HitboxShrink > 1 {
		fail("collision.hitbox_shrink must be in (0, 1], got %v", c.Collision.HitboxShrink)
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		fail("display cell size must be positive, got %vx%v", c.Display.CellWidth, c.Display.CellHeight)
	}
	if c.Display.Density < 0 {
		fail("display.density must not be negative, got %v", c.Display.Density)
	}
	if c.Input.HoldWindow <= 0 {
		fail("input.hold_window must be positive, got %v", c.Input.HoldWindow)
	}
	if c.Input.RepeatDelay < 0 {
		fail("input.repeat_delay must not be negative, got %v", c.Input.RepeatDelay)
	}
	if c.Loop.TickRate <= 0 {
		fail("loop.tick_rate must be positive, got %d", c.Loop.TickRate)
	}
	if c.Loop.MaxFrame <= 0 {
		fail("loop.max_frame must be positive, got %v", c.Loop.MaxFrame)
	}

	return errors.Join(errs...)
}
