package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/veggiejump.yaml
var defaultYAML []byte

// DefaultConfig returns the hard-coded configuration, used when the embedded
// YAML cannot be parsed and as the base that every file is decoded over.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			SkyRatio: 2.0 / 3.0,
			Bounds:   100,
		},
		Physics: PhysicsConfig{
			RunSpeed:    1000,
			JumpImpulse: -1200,
			Gravity:     1800, // 30 units per frame at 60 fps
		},
		Spawn: SpawnConfig{
			Offset: 100,
			Spin:   7,
		},
		Difficulty: DifficultyConfig{
			BaseMultiplier: 0.5,
			Step:           0.2,
			Every:          5,
		},
		Collision: CollisionConfig{
			HitboxShrink: 0.5,
		},
		Display: DisplayConfig{
			CellWidth:  16,
			CellHeight: 32,
			Density:    0,
		},
		Input: InputConfig{
			HoldWindow:  150 * time.Millisecond,
			RepeatDelay: 0,
		},
		Loop: LoopConfig{
			TickRate: 60,
			MaxFrame: 100 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}

// Scaled returns a copy with distance-based physics multiplied by a display
// density factor, so movement covers the same share of a denser screen.
// Spawn offset and bounds padding stay in unscaled units.
func (c Config) Scaled(density float64) Config {
	if density <= 0 || density == 1 {
		return c
	}
	c.Physics.RunSpeed *= density
	c.Physics.JumpImpulse *= density
	c.Physics.Gravity *= density
	return c
}
