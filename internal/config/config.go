// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for Veggie Jump.
package config

import "time"

// Config contains all tunables of the game. Distances are in world units
// at design density; see Scaled.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Collision  CollisionConfig  `yaml:"collision"`
	Display    DisplayConfig    `yaml:"display"`
	Input      InputConfig      `yaml:"input"`
	Loop       LoopConfig       `yaml:"loop"`
}

// WorldConfig defines the playfield layout.
type WorldConfig struct {
	SkyRatio float64 `yaml:"sky_ratio"` // Share of the screen above the floor
	Bounds   float64 `yaml:"bounds"`    // Padding around the screen before the hazard counts as gone
}

// PhysicsConfig defines player movement.
type PhysicsConfig struct {
	RunSpeed    float64 `yaml:"run_speed"`    // Horizontal speed while a direction is held
	JumpImpulse float64 `yaml:"jump_impulse"` // Vertical velocity set on jump (negative = up)
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration in units/s²
}

// SpawnConfig defines how the hazard re-enters the playfield.
type SpawnConfig struct {
	Offset float64 `yaml:"offset"` // Distance outside the screen edge
	Spin   float64 `yaml:"spin"`   // Angular velocity in radians/s
}

// DifficultyConfig defines the hazard speed progression.
type DifficultyConfig struct {
	BaseMultiplier float64 `yaml:"base_multiplier"` // Multiplier at game start, before the first bump
	Step           float64 `yaml:"step"`            // Added on every spawn where score % every == 0
	Every          int     `yaml:"every"`
}

// CollisionConfig defines hitbox forgiveness.
type CollisionConfig struct {
	HitboxShrink float64 `yaml:"hitbox_shrink"` // Applied to the player's hitbox only
}

// DisplayConfig defines how world units map to the terminal.
type DisplayConfig struct {
	CellWidth  float64 `yaml:"cell_width"`  // World units per terminal column
	CellHeight float64 `yaml:"cell_height"` // World units per terminal row
	Density    float64 `yaml:"density"`     // 0 = ask the platform
}

// InputConfig defines key handling for terminals, which report presses but not releases.
type InputConfig struct {
	HoldWindow  time.Duration `yaml:"hold_window"`  // A key counts as held this long after its last press
	RepeatDelay time.Duration `yaml:"repeat_delay"` // Hold for a fresh press until auto-repeat starts; 0 disables
}

// LoopConfig defines the frame loop.
type LoopConfig struct {
	TickRate int           `yaml:"tick_rate"`
	MaxFrame time.Duration `yaml:"max_frame"` // Longest elapsed time a single frame may simulate
}

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetFixed  Preset = "fixed"
)
