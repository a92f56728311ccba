package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Screen dimensions are in world units (logical pixels at design density),
// already multiplied by the display density factor.
type RuntimeConfig struct {
	ScreenW  float64 // Viewport width in world units
	ScreenH  float64 // Viewport height in world units
	Density  float64 // Display density factor applied to distance-based constants
	TickRate int     // Frames per second requested from the host loop
	Seed     int64   // RNG seed, 0 means seed from the clock in the platform layer
}

// DefaultConfig returns the runtime settings hosts start from before
// applying the measured viewport.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  800,
		ScreenH:  480,
		Density:  1,
		TickRate: 60,
		Seed:     0,
	}
}
