// Package physics holds the kinematic state of on-screen entities and the
// bounding-box test used between them.
package physics

// Size is the footprint of an entity at scale 1, in world units.
type Size struct {
	W float64 `yaml:"width"`
	H float64 `yaml:"height"`
}

// Body is the position, orientation and their rates of change for one entity.
// Position is the center of the entity.
type Body struct {
	X, Y  float64 // Center position
	Angle float64 // Orientation in radians
	DX    float64 // Rate of change of X per second
	DY    float64 // Rate of change of Y per second
	DA    float64 // Rate of change of Angle per second
	Scale float64 // Render scale, 1 is the reference size

	size Size
}

// NewBody creates a body with an immutable reference size.
func NewBody(size Size, scale float64) Body {
	return Body{Scale: scale, size: size}
}

// Size returns the reference size at scale 1.
func (b Body) Size() Size {
	return b.size
}

// HalfExtents returns half the scaled width and height.
func (b Body) HalfExtents() (hw, hh float64) {
	return b.size.W * b.Scale / 2, b.size.H * b.Scale / 2
}

// Update advances position and angle by their rates over elapsed seconds.
// elapsed must be finite and >= 0; the caller guards it.
func (b *Body) Update(elapsed float64) {
	b.X += b.DX * elapsed
	b.Y += b.DY * elapsed
	b.Angle += b.DA * elapsed
}

// Stop zeroes every rate of change.
func (b *Body) Stop() {
	b.DX = 0
	b.DY = 0
	b.DA = 0
}

// MoveTo places the body at (x, y) without touching its rates.
func (b *Body) MoveTo(x, y float64) {
	b.X = x
	b.Y = y
}
