package physics

// DefaultHitboxShrink is the forgiveness applied to the first body of a test.
const DefaultHitboxShrink = 0.5

// Box is an axis-aligned rectangle stored as center and half extents.
type Box struct {
	CX, CY float64
	HW, HH float64
}

// BoxOf derives the bounding box of a body, multiplying its half extents by shrink.
func BoxOf(b Body, shrink float64) Box {
	hw, hh := b.HalfExtents()
	return Box{CX: b.X, CY: b.Y, HW: hw * shrink, HH: hh * shrink}
}

// Overlaps reports whether two boxes overlap on both axes.
// Touching edges count as overlap.
func (a Box) Overlaps(b Box) bool {
	if a.CX+a.HW < b.CX-b.HW || a.CX-a.HW > b.CX+b.HW {
		return false
	}
	if a.CY+a.HH < b.CY-b.HH || a.CY-a.HH > b.CY+b.HH {
		return false
	}
	return true
}

// Collider tests bodies against each other. Shrink scales the first body's
// hitbox only, so Collides(a, b) and Collides(b, a) may disagree.
type Collider struct {
	Shrink float64
}

// NewCollider returns a collider with the given shrink factor.
// Non-positive values fall back to DefaultHitboxShrink.
func NewCollider(shrink float64) Collider {
	if shrink <= 0 {
		shrink = DefaultHitboxShrink
	}
	return Collider{Shrink: shrink}
}

// Collides reports whether a's shrunken box overlaps b's full box.
func (c Collider) Collides(a, b Body) bool {
	return BoxOf(a, c.Shrink).Overlaps(BoxOf(b, 1))
}
