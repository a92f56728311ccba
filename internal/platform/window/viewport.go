package window

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// Viewport reports the window size in world units: logical window pixels
// times the monitor's device scale factor.
type Viewport struct {
	width, height int
	scale         func() float64
}

// NewViewport creates a viewport for a width x height window.
func NewViewport(width, height int) Viewport {
	return Viewport{width: width, height: height, scale: deviceScale}
}

// deviceScale returns the scale factor of the current monitor, 1 when unknown.
func deviceScale() float64 {
	m := ebiten.Monitor()
	if m == nil {
		return 1
	}
	if s := m.DeviceScaleFactor(); s > 0 {
		return s
	}
	return 1
}

// Size implements frame.Viewport.
func (v Viewport) Size() (w, h float64, err error) {
	if v.width <= 0 || v.height <= 0 {
		return 0, 0, errors.New("window size must be positive")
	}
	s := v.Density()
	return float64(v.width) * s, float64(v.height) * s, nil
}

// Density returns the device scale factor used for world units.
func (v Viewport) Density() float64 {
	s := v.scale()
	if s <= 0 {
		return 1
	}
	return s
}
