// Package sprites is the read-only catalog of entity footprints and their
// terminal and window appearance. Physics only needs the sizes; the art is
// for renderers.
package sprites

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/veggie-jump/internal/physics"
)

// Sprite identifiers used by the game.
const (
	Player = "player"
	Hazard = "hazard"
)

var (
	// ErrUnknownSprite is returned when a lookup names a sprite the catalog lacks.
	ErrUnknownSprite = errors.New("unknown sprite")
	// ErrInvalidSprite is returned for sprites with a degenerate footprint.
	ErrInvalidSprite = errors.New("invalid sprite")
)

//go:embed defaults/sprites.yaml
var defaultYAML []byte

// Sprite describes one entity's footprint and look.
type Sprite struct {
	physics.Size `yaml:",inline"`

	Scale  float64    `yaml:"scale"`  // Default render scale at design density
	Color  string     `yaml:"color"`  // Terminal color name, see core.ParseColor
	RGB    string     `yaml:"rgb"`    // Window color as #rrggbb
	Frames [][]string `yaml:"frames"` // Terminal art, one list of rows per frame
}

// Frame returns art frame i, wrapping around. Returns nil when there is no art.
func (s Sprite) Frame(i int) []string {
	if len(s.Frames) == 0 {
		return nil
	}
	i %= len(s.Frames)
	if i < 0 {
		i += len(s.Frames)
	}
	return s.Frames[i]
}

type file struct {
	Sprites map[string]Sprite `yaml:"sprites"`
}

// Catalog is an immutable set of sprites keyed by id.
type Catalog struct {
	sprites map[string]Sprite
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultYAML)
}

// Load reads a catalog from path, or the embedded default when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sprites %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a catalog.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse sprites: %w", err)
	}
	for id, s := range f.Sprites {
		if s.W <= 0 || s.H <= 0 {
			return nil, fmt.Errorf("%w: %q has size %vx%v", ErrInvalidSprite, id, s.W, s.H)
		}
		if s.Scale <= 0 {
			return nil, fmt.Errorf("%w: %q has scale %v", ErrInvalidSprite, id, s.Scale)
		}
	}
	return &Catalog{sprites: f.Sprites}, nil
}

// Lookup returns the sprite with the given id.
func (c *Catalog) Lookup(id string) (Sprite, error) {
	s, ok := c.sprites[id]
	if !ok {
		return Sprite{}, fmt.Errorf("%w: %q", ErrUnknownSprite, id)
	}
	return s, nil
}

// IDs returns every sprite id, sorted.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.sprites))
	for id := range c.sprites {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
