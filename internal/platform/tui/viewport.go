package tui

import (
	"fmt"

	"golang.org/x/term"

	"github.com/vovakirdan/veggie-jump/internal/config"
)

// helpRows is the number of terminal rows taken by the help line.
const helpRows = 1

// TermViewport reports the terminal size in world units.
type TermViewport struct {
	fd      int
	cellW   float64
	cellH   float64
	density float64
	getSize func(fd int) (cols, rows int, err error)
}

// NewTermViewport creates a viewport for the terminal on fd.
// A density of 0 means 1.
func NewTermViewport(fd int, display config.DisplayConfig) TermViewport {
	density := display.Density
	if density <= 0 {
		density = 1
	}
	return TermViewport{
		fd:      fd,
		cellW:   display.CellWidth,
		cellH:   display.CellHeight,
		density: density,
		getSize: term.GetSize,
	}
}

// Cells returns the playfield size in terminal cells, excluding the help line.
func (v TermViewport) Cells() (cols, rows int, err error) {
	cols, rows, err = v.getSize(v.fd)
	if err != nil {
		return 0, 0, fmt.Errorf("cannot get terminal size: %w", err)
	}
	return cols, rows - helpRows, nil
}

// Size returns the playfield size in world units.
func (v TermViewport) Size() (w, h float64, err error) {
	cols, rows, err := v.Cells()
	if err != nil {
		return 0, 0, err
	}
	return float64(cols) * v.cellW * v.density, float64(rows) * v.cellH * v.density, nil
}

// Density returns the density factor applied to the cell size.
func (v TermViewport) Density() float64 {
	return v.density
}
