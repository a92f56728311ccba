// Package window runs Veggie Jump in a desktop window with ebiten. The window
// is sized in logical pixels; the game world is that size times the monitor's
// device scale factor, so the screen image is drawn at native resolution.
package window

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/veggie-jump/internal/frame"
	"github.com/vovakirdan/veggie-jump/internal/sprites"
)

// Title is the window title.
const Title = "Veggie Jump"

// Options configures a window session.
type Options struct {
	Game       frame.Simulation
	Player     sprites.Sprite
	Hazard     sprites.Sprite
	Sinks      []frame.EventSink
	Logger     *log.Logger
	TickRate   int
	MaxFrame   time.Duration
	Width      int // Logical window size
	Height     int
	Fullscreen bool
}

// Game implements ebiten.Game on top of the frame driver.
type Game struct {
	driver   *frame.Driver
	renderer *Renderer
	step     time.Duration
	screenW  int
	screenH  int
}

// NewGame creates the ebiten game. Screen size is taken from the game's
// first snapshot, already in world units.
func NewGame(opts Options) *Game {
	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = ebiten.DefaultTPS
	}

	renderer := NewRenderer(opts.Player, opts.Hazard)
	driver := frame.New(frame.Options{
		Game:     opts.Game,
		Input:    NewKeyboard(),
		Renderer: renderer,
		Sinks:    opts.Sinks,
		Logger:   opts.Logger,
		MaxFrame: opts.MaxFrame,
	})
	driver.Redraw()

	snap := driver.Last()
	return &Game{
		driver:   driver,
		renderer: renderer,
		step:     time.Second / time.Duration(tickRate),
		screenW:  int(snap.ScreenW),
		screenH:  int(snap.ScreenH),
	}
}

// Update advances the game by one fixed tick.
func (g *Game) Update() error {
	if !g.driver.Step(g.step) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the latest frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
}

// Layout keeps the screen image at world size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Run opens the window and blocks until the player quits or closes it.
func Run(opts Options) error {
	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = ebiten.DefaultTPS
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(opts.Fullscreen)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	ebiten.SetTPS(tickRate)

	return ebiten.RunGame(NewGame(opts))
}
