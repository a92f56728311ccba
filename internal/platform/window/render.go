package window

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/veggie-jump/internal/games/veggie"
	"github.com/vovakirdan/veggie-jump/internal/physics"
	"github.com/vovakirdan/veggie-jump/internal/sprites"
)

// Debug font cell size used by ebitenutil.DebugPrintAt.
const (
	glyphW = 6
	glyphH = 16
)

var (
	colSky    = color.RGBA{0x87, 0xce, 0xeb, 0xff}
	colGround = color.RGBA{0x6a, 0xa8, 0x4f, 0xff}
	colSplash = color.RGBA{0x1b, 0x1b, 0x1b, 0xff}
	colBanner = color.RGBA{0x00, 0x00, 0x00, 0xc0}
	colEye    = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// ParseHexColor parses a #rrggbb color.
func ParseHexColor(s string) (color.RGBA, error) {
	// colorful.Hex also takes #rgb and short reads like #4caf5
	if len(s) != 7 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Renderer keeps the latest snapshot and draws it when ebiten asks.
type Renderer struct {
	snap        veggie.Snapshot
	playerColor color.RGBA
	hazardColor color.RGBA
	playerImg   *ebiten.Image
	hazardImg   *ebiten.Image
}

// NewRenderer creates a renderer. Sprites without a valid rgb fall back to gray.
func NewRenderer(player, hazard sprites.Sprite) *Renderer {
	return &Renderer{
		playerColor: spriteColor(player),
		hazardColor: spriteColor(hazard),
	}
}

func spriteColor(s sprites.Sprite) color.RGBA {
	c, err := ParseHexColor(s.RGB)
	if err != nil {
		return color.RGBA{0x80, 0x80, 0x80, 0xff}
	}
	return c
}

// Render implements frame.Renderer.
func (r *Renderer) Render(s veggie.Snapshot) {
	r.snap = s
}

// Draw paints the latest snapshot onto the screen image.
func (r *Renderer) Draw(screen *ebiten.Image) {
	s := r.snap
	w, h := float32(s.ScreenW), float32(s.ScreenH)

	screen.Fill(colSky)
	vector.DrawFilledRect(screen, 0, float32(s.Floor), w, h-float32(s.Floor), colGround, false)

	if r.playerImg == nil {
		r.playerImg = playerImage(s.Player, r.playerColor)
		r.hazardImg = hazardImage(s.Hazard, r.hazardColor)
	}
	drawBody(screen, r.playerImg, s.Player)
	drawBody(screen, r.hazardImg, s.Hazard)

	score := strconv.Itoa(s.Score)
	scoreX := int(s.ScreenW) - glyphW*len(score) - 20
	if s.State == veggie.StateGameOver {
		// DebugPrint has no color; back the score with red
		vector.DrawFilledRect(screen, float32(scoreX-4), 16, float32(glyphW*len(score)+8), glyphH+8, color.RGBA{0xd0, 0x20, 0x20, 0xff}, false)
	}
	ebitenutil.DebugPrintAt(screen, score, scoreX, 20)

	switch s.State {
	case veggie.StateNotStarted:
		vector.DrawFilledRect(screen, 0, 0, w, h, colSplash, false)
		drawBanner(screen, s, "VEGGIE JUMP", "Press Space to start")
	case veggie.StateGameOver:
		drawBanner(screen, s, "GAME OVER", "Press Enter to restart!")
	}
}

// drawBody draws img centered on the body and rotated by its angle.
func drawBody(screen, img *ebiten.Image, b physics.Body) {
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(iw)/2, -float64(ih)/2)
	op.GeoM.Rotate(b.Angle)
	op.GeoM.Translate(b.X, b.Y)
	screen.DrawImage(img, op)
}

func drawBanner(screen *ebiten.Image, s veggie.Snapshot, title, prompt string) {
	cx, cy := int(s.ScreenW)/2, int(s.ScreenH)/2
	bw := glyphW*max(len(title), len(prompt)) + 40
	vector.DrawFilledRect(screen, float32(cx-bw/2), float32(cy-glyphH*2), float32(bw), glyphH*4, colBanner, false)
	ebitenutil.DebugPrintAt(screen, title, cx-glyphW*len(title)/2, cy-glyphH-4)
	ebitenutil.DebugPrintAt(screen, prompt, cx-glyphW*len(prompt)/2, cy+4)
}

// playerImage draws the player as a body block with an eye.
func playerImage(b physics.Body, c color.RGBA) *ebiten.Image {
	hw, hh := b.HalfExtents()
	w, h := max(int(2*hw), 1), max(int(2*hh), 1)
	img := ebiten.NewImage(w, h)
	vector.DrawFilledRect(img, 0, float32(h)/4, float32(w), float32(h)*3/4, c, true)
	vector.DrawFilledRect(img, float32(w)/4, 0, float32(w)/2, float32(h)/4, c, true)
	vector.DrawFilledCircle(img, float32(w)*0.6, float32(h)/8, float32(w)/16+1, colEye, true)
	return img
}

// hazardImage draws the hazard as a floret with a stem so its spin is visible.
func hazardImage(b physics.Body, c color.RGBA) *ebiten.Image {
	hw, hh := b.HalfExtents()
	w, h := max(int(2*hw), 1), max(int(2*hh), 1)
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)
	vector.StrokeLine(img, fw/2, fh/2, fw/2, fh, fw/6+1, color.RGBA{0x9c, 0xcc, 0x65, 0xff}, true)
	vector.DrawFilledCircle(img, fw/2, fh/3, fw/3, c, true)
	vector.DrawFilledCircle(img, fw/4, fh/2.5, fw/5, c, true)
	vector.DrawFilledCircle(img, fw*3/4, fh/2.5, fw/5, c, true)
	return img
}
