package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/veggie-jump/internal/core"
	"github.com/vovakirdan/veggie-jump/internal/games/veggie"
	"github.com/vovakirdan/veggie-jump/internal/physics"
	"github.com/vovakirdan/veggie-jump/internal/sprites"
)

// Overlay texts.
const (
	titleText    = "VEGGIE JUMP"
	startText    = "Press Space to start"
	gameOverText = "GAME OVER"
	restartText  = "Press Enter to restart!"
)

// hazardFrameAngle is the rotation covered by one hazard art frame.
const hazardFrameAngle = math.Pi / 4

// ansiColors maps core.Color to terminal palette entries.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorBlack:       "0",
	core.ColorRed:         "1",
	core.ColorGreen:       "2",
	core.ColorYellow:      "3",
	core.ColorBlue:        "4",
	core.ColorWhite:       "7",
	core.ColorBrightRed:   "9",
	core.ColorBrightGreen: "10",
	core.ColorBrightWhite: "15",
	core.ColorForestGreen: "22",
	core.ColorGrass:       "70",
	core.ColorSky:         "117",
	core.ColorOrange:      "208",
	core.ColorGray:        "245",
}

type cellStyle struct {
	fg, bg core.Color
}

var styleCache = map[cellStyle]lipgloss.Style{}

func styleFor(fg, bg core.Color) lipgloss.Style {
	k := cellStyle{fg, bg}
	if s, ok := styleCache[k]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if c, ok := ansiColors[fg]; ok {
		s = s.Foreground(c)
	}
	if c, ok := ansiColors[bg]; ok {
		s = s.Background(c)
	}
	styleCache[k] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start.FG, start.BG).Render(run.String()))
		}
	}
	return sb.String()
}

// Renderer draws game snapshots into a character screen. World coordinates
// are stretched to fill the screen, so a resized terminal keeps the whole
// playfield visible.
type Renderer struct {
	screen      *core.Screen
	player      sprites.Sprite
	hazard      sprites.Sprite
	playerColor core.Color
	hazardColor core.Color
}

// NewRenderer creates a renderer drawing into screen.
func NewRenderer(screen *core.Screen, player, hazard sprites.Sprite) *Renderer {
	return &Renderer{
		screen:      screen,
		player:      player,
		hazard:      hazard,
		playerColor: core.ParseColor(player.Color),
		hazardColor: core.ParseColor(hazard.Color),
	}
}

// Render implements frame.Renderer.
func (r *Renderer) Render(s veggie.Snapshot) {
	scr := r.screen
	scr.Clear()
	if scr.Width() == 0 || scr.Height() == 0 || s.ScreenW <= 0 || s.ScreenH <= 0 {
		return
	}

	m := cellMapper{sx: float64(scr.Width()) / s.ScreenW, sy: float64(scr.Height()) / s.ScreenH}

	// Sky and ground
	floorRow := core.Clamp(m.row(s.Floor), 0, scr.Height())
	scr.FillBackground(core.NewRect(0, 0, scr.Width(), floorRow), core.ColorSky)
	scr.FillBackground(core.NewRect(0, floorRow, scr.Width(), scr.Height()-floorRow), core.ColorGrass)
	scr.DrawHLine(0, floorRow, scr.Width(), '▔', core.ColorForestGreen)

	playerFrame := 0
	if !s.Grounded {
		playerFrame = 1
	}
	r.drawBody(m, s.Player, r.player.Frame(playerFrame), r.playerColor)
	r.drawBody(m, s.Hazard, r.hazard.Frame(hazardFrame(s.Hazard.Angle)), r.hazardColor)

	score := strconv.Itoa(s.Score)
	scoreColor := core.ColorBlack
	if s.State == veggie.StateGameOver {
		scoreColor = core.ColorRed
	}
	scr.DrawText(scr.Width()-len(score)-2, 1, score, scoreColor)

	switch s.State {
	case veggie.StateNotStarted:
		// Dark splash over the whole playfield
		scr.FillBackground(core.NewRect(0, 0, scr.Width(), scr.Height()), core.ColorBlack)
		r.drawBanner(titleText, core.ColorBrightGreen, startText)
	case veggie.StateGameOver:
		r.drawBanner(gameOverText, core.ColorBrightRed, restartText)
	}
}

// drawBody draws art centered on the body, or a block of its size when the
// sprite has no art. Spaces in art are transparent.
func (r *Renderer) drawBody(m cellMapper, b physics.Body, art []string, fg core.Color) {
	cx, cy := m.col(b.X), m.row(b.Y)

	if len(art) == 0 {
		hw, hh := b.HalfExtents()
		w := core.Max(int(math.Round(2*hw*m.sx)), 1)
		h := core.Max(int(math.Round(2*hh*m.sy)), 1)
		r.screen.DrawRect(core.CenteredRect(cx, cy, w, h), '█', fg)
		return
	}

	top := cy - len(art)/2
	for dy, line := range art {
		runes := []rune(line)
		left := cx - len(runes)/2
		for dx, ch := range runes {
			if ch != ' ' {
				r.screen.SetColored(left+dx, top+dy, ch, fg)
			}
		}
	}
}

// drawBanner draws a boxed two-line message in the middle of the screen.
func (r *Renderer) drawBanner(title string, titleColor core.Color, prompt string) {
	scr := r.screen
	w := core.Max(len([]rune(title)), len([]rune(prompt))) + 6
	box := core.CenteredRect(scr.Width()/2, scr.Height()/2, w, 6)

	scr.DrawRect(box, ' ', core.ColorDefault)
	scr.FillBackground(box, core.ColorBlack)
	scr.DrawBox(box, core.ColorGray)
	scr.DrawTextCentered(box.Y+2, title, titleColor)
	scr.DrawTextCentered(box.Y+3, prompt, core.ColorWhite)
}

// hazardFrame picks the art frame for a rotation angle.
func hazardFrame(angle float64) int {
	if !core.IsFinite(angle) {
		return 0
	}
	return int(math.Floor(angle / hazardFrameAngle))
}

// cellMapper converts world coordinates to screen cells.
type cellMapper struct {
	sx, sy float64
}

func (m cellMapper) col(x float64) int {
	return int(math.Floor(x * m.sx))
}

func (m cellMapper) row(y float64) int {
	return int(math.Floor(y * m.sy))
}
