package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/veggie-jump/internal/core"
	"github.com/vovakirdan/veggie-jump/internal/frame"
	"github.com/vovakirdan/veggie-jump/internal/sprites"
)

const defaultHoldWindow = 150 * time.Millisecond

// Options configures a terminal session.
type Options struct {
	Game          frame.Simulation
	Player        sprites.Sprite
	Hazard        sprites.Sprite
	Sinks         []frame.EventSink
	Logger        *log.Logger
	TickRate      int
	MaxFrame      time.Duration
	HoldWindow    time.Duration
	RepeatDelay   time.Duration // Hold for a fresh press; 0 uses HoldWindow
	Columns       int           // Initial playfield size in cells
	Rows          int
	ScreenshotDir string // Empty means ~/.veggiejump/screenshots
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	driver        *frame.Driver
	screen        *core.Screen
	input         *HoldTracker
	keys          KeyMap
	help          help.Model
	logger        *log.Logger
	tickRate      int
	lastTick      time.Time
	screenshotDir string
	quitting      bool
}

// NewModel creates the model and draws the first frame.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}

	holdWindow := opts.HoldWindow
	if holdWindow <= 0 {
		holdWindow = defaultHoldWindow
	}

	screen := core.NewScreen(opts.Columns, opts.Rows)
	input := NewHoldTracker(holdWindow, opts.RepeatDelay, nil)
	driver := frame.New(frame.Options{
		Game:     opts.Game,
		Input:    input,
		Renderer: NewRenderer(screen, opts.Player, opts.Hazard),
		Sinks:    opts.Sinks,
		Logger:   logger,
		MaxFrame: opts.MaxFrame,
	})
	driver.Redraw()

	h := help.New()
	h.Width = opts.Columns

	return Model{
		driver:        driver,
		screen:        screen,
		input:         input,
		keys:          DefaultKeyMap(),
		help:          h,
		logger:        logger,
		tickRate:      tickRate,
		screenshotDir: opts.ScreenshotDir,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the actions bound to a key as held.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		path, err := m.saveScreenshot(time.Now())
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	for _, a := range m.keys.Resolve(msg) {
		m.input.Press(a)
	}
	return m, nil
}

// handleResize fits the screen buffer to the terminal. The game keeps its
// world size; the renderer stretches it over the new cell grid.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height-helpRows)
	m.help.Width = msg.Width
	m.driver.Redraw()
	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := sinceLastTick(m.lastTick, now)
	m.lastTick = now

	if !m.driver.Step(elapsed) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot(now time.Time) (string, error) {
	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".veggiejump", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("veggiejump_%s.txt", now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current frame and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
