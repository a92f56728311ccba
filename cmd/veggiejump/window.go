package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/veggie-jump/internal/platform/window"
)

var (
	flagFullscreen bool
	flagWidth      int
	flagHeight     int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Play Veggie Jump in a desktop window.

The playfield is the window size times the monitor's scale factor, so
speeds and sprites keep their proportions on high-DPI displays.

Controls:
  Space       - Start / jump
  Up/W        - Jump
  Left/A      - Run left
  Right/D     - Run right
  Enter       - Restart (after game over)
  Q/Esc       - Quit

Examples:
  veggiejump window
  veggiejump window --fullscreen --sound
  veggiejump window --width 1280 --height 720`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen")
	windowCmd.Flags().IntVar(&flagWidth, "width", 800, "Window width in logical pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", 480, "Window height in logical pixels")
}

func runWindow(_ *cobra.Command, _ []string) {
	sess, err := newSession(os.Stderr)
	if err != nil {
		fatal("starting game", err)
	}

	vp := window.NewViewport(flagWidth, flagHeight)
	game, err := sess.newGame(vp, vp.Density())
	if err != nil {
		sess.Close()
		fatal("creating game", err)
	}

	runErr := window.Run(window.Options{
		Game:       game,
		Player:     sess.player,
		Hazard:     sess.hazard,
		Sinks:      sess.sinks,
		Logger:     sess.logger,
		TickRate:   sess.cfg.Loop.TickRate,
		MaxFrame:   sess.cfg.Loop.MaxFrame,
		Width:      flagWidth,
		Height:     flagHeight,
		Fullscreen: flagFullscreen,
	})

	// Close before a potential exit
	sess.Close()

	if runErr != nil {
		fatal("running game", runErr)
	}
}
