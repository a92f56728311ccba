package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/veggie-jump/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Veggie Jump in the terminal.

Controls:
  Space       - Start / jump
  Up/W        - Jump
  Left/A      - Run left
  Right/D     - Run right
  Enter       - Restart (after game over)
  Ctrl+S      - Save a text screenshot
  Q/Esc       - Quit

Terminals report key presses but not releases, so a key counts as held
for input.hold_window after its last press or auto-repeat. Between the
first press and the first auto-repeat a held Left/Right pauses briefly;
set input.repeat_delay to your keyboard's repeat delay to bridge it (a
quick tap then also runs that long). Jump is edge-triggered and needs
the ground, so auto-repeat of a held Space does not jump again in mid-air.

Difficulty options:
  easy   - Slower start, gentler progression
  normal - Default
  hard   - Faster start, steeper progression
  fixed  - No progression

Examples:
  veggiejump play
  veggiejump play --difficulty hard
  veggiejump play --seed 42 --log-file veggiejump.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	// The terminal belongs to the game; logs only go to --log-file
	sess, err := newSession(io.Discard)
	if err != nil {
		fatal("starting game", err)
	}

	vp := tui.NewTermViewport(int(os.Stdout.Fd()), sess.cfg.Display)
	cols, rows, err := vp.Cells()
	if err != nil {
		sess.Close()
		fatal("reading terminal size", err)
	}

	game, err := sess.newGame(vp, vp.Density())
	if err != nil {
		sess.Close()
		fatal("creating game", err)
	}

	runErr := tui.Run(tui.Options{
		Game:        game,
		Player:      sess.player,
		Hazard:      sess.hazard,
		Sinks:       sess.sinks,
		Logger:      sess.logger,
		TickRate:    sess.cfg.Loop.TickRate,
		MaxFrame:    sess.cfg.Loop.MaxFrame,
		HoldWindow:  sess.cfg.Input.HoldWindow,
		RepeatDelay: sess.cfg.Input.RepeatDelay,
		Columns:     cols,
		Rows:        rows,
	})

	// Close before a potential exit
	sess.Close()

	if runErr != nil {
		fatal("running game", runErr)
	}
}
