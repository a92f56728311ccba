package tui

import (
	"time"

	"github.com/vovakirdan/veggie-jump/internal/core"
)

// HoldTracker turns terminal key presses into held state. Terminals report
// presses and auto-repeats but never releases, so an action counts as held
// for a short window after its last press.
//
// The first auto-repeat arrives after the terminal's repeat delay, which is
// usually longer than the window. A non-zero repeatDelay keeps a fresh press
// held that long; once repeats arrive the shorter window applies again.
type HoldTracker struct {
	window      time.Duration
	repeatDelay time.Duration
	now         func() time.Time
	pressed     map[core.Action]keyPress
}

type keyPress struct {
	at        time.Time
	repeating bool // Pressed again while still held
}

// NewHoldTracker creates a tracker. now defaults to time.Now.
func NewHoldTracker(window, repeatDelay time.Duration, now func() time.Time) *HoldTracker {
	if now == nil {
		now = time.Now
	}
	return &HoldTracker{
		window:      window,
		repeatDelay: repeatDelay,
		now:         now,
		pressed:     make(map[core.Action]keyPress),
	}
}

// Press records a press or auto-repeat of the action.
func (h *HoldTracker) Press(a core.Action) {
	repeating := h.Snapshot().Held(a)
	h.pressed[a] = keyPress{at: h.now(), repeating: repeating}
}

// Release forgets every press.
func (h *HoldTracker) Release() {
	clear(h.pressed)
}

// Snapshot returns the actions still inside their hold.
func (h *HoldTracker) Snapshot() core.InputSnapshot {
	var s core.InputSnapshot
	now := h.now()
	for a, p := range h.pressed {
		if now.Sub(p.at) < h.holdFor(p) {
			s.Set(a, true)
		}
	}
	return s
}

func (h *HoldTracker) holdFor(p keyPress) time.Duration {
	if !p.repeating && h.repeatDelay > h.window {
		return h.repeatDelay
	}
	return h.window
}
