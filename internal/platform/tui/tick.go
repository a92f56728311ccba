// Package tui runs Veggie Jump in a terminal with Bubble Tea. It provides the
// frame clock, the key-hold input source, the character renderer and the
// terminal viewport.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sinceLastTick returns the wall time between two ticks. The first tick of a
// session has no predecessor and covers no time.
func sinceLastTick(prev, now time.Time) time.Duration {
	if prev.IsZero() || now.Before(prev) {
		return 0
	}
	return now.Sub(prev)
}
