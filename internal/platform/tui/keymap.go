package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/veggie-jump/internal/core"
)

// KeyMap holds the terminal key bindings. It implements help.KeyMap.
type KeyMap struct {
	Jump       key.Binding
	Left       key.Binding
	Right      key.Binding
	Start      key.Binding
	Restart    key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "space", "up", "w"),
			key.WithHelp("space/↑", "jump"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Start: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c", "q"),
			key.WithHelp("q/esc", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Resolve returns every game action bound to the key. Space is both jump and
// start, so one key can yield several actions.
func (k KeyMap) Resolve(msg tea.KeyMsg) []core.Action {
	var actions []core.Action
	for _, b := range []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Jump, core.ActionJump},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Start, core.ActionStart},
		{k.Restart, core.ActionRestart},
		{k.Quit, core.ActionQuit},
	} {
		if key.Matches(msg, b.binding) {
			actions = append(actions, b.action)
		}
	}
	return actions
}

// ShortHelp returns the bindings shown in the one-line help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Left, k.Right, k.Restart, k.Quit}
}

// FullHelp returns all bindings grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Left, k.Right},
		{k.Start, k.Restart},
		{k.Screenshot, k.Quit},
	}
}
