package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/veggie-jump/internal/core"
)

// bindings maps every action to the keys that hold it.
var bindings = map[core.Action][]ebiten.Key{
	core.ActionJump:    {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionStart:   {ebiten.KeySpace},
	core.ActionRestart: {ebiten.KeyEnter},
	core.ActionQuit:    {ebiten.KeyEscape, ebiten.KeyQ},
}

// Keyboard polls held keys. Unlike a terminal, the window reports releases,
// so no hold window is needed.
type Keyboard struct {
	pressed func(ebiten.Key) bool
}

// NewKeyboard creates a keyboard reading ebiten's key state.
func NewKeyboard() *Keyboard {
	return &Keyboard{pressed: ebiten.IsKeyPressed}
}

// Snapshot implements frame.InputSource.
func (k *Keyboard) Snapshot() core.InputSnapshot {
	var s core.InputSnapshot
	for _, a := range core.Actions() {
		for _, key := range bindings[a] {
			if k.pressed(key) {
				s.Set(a, true)
				break
			}
		}
	}
	return s
}
