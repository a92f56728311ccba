package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/veggie-jump/internal/games/veggie"
)

// Player turns game events into sound. It implements frame.EventSink.
type Player struct {
	volume float64
	play   func(beep.Streamer)
}

// Open initializes the speaker and starts an empty mixer that effects are
// added to.
func Open(volume float64) (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("cannot open audio device: %w", err)
	}

	mixer := &beep.Mixer{}
	speaker.Play(mixer)

	return &Player{
		volume: volume,
		play: func(s beep.Streamer) {
			speaker.Lock()
			mixer.Add(s)
			speaker.Unlock()
		},
	}, nil
}

// Handle plays the effect for e, if it has one.
func (p *Player) Handle(e veggie.Event) {
	if s := Effect(e, p.volume); s != nil {
		p.play(s)
	}
}

// Close stops playback.
func (p *Player) Close() {
	speaker.Clear()
}
