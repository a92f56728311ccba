// Package audio plays short synthesized sound effects for game events.
package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/veggie-jump/internal/games/veggie"
)

// SampleRate is the output rate of every effect.
const SampleRate = beep.SampleRate(44100)

// Effect returns the sound for a game event, or nil for silent events.
func Effect(e veggie.Event, volume float64) beep.Streamer {
	var s beep.Streamer
	switch e.(type) {
	case veggie.StartedEvent:
		s = beep.Seq(
			Tone(523.25, 80*time.Millisecond, 20*time.Millisecond, WaveSquare, SampleRate),
			Tone(783.99, 120*time.Millisecond, 60*time.Millisecond, WaveSquare, SampleRate),
		)
	case veggie.JumpedEvent:
		s = Tone(660, 90*time.Millisecond, 60*time.Millisecond, WaveSine, SampleRate)
	case veggie.DodgedEvent:
		s = Tone(987.77, 70*time.Millisecond, 40*time.Millisecond, WaveSquare, SampleRate)
	case veggie.DifficultyEvent:
		s = beep.Mix(
			Tone(880, 150*time.Millisecond, 100*time.Millisecond, WaveSine, SampleRate),
			Tone(1320, 150*time.Millisecond, 120*time.Millisecond, WaveSine, SampleRate),
		)
	case veggie.GameOverEvent:
		s = beep.Seq(
			Tone(392, 150*time.Millisecond, 30*time.Millisecond, WaveSquare, SampleRate),
			Tone(261.63, 300*time.Millisecond, 200*time.Millisecond, WaveSquare, SampleRate),
		)
	default:
		return nil
	}
	return withVolume(s, volume)
}
