package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/veggie-jump/internal/games/veggie"
)

// drain streams s to the end and returns every sample.
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(Tone(440, 100*time.Millisecond, 20*time.Millisecond, WaveSine, rate))

	if want := rate.N(100 * time.Millisecond); len(samples) != want {
		t.Errorf("got %d samples, want %d", len(samples), want)
	}
}

func TestToneRange(t *testing.T) {
	for _, wave := range []Wave{WaveSine, WaveSquare} {
		samples := drain(Tone(440, 50*time.Millisecond, 10*time.Millisecond, wave, SampleRate))
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d sample %d = %v, want equal channels in [-1, 1]", wave, i, s)
			}
		}
	}
}

func TestToneFadesOut(t *testing.T) {
	samples := drain(Tone(100, 100*time.Millisecond, 50*time.Millisecond, WaveSquare, SampleRate))

	first := math.Abs(samples[0][0])
	last := math.Abs(samples[len(samples)-1][0])
	if first != 1 {
		t.Errorf("first sample = %v, want full volume", first)
	}
	if last >= 0.01 {
		t.Errorf("last sample = %v, want close to silence", last)
	}
}

func TestEffectPerEvent(t *testing.T) {
	tests := []struct {
		name  string
		event veggie.Event
		sound bool
	}{
		{"started", veggie.StartedEvent{Multiplier: 0.7}, true},
		{"jumped", veggie.JumpedEvent{}, true},
		{"dodged", veggie.DodgedEvent{Score: 1}, true},
		{"difficulty", veggie.DifficultyEvent{Score: 5, Multiplier: 0.9}, true},
		{"game over", veggie.GameOverEvent{Score: 3}, true},
		{"none", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Effect(tt.event, 0.5)
			if (s != nil) != tt.sound {
				t.Fatalf("Effect() = %v, want sound %v", s, tt.sound)
			}
			if s != nil && len(drain(s)) == 0 {
				t.Error("effect produced no samples")
			}
		})
	}
}

func TestEffectSilentVolume(t *testing.T) {
	for _, s := range drain(Effect(veggie.JumpedEvent{}, 0)) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("volume 0 should be silent, got %v", s)
		}
	}
}

func TestPlayerHandle(t *testing.T) {
	var played []beep.Streamer
	p := &Player{volume: 1, play: func(s beep.Streamer) { played = append(played, s) }}

	p.Handle(veggie.JumpedEvent{})
	p.Handle(veggie.GameOverEvent{Score: 2})

	if len(played) != 2 {
		t.Errorf("played %d sounds, want 2", len(played))
	}
}
