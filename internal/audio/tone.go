package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// tone is a fixed-length oscillator with a linear fade-out over its last
// release samples.
type tone struct {
	freq     float64
	phase    float64
	wave     Wave
	rate     beep.SampleRate
	total    int
	release  int
	position int
}

// Tone creates a streamer playing freq Hz for d, fading out over release.
func Tone(freq float64, d, release time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	rel := min(rate.N(release), total)
	return &tone{freq: freq, wave: wave, rate: rate, total: total, release: rel}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		}

		if left := t.total - t.position; left < t.release {
			v *= float64(left) / float64(t.release)
		}

		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// withVolume scales a streamer linearly; 0 or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
