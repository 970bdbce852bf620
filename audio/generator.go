package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/phanxgames/popshot/game"
)

// Waveform shapes for sweepGenerator.
const (
	waveSine = iota
	waveSquare
)

const (
	popThumpDuration  = 30 * time.Millisecond
	popNoiseDuration  = 150 * time.Millisecond
	shotLightDuration = 120 * time.Millisecond
	shotFullDuration  = 200 * time.Millisecond
)

// sweepGenerator is a finite tone gliding linearly from one frequency to
// another with a linear fade-out.
type sweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	wave     int
	samples  int
	pos      int
	phase    float64
}

func newSweep(sr beep.SampleRate, from, to float64, d time.Duration, wave int) *sweepGenerator {
	return &sweepGenerator{sr: sr, from: from, to: to, wave: wave, samples: sr.N(d)}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress

		var v float64
		switch g.wave {
		case waveSquare:
			if g.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		default:
			v = math.Sin(2 * math.Pi * g.phase)
		}
		v *= 0.3 * (1 - progress)

		samples[i][0] = v
		samples[i][1] = v

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error { return nil }

// noiseBurst is exponentially decaying white noise.
type noiseBurst struct {
	sr      beep.SampleRate
	samples int
	pos     int
	seed    uint32
}

func newNoiseBurst(sr beep.SampleRate, d time.Duration) *noiseBurst {
	return &noiseBurst{sr: sr, samples: sr.N(d), seed: 0x2545f491}
}

func (g *noiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		// xorshift32
		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		v := 0.25 * noise * math.Exp(-t*30)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *noiseBurst) Err() error { return nil }

// cueStreamer builds a fresh finite streamer for cue, or nil for CueNone.
func cueStreamer(cue game.Cue, sr beep.SampleRate) beep.Streamer {
	switch cue {
	case game.CuePop:
		// Low thump followed by a short burst of noise.
		noise := newNoiseBurst(sr, popNoiseDuration)
		thump, err := generators.SineTone(sr, 110)
		if err != nil {
			return noise
		}
		return beep.Seq(
			&effects.Gain{Streamer: beep.Take(sr.N(popThumpDuration), thump), Gain: -0.7},
			noise,
		)
	case game.CueShotLight:
		return newSweep(sr, 1400, 500, shotLightDuration, waveSine)
	case game.CueShotFull:
		return newSweep(sr, 900, 180, shotFullDuration, waveSquare)
	default:
		return nil
	}
}
