// Package audio plays the game's sound cues through the system speaker.
// Cues are synthesized on demand, so no sound assets are needed.
package audio

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/popshot/config"
	"github.com/phanxgames/popshot/game"
)

// ErrNotInitialized is returned by operations that need the speaker.
var ErrNotInitialized = errors.New("audio: not initialized")

const bufferDuration = 100 * time.Millisecond

// Player mixes cues into a single speaker stream. The zero value is not
// usable; create one with New. Methods are safe for concurrent use and never
// block on the audio device.
type Player struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	played      [4]uint64 // indexed by game.Cue
}

func New(cfg config.AudioConfig) *Player {
	return &Player{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker. A disabled player stays silent and returns nil.
// Failure leaves the player silent; callers usually log and continue.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(bufferDuration)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether cues will be audible.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play starts cue and returns immediately. It reports false when the player
// is silent or the cue has no sound.
func (p *Player) Play(cue game.Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return false
	}
	s := cueStreamer(cue, p.rate)
	if s == nil {
		return false
	}
	speaker.Lock()
	p.mixer.Add(withVolume(s, p.cfg.MasterVolume))
	speaker.Unlock()
	p.played[cue]++
	return true
}

// Emit plays the cue attached to a game event, making Player a game.EventSink.
func (p *Player) Emit(e game.Event) {
	if e.Cue != game.CueNone {
		p.Play(e.Cue)
	}
}

// Played returns how many times cue was started.
func (p *Player) Played(cue game.Cue) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if int(cue) >= len(p.played) {
		return 0
	}
	return p.played[cue]
}

// SetVolume updates the master volume for cues started afterwards.
func (p *Player) SetVolume(vol float64) {
	p.mu.Lock()
	p.cfg.MasterVolume = min(max(vol, 0), 1)
	p.mu.Unlock()
}

// Close stops all cues and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// withVolume scales s by a linear master volume in [0, 1].
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	v := &effects.Volume{Streamer: s, Base: 2}
	if vol <= 0 {
		v.Silent = true
		return v
	}
	v.Volume = math.Log2(vol)
	return v
}
