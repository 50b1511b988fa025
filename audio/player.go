// Package audio plays short synthesized tones through the system speaker
// All operations are no-ops until Init succeeds, so applications run unchanged without audio
package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	DefaultSampleRate = beep.SampleRate(48000)

	// maxVoices bounds concurrently mixed tones; extra Play calls are dropped
	maxVoices = 16
)

// Player mixes tones into a single speaker stream
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool

	muted  atomic.Bool
	played atomic.Int64
}

// NewPlayer creates a player; the speaker is opened by Init
func NewPlayer(rate beep.SampleRate) *Player {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &Player{
		rate:  rate,
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker with a 100ms buffer
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops all tones and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Play starts a tone without blocking
// Returns false when the player is closed, muted, or at voice capacity
func (p *Player) Play(t Tone) bool {
	if p.muted.Load() {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return false
	}

	s := t.Stream(p.rate)
	speaker.Lock()
	full := p.mixer.Len() >= maxVoices
	if !full {
		p.mixer.Add(s)
	}
	speaker.Unlock()

	if full {
		return false
	}
	p.played.Add(1)
	return true
}

// SetMuted toggles output; muting does not cut tones already playing
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// ToggleMute flips the muted state and returns the new value
func (p *Player) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (p *Player) Muted() bool {
	return p.muted.Load()
}

// Enabled reports whether the speaker is open
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Played returns the number of tones started
func (p *Player) Played() int64 {
	return p.played.Load()
}

func (p *Player) SampleRate() beep.SampleRate {
	return p.rate
}
