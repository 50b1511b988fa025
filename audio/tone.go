package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Tone describes a short enveloped note
type Tone struct {
	Freq     float64
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Wave     WaveType
	Volume   float64 // linear gain, 0 is silent
}

// Predefined tones used by canvas applications
var (
	// Bounce is a short low blip for collisions
	Bounce = Tone{Freq: 220, Duration: 60 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 40 * time.Millisecond, Wave: WaveSine, Volume: 0.4}

	// Click is a very short tick for input feedback
	Click = Tone{Freq: 1760, Duration: 15 * time.Millisecond, Release: 10 * time.Millisecond, Wave: WaveSquare, Volume: 0.15}

	// Chime is a bright two-step bell
	Chime = Tone{Freq: 880, Duration: 200 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 150 * time.Millisecond, Wave: WaveSine, Volume: 0.3}
)

// Stream builds a finite streamer for the tone at the given rate
func (t Tone) Stream(rate beep.SampleRate) beep.Streamer {
	total := rate.N(t.Duration)
	src := t.source(rate)
	shaped := newEnvelope(beep.Take(total, src), total, rate.N(t.Attack), rate.N(t.Release))
	return newVolume(shaped, t.Volume)
}

// source returns an unbounded oscillator; sine uses the beep generator
func (t Tone) source(rate beep.SampleRate) beep.Streamer {
	if t.Wave == WaveSine {
		if s, err := generators.SineTone(rate, t.Freq); err == nil {
			return s
		}
		// Frequency at or above Nyquist, fall through to the local oscillator
	}
	return &oscillator{freq: t.Freq, wave: t.Wave, rate: rate}
}

// oscillator generates raw audio waves
type oscillator struct {
	freq  float64
	phase float64
	wave  WaveType
	rate  beep.SampleRate
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream of known length
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, total, attack, release int) beep.Streamer {
	if attack+release > total {
		attack = total * attack / max(attack+release, 1)
		release = total - attack
	}
	return &envelope{
		streamer:       s,
		attackSamples:  attack,
		releaseSamples: release,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero gain is mapped to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
