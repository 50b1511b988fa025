package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain reads the whole stream, returning all samples
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(48000)
	tests := []struct {
		name string
		tone Tone
	}{
		{"bounce", Bounce},
		{"click", Click},
		{"chime", Chime},
		{"saw", Tone{Freq: 100, Duration: 30 * time.Millisecond, Wave: WaveSaw, Volume: 0.5}},
		{"noise", Tone{Duration: 10 * time.Millisecond, Wave: WaveNoise, Volume: 0.5}},
	}

	for _, tt := range tests {
		got := len(drain(tt.tone.Stream(rate)))
		want := rate.N(tt.tone.Duration)
		if got != want {
			t.Errorf("%s: expected %d samples, got %d", tt.name, want, got)
		}
	}
}

func TestToneEnvelope(t *testing.T) {
	rate := beep.SampleRate(48000)
	samples := drain(Bounce.Stream(rate))

	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample during attack, got %f", samples[0][0])
	}

	last := samples[len(samples)-1][0]
	if math.Abs(last) > 0.01 {
		t.Errorf("Expected release to approach silence, got %f", last)
	}

	for i, s := range samples {
		if math.Abs(s[0]) > Bounce.Volume+1e-9 {
			t.Fatalf("Sample %d exceeds volume: %f", i, s[0])
		}
		if s[0] != s[1] {
			t.Fatalf("Expected mono samples, got %v at %d", s, i)
		}
	}
}

func TestToneVolume(t *testing.T) {
	rate := beep.SampleRate(48000)
	tone := Tone{Freq: 1000, Duration: 5 * time.Millisecond, Wave: WaveSquare, Volume: 0.25}
	samples := drain(tone.Stream(rate))
	if math.Abs(samples[0][0]-0.25) > 1e-9 {
		t.Errorf("Expected first square sample 0.25, got %f", samples[0][0])
	}

	tone.Volume = 0
	for i, s := range drain(tone.Stream(rate)) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("Expected silence at %d, got %v", i, s)
		}
	}
}

func TestToneAboveNyquist(t *testing.T) {
	rate := beep.SampleRate(8000)
	tone := Tone{Freq: 6000, Duration: 10 * time.Millisecond, Wave: WaveSine, Volume: 1}
	if got, want := len(drain(tone.Stream(rate))), rate.N(tone.Duration); got != want {
		t.Errorf("Expected %d samples from fallback oscillator, got %d", want, got)
	}
}

func TestEnvelopeOverlongPhases(t *testing.T) {
	// Attack and release longer than the note are scaled to fit
	e := newEnvelope(beep.Silence(100), 100, 80, 80).(*envelope)
	if e.attackSamples+e.releaseSamples != 100 {
		t.Errorf("Expected phases to sum to 100, got %d+%d", e.attackSamples, e.releaseSamples)
	}
}

func TestPlayerWithoutInit(t *testing.T) {
	p := NewPlayer(0)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Player operations panicked without initialization: %v", r)
		}
	}()

	if p.SampleRate() != DefaultSampleRate {
		t.Errorf("Expected default rate %d, got %d", DefaultSampleRate, p.SampleRate())
	}
	if p.Enabled() {
		t.Error("Expected player disabled before Init")
	}
	if p.Play(Bounce) {
		t.Error("Expected Play to report false before Init")
	}
	if p.Played() != 0 {
		t.Errorf("Expected 0 played, got %d", p.Played())
	}
	p.Close()
}

func TestPlayerMute(t *testing.T) {
	p := NewPlayer(DefaultSampleRate)
	if p.Muted() {
		t.Error("Expected player unmuted by default")
	}
	if !p.ToggleMute() || !p.Muted() {
		t.Error("Expected toggle to mute")
	}
	if p.Play(Click) {
		t.Error("Expected muted Play to report false")
	}
	p.SetMuted(false)
	if p.Muted() {
		t.Error("Expected SetMuted(false) to unmute")
	}
}
