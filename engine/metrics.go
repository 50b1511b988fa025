package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/halfblock/status"
)

// Metric keys published by the loop
const (
	MetricFrames   = "engine.frames"
	MetricFPS      = "engine.fps"
	MetricFrameMs  = "engine.frame_ms"
	MetricWorkMs   = "engine.work_ms"
	MetricPairs    = "engine.pairs"
	MetricTextRuns = "engine.text_runs"
)

// fpsSmoothing is the moving-average weight of the newest frame in MetricFPS
const fpsSmoothing = 0.1

// metrics caches registry pointers so the loop writes atomics directly
type metrics struct {
	frames   *atomic.Int64
	pairs    *atomic.Int64
	textRuns *atomic.Int64
	fps      *status.AtomicFloat
	frameMs  *status.AtomicFloat
	workMs   *status.AtomicFloat
}

func newMetrics(r *status.Registry) metrics {
	return metrics{
		frames:   r.Ints.Get(MetricFrames),
		pairs:    r.Ints.Get(MetricPairs),
		textRuns: r.Ints.Get(MetricTextRuns),
		fps:      r.Floats.Get(MetricFPS),
		frameMs:  r.Floats.Get(MetricFrameMs),
		workMs:   r.Floats.Get(MetricWorkMs),
	}
}

func (m metrics) record(frame, work time.Duration, texts, pairs int) {
	m.frames.Add(1)
	m.pairs.Store(int64(pairs))
	m.textRuns.Store(int64(texts))
	m.frameMs.Store(float64(frame) / float64(time.Millisecond))
	m.workMs.Store(float64(work) / float64(time.Millisecond))
	if frame > 0 {
		m.fps.Smooth(1/frame.Seconds(), fpsSmoothing)
	}
}
