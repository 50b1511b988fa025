package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat mirrors the sync/atomic API for float64 values; the zero value holds 0
type AtomicFloat struct {
	v atomic.Uint64
}

func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.v.Load())
}

func (f *AtomicFloat) Store(val float64) {
	f.v.Store(math.Float64bits(val))
}

// Swap stores val and returns the previous value
func (f *AtomicFloat) Swap(val float64) float64 {
	return math.Float64frombits(f.v.Swap(math.Float64bits(val)))
}

// Add returns the sum after adding delta
func (f *AtomicFloat) Add(delta float64) float64 {
	return f.update(func(cur float64) float64 { return cur + delta })
}

// Smooth folds sample into an exponential moving average with weight alpha in (0,1]
// The first sample on a zero value is taken as is
func (f *AtomicFloat) Smooth(sample, alpha float64) float64 {
	return f.update(func(cur float64) float64 {
		if cur == 0 {
			return sample
		}
		return cur + alpha*(sample-cur)
	})
}

func (f *AtomicFloat) update(fn func(float64) float64) float64 {
	for {
		old := f.v.Load()
		next := fn(math.Float64frombits(old))
		if f.v.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}
