package engine

import (
	"sync"
	"time"
)

// Clock supplies frame timing to the loop
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// realClock reads the monotonic system clock and sleeps the goroutine
type realClock struct{}

// NewRealClock returns the system clock
func NewRealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time        { return time.Now() }
func (realClock) Sleep(d time.Duration) { time.Sleep(d) }

// MockClock is a controllable Clock for tests
// Sleep advances the mocked time immediately and records the requested duration
type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
	sleeps      []time.Duration
}

// NewMockClock creates a mock clock at startTime
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{currentTime: startTime}
}

// Now returns the current mocked time
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Sleep records d and advances the mocked time by it
func (m *MockClock) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sleeps = append(m.sleeps, d)
	m.currentTime = m.currentTime.Add(d)
}

// SetTime sets the current mocked time
func (m *MockClock) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the mocked time forward, simulating work
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// Sleeps returns a copy of every duration passed to Sleep
func (m *MockClock) Sleeps() []time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]time.Duration, len(m.sleeps))
	copy(out, m.sleeps)
	return out
}
