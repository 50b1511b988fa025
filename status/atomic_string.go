package status

import "sync/atomic"

// MaxStringLen bounds stored strings so HUD lines stay short
const MaxStringLen = 32

// AtomicString is a string swapped atomically by pointer
// The zero value holds ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, truncated to MaxStringLen bytes
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		val = val[:MaxStringLen]
	}
	s.ptr.Store(&val)
}

// Load returns the current value
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
