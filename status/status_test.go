package status

import (
	"strings"
	"sync"
	"testing"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("frames")
	b := r.Ints.Get("frames")
	if a != b {
		t.Error("Get should return the same pointer for a key")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Expected 3, got %d", b.Load())
	}
	if !r.Ints.Has("frames") || r.Ints.Has("missing") {
		t.Error("Has reports wrong membership")
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Get("shared").Add(1)
			}
		}()
	}
	wg.Wait()

	if m.Count() != 1 {
		t.Errorf("Expected 1 metric, got %d", m.Count())
	}
	if got := m.Get("shared").Load(); got != 1600 {
		t.Errorf("Expected 1600, got %v", got)
	}
}

func TestRegistrySnapshot(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("b.count").Store(7)
	r.Ints.Get("a.count").Store(2)
	r.Floats.Get("fps").Store(59.876)
	r.Bools.Get("muted").Store(true)
	r.Strings.Get("backend").Store("tcell")

	snap := r.Snapshot()
	if len(snap) != r.TotalCount() || len(snap) != 5 {
		t.Fatalf("Expected 5 entries, got %d", len(snap))
	}

	var lines []string
	for _, e := range snap {
		lines = append(lines, e.String())
	}
	want := "a.count=2 b.count=7 fps=59.88 muted=true backend=tcell"
	if got := strings.Join(lines, " "); got != want {
		t.Errorf("Expected snapshot %q, got %q", want, got)
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("zero value should be empty")
	}
	s.Store(strings.Repeat("x", MaxStringLen+10))
	if len(s.Load()) != MaxStringLen {
		t.Errorf("Expected %d bytes, got %d", MaxStringLen, len(s.Load()))
	}
}

func TestMetricMapKeys(t *testing.T) {
	m := NewMetricMap[AtomicString]()
	m.Get("z")
	m.Get("a")
	m.Get("m")
	keys := m.Keys()
	if strings.Join(keys, ",") != "a,m,z" {
		t.Errorf("Expected sorted keys, got %v", keys)
	}
}

func TestAtomicFloatSmooth(t *testing.T) {
	var f AtomicFloat
	if got := f.Smooth(60, 0.5); got != 60 {
		t.Errorf("Expected first sample 60, got %v", got)
	}
	if got := f.Smooth(40, 0.5); got != 50 {
		t.Errorf("Expected 50, got %v", got)
	}
	if old := f.Swap(0); old != 50 {
		t.Errorf("Expected Swap to return 50, got %v", old)
	}
	if got := f.Load(); got != 0 {
		t.Errorf("Expected 0 after Swap, got %v", got)
	}
}
