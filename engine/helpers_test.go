package engine

import (
	"testing"

	"github.com/lixenwraith/halfblock/surface"
)

// newTestEngine constructs an engine over a headless surface
func newTestEngine(t *testing.T, cols, rows, width, height, x, y int) (*Engine, *surface.Headless) {
	t.Helper()
	h := surface.NewHeadless(cols, rows)
	if err := h.Init(); err != nil {
		t.Fatal(err)
	}
	e := New(h)
	if err := e.Construct(width, height, x, y, false); err != nil {
		t.Fatalf("Expected construct %dx%d at (%d,%d) to succeed, got %v", width, height, x, y, err)
	}
	return e, h
}

// setPixels returns every drawn pixel in the buffer
func setPixels(b *Buffer) map[[2]int]bool {
	out := make(map[[2]int]bool)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if c, _ := b.At(x, y); c.Set {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}
