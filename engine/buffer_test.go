package engine

import (
	"testing"

	"github.com/lixenwraith/halfblock/surface"
)

func TestBufferClear(t *testing.T) {
	b := NewBuffer(7, 5)
	b.Draw(3, 3, surface.Red)
	b.Clear(surface.Cyan)

	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			c, ok := b.At(x, y)
			if !ok || c.Set {
				t.Fatalf("cell (%d,%d) still set after clear", x, y)
			}
			if got := b.EffectiveColor(x, y); got != surface.Cyan {
				t.Fatalf("EffectiveColor(%d,%d): Expected %d, got %d", x, y, surface.Cyan, got)
			}
		}
	}
}

func TestBufferDrawEffectiveColor(t *testing.T) {
	b := NewBuffer(4, 4)
	b.Clear(surface.Blue)
	b.Draw(1, 2, surface.Yellow)

	c, _ := b.At(1, 2)
	if !c.Set || c.Fg != surface.Yellow || c.Bg != surface.Blue {
		t.Errorf("unexpected cell %+v", c)
	}
	if b.EffectiveColor(1, 2) != surface.Yellow {
		t.Error("drawn cell should show its foreground")
	}
	if b.EffectiveColor(0, 0) != surface.Blue {
		t.Error("undrawn cell should show its background")
	}
}

func TestBufferOutOfRangeIgnored(t *testing.T) {
	b := NewBuffer(5, 3)
	b.Clear(surface.Black)

	coords := [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 3}, {5, 3}, {-100, 100}}
	for _, c := range coords {
		b.Draw(c[0], c[1], surface.Red)
		if _, ok := b.At(c[0], c[1]); ok {
			t.Errorf("At(%d,%d) reported in range", c[0], c[1])
		}
	}
	if n := len(setPixels(b)); n != 0 {
		t.Errorf("Expected no drawn pixels, got %d", n)
	}

	// Shapes crossing the edge clip without touching other cells
	b.Line(-5, -5, 10, 10, surface.Red)
	for p := range setPixels(b) {
		if p[0] != p[1] {
			t.Errorf("clipped diagonal drew off-diagonal pixel %v", p)
		}
	}
}

func TestBufferEmpty(t *testing.T) {
	b := NewBuffer(-3, 4)
	if b.Width() != 0 || b.Height() != 4 {
		t.Errorf("Expected 0x4, got %dx%d", b.Width(), b.Height())
	}
	b.Clear(surface.Red)
	b.Draw(0, 0, surface.Red)
	b.FillCircle(0, 0, 3, surface.Red)
}
