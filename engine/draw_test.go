package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/halfblock/surface"
)

func TestLineDegenerate(t *testing.T) {
	b := NewBuffer(10, 10)
	b.Line(0, 0, 0, 0, surface.Red)

	px := setPixels(b)
	if len(px) != 1 || !px[[2]int{0, 0}] {
		t.Errorf("Expected single pixel at origin, got %v", px)
	}
}

func TestLineHorizontal(t *testing.T) {
	b := NewBuffer(10, 10)
	b.Line(0, 0, 4, 0, surface.Red)

	px := setPixels(b)
	if len(px) != 5 {
		t.Fatalf("Expected 5 pixels, got %d", len(px))
	}
	for x := 0; x <= 4; x++ {
		if !px[[2]int{x, 0}] {
			t.Errorf("missing pixel (%d,0)", x)
		}
	}
}

func TestLineAllOctants(t *testing.T) {
	ends := [][2]int{
		{7, 3}, {3, 7}, {-3, 7}, {-7, 3},
		{-7, -3}, {-3, -7}, {3, -7}, {7, -3},
		{7, 0}, {0, 7}, {-7, 0}, {0, -7},
		{5, 5}, {-5, -5},
	}
	const cx, cy = 10, 10

	for _, end := range ends {
		x1, y1 := cx+end[0], cy+end[1]
		want := max(abs(end[0]), abs(end[1])) + 1

		forward := NewBuffer(21, 21)
		forward.Line(cx, cy, x1, y1, surface.Red)
		backward := NewBuffer(21, 21)
		backward.Line(x1, y1, cx, cy, surface.Red)

		for name, b := range map[string]*Buffer{"forward": forward, "backward": backward} {
			px := setPixels(b)
			if len(px) != want {
				t.Errorf("%s line to %v: Expected %d pixels, got %d", name, end, want, len(px))
			}
			if !px[[2]int{cx, cy}] || !px[[2]int{x1, y1}] {
				t.Errorf("%s line to %v: missing endpoint", name, end)
			}
			// 8-connected: every pixel except the ends has a neighbor on the path
			for p := range px {
				neighbors := 0
				for dx := -1; dx <= 1; dx++ {
					for dy := -1; dy <= 1; dy++ {
						if (dx != 0 || dy != 0) && px[[2]int{p[0] + dx, p[1] + dy}] {
							neighbors++
						}
					}
				}
				if neighbors == 0 {
					t.Errorf("%s line to %v: isolated pixel %v", name, end, p)
				}
			}
		}
	}
}

func TestCircleRadiusZero(t *testing.T) {
	b := NewBuffer(9, 9)
	b.Circle(4, 4, 0, surface.Red)
	px := setPixels(b)
	if len(px) != 1 || !px[[2]int{4, 4}] {
		t.Errorf("radius 0 should draw only the center, got %v", px)
	}

	f := NewBuffer(9, 9)
	f.FillCircle(4, 4, 0, surface.Red)
	if px := setPixels(f); len(px) != 1 {
		t.Errorf("filled radius 0 should draw only the center, got %v", px)
	}
}

func TestCircleOutline(t *testing.T) {
	const c, r = 15, 10
	b := NewBuffer(31, 31)
	b.Circle(c, c, r, surface.Red)

	px := setPixels(b)
	for p := range px {
		dx, dy := p[0]-c, p[1]-c
		d := math.Hypot(float64(dx), float64(dy))
		if math.Abs(d-r) > 1 {
			t.Errorf("pixel %v at distance %.2f from center", p, d)
		}
		// 8-way symmetry
		for _, m := range [][2]int{{-dx, dy}, {dx, -dy}, {dy, dx}, {-dy, -dx}} {
			if !px[[2]int{c + m[0], c + m[1]}] {
				t.Errorf("missing mirror of %v", p)
			}
		}
	}
	for _, p := range [][2]int{{c + r, c}, {c - r, c}, {c, c + r}, {c, c - r}} {
		if !px[p] {
			t.Errorf("missing axis point %v", p)
		}
	}
}

func TestFillCircleCoverage(t *testing.T) {
	const c = 20
	for r := 1; r <= 15; r++ {
		b := NewBuffer(41, 41)
		b.FillCircle(c, c, r, surface.Red)
		px := setPixels(b)

		for y := 0; y < 41; y++ {
			// One contiguous span per row
			first, last, count := -1, -1, 0
			for x := 0; x < 41; x++ {
				if px[[2]int{x, y}] {
					if first < 0 {
						first = x
					}
					last = x
					count++
				}
			}
			if count > 0 && last-first+1 != count {
				t.Errorf("r=%d row %d: gap in span %d..%d (%d pixels)", r, y, first, last, count)
			}

			for x := 0; x < 41; x++ {
				d := math.Hypot(float64(x-c), float64(y-c))
				filled := px[[2]int{x, y}]
				if d <= float64(r)-1 && !filled {
					t.Errorf("r=%d: interior point (%d,%d) at %.2f not filled", r, x, y, d)
				}
				if d > float64(r)+1 && filled {
					t.Errorf("r=%d: exterior point (%d,%d) at %.2f filled", r, x, y, d)
				}
			}
		}
	}
}

func TestRectEitherCornerOrder(t *testing.T) {
	a := NewBuffer(10, 10)
	a.Rect(2, 2, 6, 5, surface.Red)
	b := NewBuffer(10, 10)
	b.Rect(6, 5, 2, 2, surface.Red)
	c := NewBuffer(10, 10)
	c.Rect(6, 2, 2, 5, surface.Red)

	pa, pb, pc := setPixels(a), setPixels(b), setPixels(c)
	if len(pa) != 14 {
		t.Errorf("Expected 14 perimeter pixels, got %d", len(pa))
	}
	for p := range pa {
		if !pb[p] || !pc[p] {
			t.Errorf("pixel %v differs between corner orders", p)
		}
	}
	if len(pb) != len(pa) || len(pc) != len(pa) {
		t.Errorf("pixel counts differ: %d %d %d", len(pa), len(pb), len(pc))
	}
	if pa[[2]int{4, 3}] {
		t.Error("outline should not fill the interior")
	}
}

func TestRectDegenerate(t *testing.T) {
	b := NewBuffer(5, 5)
	b.Rect(2, 2, 2, 2, surface.Red)
	if px := setPixels(b); len(px) != 1 {
		t.Errorf("Expected 1 pixel, got %d", len(px))
	}
}

func TestReservedFills(t *testing.T) {
	e, _ := newTestEngine(t, 20, 10, 10, 10, 0, 0)

	if err := e.FillRect(0, 0, 5, 5, surface.Red); !errors.Is(err, errors.ErrUnsupported) {
		t.Errorf("FillRect: Expected ErrUnsupported, got %v", err)
	}
	if err := e.FillPie(5, 5, math.Pi, surface.Red); !errors.Is(err, errors.ErrUnsupported) {
		t.Errorf("FillPie: Expected ErrUnsupported, got %v", err)
	}
	if n := len(setPixels(e.Buffer())); n != 0 {
		t.Errorf("reserved fills must not draw, got %d pixels", n)
	}
}
