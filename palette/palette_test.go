package palette

import (
	"image/color"
	"testing"

	"github.com/lixenwraith/halfblock/surface"
)

func TestCubeAndLookup(t *testing.T) {
	idx := Cube(5, 0, 0)
	if idx != 196 {
		t.Errorf("Cube(5,0,0): Expected 196, got %d", idx)
	}
	if rgb := Lookup(idx); rgb != (RGB{255, 0, 0}) {
		t.Errorf("Lookup(196) = %+v", rgb)
	}
	if Cube(9, 9, 9) != 231 {
		t.Error("cube coordinates should clamp to 5")
	}
}

func TestGray(t *testing.T) {
	if Gray(0) != 232 || Gray(23) != 255 || Gray(40) != 255 {
		t.Errorf("gray ramp bounds wrong: %d %d %d", Gray(0), Gray(23), Gray(40))
	}
	if rgb := Lookup(Gray(10)); rgb != (RGB{108, 108, 108}) {
		t.Errorf("Lookup(Gray(10)) = %+v", rgb)
	}
}

func TestNearestExact(t *testing.T) {
	// Every cube and gray entry maps back to itself
	for i := 16; i < 256; i++ {
		c := surface.Color(i)
		got := Nearest(Lookup(c))
		if Lookup(got) != Lookup(c) {
			t.Errorf("Nearest(Lookup(%d)) = %d with different RGB", i, got)
		}
	}
}

func TestNearestColors(t *testing.T) {
	tests := []struct {
		in   color.Color
		want surface.Color
	}{
		{color.RGBA{0, 0, 0, 255}, 16},
		{color.RGBA{255, 255, 255, 255}, 231},
		{color.RGBA{250, 10, 5, 255}, 196},
		{color.RGBA{128, 128, 128, 255}, 244},
		{RGB{0, 95, 135}, 24},
	}
	for _, tt := range tests {
		if got := Nearest(tt.in); got != tt.want {
			t.Errorf("Nearest(%v): Expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestNearestIn(t *testing.T) {
	if got := NearestIn(color.RGBA{240, 10, 10, 255}, 16); got != surface.BrightRed {
		t.Errorf("NearestIn red/16: Expected %d, got %d", surface.BrightRed, got)
	}
	if got := NearestIn(color.RGBA{10, 10, 10, 255}, 8); got != surface.Black {
		t.Errorf("NearestIn near-black/8 = %d", got)
	}
	if got := NearestIn(color.RGBA{255, 0, 0, 255}, 256); got != 196 {
		t.Errorf("NearestIn with full palette: Expected 196, got %d", got)
	}
}

func TestPalette(t *testing.T) {
	p := Palette(16)
	if len(p) != 16 {
		t.Fatalf("expected 16 entries, got %d", len(p))
	}
	if p.Index(color.RGBA{0, 0, 238, 255}) != int(surface.Blue) {
		t.Error("palette index of xterm blue should be Blue")
	}
	if len(Palette(1000)) != 256 {
		t.Error("palette should cap at 256")
	}
}
