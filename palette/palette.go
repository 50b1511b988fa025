// Package palette maps RGB colors onto the xterm 256-color palette
//
// Layout:
//   - 0-15: ANSI system colors
//   - 16-231: 6x6x6 color cube, index = 16 + 36*r + 6*g + b where r,g,b ∈ [0,5]
//   - 232-255: grayscale ramp, level = 8 + 10*(index-232)
package palette

import (
	"image/color"

	"github.com/lixenwraith/halfblock/surface"
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xffff
}

// Color cube channel levels
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// xterm defaults for the system colors
var systemColors = [16]RGB{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// table holds the RGB value of every palette index
var table [256]RGB

// cubeIndex maps 0-255 to the nearest cube level 0-5
var cubeIndex [256]uint8

const grayscaleStart = 232

func init() {
	copy(table[:16], systemColors[:])
	for i := 16; i < grayscaleStart; i++ {
		n := i - 16
		table[i] = RGB{cubeValues[n/36], cubeValues[(n%36)/6], cubeValues[n%6]}
	}
	for i := grayscaleStart; i < 256; i++ {
		level := uint8(8 + 10*(i-grayscaleStart))
		table[i] = RGB{level, level, level}
	}

	for i := 0; i < 256; i++ {
		best := 0
		bestDist := abs(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			if d := abs(i - int(cubeValues[j])); d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Lookup returns the RGB value of a palette index
func Lookup(c surface.Color) RGB {
	return table[c]
}

// Cube returns the palette index for an RGB cube coordinate, each clamped to [0,5]
func Cube(r, g, b uint8) surface.Color {
	r, g, b = min(r, 5), min(g, 5), min(b, 5)
	return surface.Color(16 + 36*r + 6*g + b)
}

// Gray returns the palette index for a grayscale step clamped to [0,23]
func Gray(step uint8) surface.Color {
	return surface.Color(grayscaleStart + min(step, 23))
}

// Nearest returns the closest index in the full 256-color palette
func Nearest(c color.Color) surface.Color {
	rgb := toRGB(c)
	return surface.Color(nearest256(rgb.R, rgb.G, rgb.B))
}

// NearestIn returns the closest index among the first n palette entries
// Used for terminals reporting fewer than 256 colors
func NearestIn(c color.Color, n int) surface.Color {
	if n >= 256 {
		return Nearest(c)
	}
	if n <= 0 {
		return surface.Black
	}
	rgb := toRGB(c)
	best, bestDist := 0, -1
	for i := 0; i < n; i++ {
		if d := distance(rgb, table[i]); bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return surface.Color(best)
}

// Palette returns the first n entries as an image/color palette for quantizers
func Palette(n int) color.Palette {
	n = max(1, min(n, 256))
	p := make(color.Palette, n)
	for i := range p {
		p[i] = table[i]
	}
	return p
}

func toRGB(c color.Color) RGB {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}
	r, g, b, _ := c.RGBA()
	return RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

// distance is squared euclidean RGB distance
func distance(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// nearest256 picks between the cube and grayscale ramp; system colors are never chosen
// since their values vary per terminal
func nearest256(r, g, b uint8) uint8 {
	cube := 16 + 36*cubeIndex[r] + 6*cubeIndex[g] + cubeIndex[b]

	gray := (int(r) + int(g) + int(b)) / 3
	maxDiff := max(abs(int(r)-gray), abs(int(g)-gray), abs(int(b)-gray))
	if maxDiff >= 10 {
		return cube
	}

	step := (gray - 8 + 5) / 10
	step = max(0, min(step, 23))
	grayIdx := uint8(grayscaleStart + step)

	rgb := RGB{r, g, b}
	if distance(rgb, table[grayIdx]) < distance(rgb, table[cube]) {
		return grayIdx
	}
	return cube
}
