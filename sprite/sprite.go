// Package sprite converts raster images and QR codes into palette-indexed pixel sprites
// that blit onto a half-block canvas
package sprite

import (
	"github.com/lixenwraith/halfblock/surface"
)

// Canvas is any pixel target; *engine.Engine and *engine.Buffer satisfy it
type Canvas interface {
	Draw(x, y int, c surface.Color)
}

// Sprite is a width*height grid of palette colors with a per-pixel opacity mask
type Sprite struct {
	Width  int
	Height int
	Pix    []surface.Color
	Opaque []bool
}

// New creates a fully transparent sprite
func New(width, height int) *Sprite {
	width, height = max(width, 0), max(height, 0)
	return &Sprite{
		Width:  width,
		Height: height,
		Pix:    make([]surface.Color, width*height),
		Opaque: make([]bool, width*height),
	}
}

// Set writes an opaque pixel, ignoring out-of-range coordinates
func (s *Sprite) Set(x, y int, c surface.Color) {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return
	}
	i := y*s.Width + x
	s.Pix[i] = c
	s.Opaque[i] = true
}

// At returns the pixel color, ok is false for transparent or out-of-range pixels
func (s *Sprite) At(x, y int) (surface.Color, bool) {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return 0, false
	}
	i := y*s.Width + x
	return s.Pix[i], s.Opaque[i]
}

// Blit draws opaque pixels with the sprite's top-left corner at (x, y)
// Clipping is left to the canvas
func (s *Sprite) Blit(dst Canvas, x, y int) {
	for sy := 0; sy < s.Height; sy++ {
		row := sy * s.Width
		for sx := 0; sx < s.Width; sx++ {
			if s.Opaque[row+sx] {
				dst.Draw(x+sx, y+sy, s.Pix[row+sx])
			}
		}
	}
}
