package engine

import "github.com/lixenwraith/halfblock/surface"

// HalfBlock is the lower-half block glyph: foreground paints the lower pixel,
// background the upper one
const HalfBlock = '▄'

// window is the canvas rectangle on the surface in glyph cells
type window struct {
	surf surface.Surface
	left int
	top  int
	cols int
	rows int
}

// put writes one glyph at a window-relative cell, clipped to the window
func (w window) put(col, row int, r rune, pair surface.PairID) {
	if col < 0 || col >= w.cols || row < 0 || row >= w.rows {
		return
	}
	w.surf.SetContent(w.left+col, w.top+row, r, pair)
}

// composite writes the pixel buffer to the surface, one glyph per column per window row
func (e *Engine) composite() {
	g := e.geom
	b := e.buf

	// With an odd origin, pixel row 0 sits alone in window row 0
	start := 1
	if g.TopOdd {
		start = 2
	}

	for x := 0; x < g.Width; x++ {
		for y := start; y < g.Height; y += 2 {
			pair := e.pairs.Resolve(b.EffectiveColor(x, y), b.EffectiveColor(x, y-1))
			e.win.put(x, y/2, HalfBlock, pair)
		}
	}

	if g.TopOdd {
		for x := 0; x < g.Width; x++ {
			pair := e.pairs.Resolve(b.EffectiveColor(x, 0), e.outColor)
			e.win.put(x, 0, HalfBlock, pair)
		}
	}

	if g.BottomOdd {
		last := g.Height - 1
		for x := 0; x < g.Width; x++ {
			pair := e.pairs.Resolve(e.outColor, b.EffectiveColor(x, last))
			e.win.put(x, g.Height/2, HalfBlock, pair)
		}
	}
}
