package engine

import "github.com/lixenwraith/halfblock/surface"

// Cell is one logical pixel
// Set is false until a primitive draws the pixel; the cell then shows its background
type Cell struct {
	Fg  surface.Color
	Bg  surface.Color
	Set bool
}

// Color returns the displayed color: Fg if drawn, Bg otherwise
func (c Cell) Color() surface.Color {
	if c.Set {
		return c.Fg
	}
	return c.Bg
}

// Buffer is the logical pixel grid, one contiguous slice indexed y*width+x
// Allocated once; Clear resets cells in place
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// NewBuffer allocates a cleared buffer; non-positive dimensions yield an empty buffer
func NewBuffer(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	return &Buffer{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Draw sets one pixel; out-of-range coordinates are ignored
func (b *Buffer) Draw(x, y int, fg surface.Color) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Fg = fg
	c.Set = true
}

// Clear resets every cell to an undrawn bg
func (b *Buffer) Clear(bg surface.Color) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Fg: bg, Bg: bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// At returns the cell at (x, y); ok is false out of range
func (b *Buffer) At(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// EffectiveColor returns the displayed color at (x, y), Black out of range
func (b *Buffer) EffectiveColor(x, y int) surface.Color {
	if !b.inBounds(x, y) {
		return surface.Black
	}
	return b.cells[y*b.width+x].Color()
}
