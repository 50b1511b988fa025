package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/halfblock/surface"
)

// Scan-conversion primitives. All clip silently through Buffer.Draw

// Line draws an integer Bresenham line including both endpoints
func (b *Buffer) Line(x0, y0, x1, y1 int, c surface.Color) {
	WalkLine(x0, y0, x1, y1, func(x, y int) {
		b.Draw(x, y, c)
	})
}

// WalkLine calls plot for every pixel of the Bresenham line from (x0, y0) to (x1, y1)
func WalkLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Circle draws a midpoint circle outline; radius 0 draws the center
func (b *Buffer) Circle(cx, cy, r int, c surface.Color) {
	stepCircle(r, func(x, y int) {
		b.plot8(cx, cy, x, y, c)
	})
}

// FillCircle draws a filled circle using the outline stepping plus vertical spans
func (b *Buffer) FillCircle(cx, cy, r int, c surface.Color) {
	stepCircle(r, func(x, y int) {
		b.plot8(cx, cy, x, y, c)
		b.vspan(cx+x, cy+y, cy-y, c)
		b.vspan(cx-x, cy+y, cy-y, c)
		b.vspan(cx+y, cy+x, cy-x, c)
		b.vspan(cx-y, cy+x, cy-x, c)
	})
}

// Rect draws the outline between two opposite corners given in any order
func (b *Buffer) Rect(x0, y0, x1, y1 int, c surface.Color) {
	xi, yi := 1, 1
	if x1-x0 <= 0 {
		xi = -1
	}
	if y1-y0 <= 0 {
		yi = -1
	}
	for x := x0; x != x1+xi; x += xi {
		b.Draw(x, y0, c)
		b.Draw(x, y1, c)
	}
	for y := y0; y != y1+yi; y += yi {
		b.Draw(x0, y, c)
		b.Draw(x1, y, c)
	}
}

// stepCircle walks one octant with the d = 3-2r decision variable
// plot receives the octant offset before the first step and after each step
func stepCircle(r int, plot func(x, y int)) {
	if r < 0 {
		return
	}
	if r == 0 {
		plot(0, 0)
		return
	}
	x, y := 0, r
	d := 3 - 2*r
	plot(x, y)
	for y >= x {
		x++
		if d > 0 {
			y--
			d += 4*(x-y) + 10
		} else {
			d += 4*x + 6
		}
		plot(x, y)
	}
}

func (b *Buffer) plot8(cx, cy, x, y int, c surface.Color) {
	b.Draw(cx+x, cy+y, c)
	b.Draw(cx-x, cy+y, c)
	b.Draw(cx+x, cy-y, c)
	b.Draw(cx-x, cy-y, c)
	b.Draw(cx+y, cy+x, c)
	b.Draw(cx-y, cy+x, c)
	b.Draw(cx+y, cy-x, c)
	b.Draw(cx-y, cy-x, c)
}

// vspan draws a vertical run from y0 down to y1 inclusive (y0 >= y1)
func (b *Buffer) vspan(x, y0, y1 int, c surface.Color) {
	if x < 0 || x >= b.width {
		return
	}
	y0 = min(y0, b.height-1)
	y1 = max(y1, 0)
	for y := y0; y >= y1; y-- {
		b.Draw(x, y, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Draw sets a single pixel
func (e *Engine) Draw(x, y int, c surface.Color) {
	e.buf.Draw(x, y, c)
}

// DrawLine draws a line including both endpoints
func (e *Engine) DrawLine(x0, y0, x1, y1 int, c surface.Color) {
	e.buf.Line(x0, y0, x1, y1, c)
}

// DrawCircle draws a circle outline
func (e *Engine) DrawCircle(cx, cy, r int, c surface.Color) {
	e.buf.Circle(cx, cy, r, c)
}

// FillCircle draws a filled circle
func (e *Engine) FillCircle(cx, cy, r int, c surface.Color) {
	e.buf.FillCircle(cx, cy, r, c)
}

// DrawRect draws a rectangle outline between two opposite corners
func (e *Engine) DrawRect(x0, y0, x1, y1 int, c surface.Color) {
	e.buf.Rect(x0, y0, x1, y1, c)
}

// FillRect is reserved and draws nothing
func (e *Engine) FillRect(x0, y0, x1, y1 int, c surface.Color) error {
	return fmt.Errorf("engine: FillRect: %w", errors.ErrUnsupported)
}

// FillPie is reserved and draws nothing
func (e *Engine) FillPie(x, y int, angle float64, c surface.Color) error {
	return fmt.Errorf("engine: FillPie: %w", errors.ErrUnsupported)
}
