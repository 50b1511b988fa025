package engine

import (
	"testing"

	"github.com/lixenwraith/halfblock/surface"
)

func expectGlyph(t *testing.T, h *surface.Headless, col, row int, wantR rune, wantFg, wantBg surface.Color) {
	t.Helper()
	r, fg, bg, ok := h.Cell(col, row)
	if !ok {
		t.Fatalf("Expected cell (%d,%d) to be written", col, row)
	}
	if r != wantR || fg != wantFg || bg != wantBg {
		t.Errorf("cell (%d,%d): Expected %q fg %d bg %d, got %q fg %d bg %d",
			col, row, wantR, wantFg, wantBg, r, fg, bg)
	}
}

func TestCompositeEvenOrigin(t *testing.T) {
	e, h := newTestEngine(t, 10, 5, 4, 4, 0, 0)

	e.Draw(1, 0, surface.Red)   // upper half of row 0
	e.Draw(1, 1, surface.Green) // lower half of row 0
	e.Draw(2, 3, surface.Blue)  // lower half of row 1
	e.composite()

	expectGlyph(t, h, 1, 0, HalfBlock, surface.Green, surface.Red)
	expectGlyph(t, h, 2, 1, HalfBlock, surface.Blue, surface.Black)
	expectGlyph(t, h, 0, 0, HalfBlock, surface.Black, surface.Black)

	// One write per column per window row
	if got := h.WriteCount(); got != 4*2 {
		t.Errorf("Expected 8 writes, got %d", got)
	}
	if _, _, _, ok := h.Cell(0, 2); ok {
		t.Error("composite wrote outside the window")
	}
}

func TestCompositeOddEdges(t *testing.T) {
	// y=1: pixel row 0 is the lower half of surface row 0; height 4 leaves pixel row 3
	// as the upper half of surface row 2
	e, h := newTestEngine(t, 10, 5, 4, 4, 2, 1)
	g := e.Geometry()
	if !g.TopOdd || !g.BottomOdd || g.Rows() != 3 {
		t.Fatalf("unexpected geometry %+v rows %d", g, g.Rows())
	}

	e.ClearOutside(surface.Blue)
	e.Draw(0, 0, surface.Red)
	e.Draw(0, 1, surface.Green)
	e.Draw(0, 2, surface.Yellow)
	e.Draw(0, 3, surface.Magenta)
	e.composite()

	expectGlyph(t, h, 2, 0, HalfBlock, surface.Red, surface.Blue)
	expectGlyph(t, h, 2, 1, HalfBlock, surface.Yellow, surface.Green)
	expectGlyph(t, h, 2, 2, HalfBlock, surface.Blue, surface.Magenta)

	// Outside the window the outside fill remains
	expectGlyph(t, h, 0, 0, ' ', surface.Black, surface.Blue)
	expectGlyph(t, h, 2, 3, ' ', surface.Black, surface.Blue)
}

func TestCompositeOddHeight(t *testing.T) {
	e, h := newTestEngine(t, 6, 4, 3, 3, 0, 0)
	g := e.Geometry()
	if g.TopOdd || !g.BottomOdd || g.Rows() != 2 {
		t.Fatalf("unexpected geometry %+v", g)
	}

	e.Draw(0, 2, surface.Cyan)
	e.composite()

	// Dangling last pixel row is the upper half, outside color below it
	expectGlyph(t, h, 0, 1, HalfBlock, surface.Black, surface.Cyan)
}

func TestCompositeTransparentCells(t *testing.T) {
	e, h := newTestEngine(t, 4, 2, 2, 2, 0, 0)
	e.Clear(surface.White)
	e.Draw(0, 1, surface.Red)
	e.composite()

	// Undrawn upper pixel shows the clear color
	expectGlyph(t, h, 0, 0, HalfBlock, surface.Red, surface.White)
	expectGlyph(t, h, 1, 0, HalfBlock, surface.White, surface.White)
}
