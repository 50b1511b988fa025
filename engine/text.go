package engine

import "github.com/lixenwraith/halfblock/surface"

// Align positions a string relative to its x coordinate
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// DeferredText is a pending string draw, painted after the pixel buffer each frame
type DeferredText struct {
	Text        []rune
	X           int
	Row         int // window row, pixel y halved
	Fg          surface.Color
	Transparent bool // spaces leave the underlying glyph visible
}

// DrawString queues text at pixel (x, y); y is rounded down to a glyph row
// The background of each glyph is the pixel color under it at paint time
// Safe for concurrent use; texts paint in queue order and must be re-issued every frame
func (e *Engine) DrawString(x, y int, text string, fg surface.Color, transparent bool, align Align) {
	runes := []rune(text)

	switch align {
	case AlignCenter:
		x -= len(runes) / 2
	case AlignRight:
		x -= len(runes)
	}
	x = max(0, min(x, e.geom.Width))

	e.texts.Push(DeferredText{
		Text:        runes,
		X:           x,
		Row:         y / 2,
		Fg:          fg,
		Transparent: transparent,
	})
}

// drainText paints and discards every queued text, returning how many were drained
func (e *Engine) drainText() int {
	n := 0
	for {
		t, ok := e.texts.Pop()
		if !ok {
			return n
		}
		e.paintText(t)
		n++
	}
}

func (e *Engine) paintText(t DeferredText) {
	for j, r := range t.Text {
		x := t.X + j
		if x >= e.geom.Width {
			return
		}
		if t.Transparent && r == ' ' {
			continue
		}
		bg := e.textBackground(x, t.Row*2)
		e.win.put(x, t.Row, r, e.pairs.Resolve(t.Fg, bg))
	}
}

// textBackground returns the pixel color under a glyph, the outside color past the buffer
func (e *Engine) textBackground(x, y int) surface.Color {
	if c, ok := e.buf.At(x, y); ok {
		return c.Color()
	}
	return e.outColor
}

// PendingText returns the number of queued texts
func (e *Engine) PendingText() int {
	return e.texts.Len()
}
