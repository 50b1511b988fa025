package engine

import "github.com/lixenwraith/halfblock/surface"

// dispatchInput drains every pending surface event into the hooks
// Mouse positions are mapped into canvas pixel space and clamped to it
func (e *Engine) dispatchInput(h Hooks) {
	for {
		ev, ok := e.surf.PollEvent()
		if !ok {
			return
		}

		switch ev.Type {
		case surface.EventMouse:
			x, y := e.canvasPoint(ev.X, ev.Y)
			h.OnMouse(e, x, y, ev.Buttons)
		case surface.EventKey:
			h.OnKey(e, ev)
		}
	}
}

// canvasPoint converts a surface cell to canvas pixel coordinates
func (e *Engine) canvasPoint(col, row int) (int, int) {
	g := e.geom
	x := clamp(col-g.X, 0, g.Width-1)
	y := clamp(row*2-g.Y, 0, g.Height-1)
	return x, y
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
