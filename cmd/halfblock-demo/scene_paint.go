package main

import (
	"github.com/lixenwraith/halfblock/audio"
	"github.com/lixenwraith/halfblock/engine"
	"github.com/lixenwraith/halfblock/sprite"
	"github.com/lixenwraith/halfblock/surface"
)

// brushColors cycle with 'n'
var brushColors = []surface.Color{
	surface.BrightWhite, surface.BrightRed, surface.BrightGreen,
	surface.BrightYellow, surface.BrightBlue, surface.BrightMagenta, surface.BrightCyan,
}

// paintScene draws with the left button and erases with the right
// Strokes persist on a sprite layer blitted every frame
type paintScene struct {
	app     *app
	layer   *sprite.Sprite
	brush   int
	last    [2]int
	drawing bool
}

func newPaintScene(a *app) *paintScene {
	return &paintScene{app: a}
}

func (s *paintScene) name() string { return "paint" }

func (s *paintScene) enter(e *engine.Engine) {
	if s.layer == nil || s.layer.Width != e.Width() || s.layer.Height != e.Height() {
		s.layer = sprite.New(e.Width(), e.Height())
	}
	s.drawing = false
}

func (s *paintScene) update(e *engine.Engine, dt float64) {
	e.Clear(surface.Black)
	s.layer.Blit(e, 0, 0)
	e.Draw(s.last[0], s.last[1], s.app.color(brushColors[s.brush]))
}

func (s *paintScene) mouse(e *engine.Engine, x, y int, buttons surface.ButtonMask) {
	switch {
	case buttons&surface.ButtonLeft != 0:
		s.stroke(x, y, func(px, py int) { s.layer.Set(px, py, s.app.color(brushColors[s.brush])) })
	case buttons&surface.ButtonRight != 0:
		s.stroke(x, y, s.erase)
	default:
		s.drawing = false
	}
	s.last = [2]int{x, y}
}

// stroke connects consecutive drag positions so fast motion leaves no gaps
func (s *paintScene) stroke(x, y int, plot func(x, y int)) {
	if !s.drawing {
		plot(x, y)
		s.drawing = true
		return
	}
	engine.WalkLine(s.last[0], s.last[1], x, y, plot)
}

func (s *paintScene) erase(x, y int) {
	if x < 0 || x >= s.layer.Width || y < 0 || y >= s.layer.Height {
		return
	}
	s.layer.Opaque[y*s.layer.Width+x] = false
}

func (s *paintScene) key(e *engine.Engine, ev surface.Event) {
	if ev.Key != surface.KeyRune {
		return
	}
	switch ev.Rune {
	case 'c':
		s.layer = sprite.New(e.Width(), e.Height())
		s.app.play(audio.Click)
	case 'n':
		s.brush = (s.brush + 1) % len(brushColors)
		s.app.play(audio.Click)
	}
}
