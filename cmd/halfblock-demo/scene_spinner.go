package main

import (
	"math"

	"github.com/lixenwraith/halfblock/engine"
	"github.com/lixenwraith/halfblock/surface"
	"github.com/lixenwraith/halfblock/vmath"
)

// spinnerScene rotates a breathing square and spokes with Mat2 transforms
type spinnerScene struct {
	app   *app
	angle float64
	speed float64 // radians per second
}

// unit square corners and spoke tips
var (
	squareCorners = []vmath.Vec2{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}}
	spokeTips     = []vmath.Vec2{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}}
)

func newSpinnerScene(a *app) *spinnerScene {
	return &spinnerScene{app: a, speed: 1.2}
}

func (s *spinnerScene) name() string { return "spinner" }

func (s *spinnerScene) enter(e *engine.Engine) {
	s.angle = 0
}

func (s *spinnerScene) update(e *engine.Engine, dt float64) {
	s.angle = math.Mod(s.angle+s.speed*dt, 2*math.Pi)

	e.Clear(surface.Black)
	w, h := e.Width(), e.Height()
	e.DrawRect(0, 0, w-1, h-1, s.app.color(surface.BrightBlack))

	center := vmath.V2(float64(w)/2, float64(h)/2)
	radius := float64(min(w, h)) / 2 * 0.8
	breath := 0.75 + 0.25*math.Sin(s.angle*2)

	square := vmath.Identity().Rotate(s.angle).Scale(vmath.V2(radius*0.6*breath, radius*0.6*breath))
	s.polygon(e, square, center, squareCorners, s.app.color(surface.BrightCyan))

	spokes := vmath.Identity().Rotate(-s.angle * 1.5).Scale(vmath.V2(radius, radius))
	cx, cy := center.Ints()
	for _, tip := range spokeTips {
		x, y := spokes.MulVec(tip).Add(center).Ints()
		e.DrawLine(cx, cy, x, y, s.app.color(surface.BrightMagenta))
		e.DrawCircle(x, y, 1, s.app.color(surface.BrightYellow))
	}
	e.DrawCircle(cx, cy, int(radius), s.app.color(surface.Blue))
}

// polygon draws a closed outline of pts transformed by m around center
func (s *spinnerScene) polygon(e *engine.Engine, m vmath.Mat2, center vmath.Vec2, pts []vmath.Vec2, c surface.Color) {
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		x0, y0 := m.MulVec(p).Add(center).Ints()
		x1, y1 := m.MulVec(q).Add(center).Ints()
		e.DrawLine(x0, y0, x1, y1, c)
	}
}

func (s *spinnerScene) key(e *engine.Engine, ev surface.Event) {
	switch {
	case ev.Key == surface.KeyUp:
		s.speed = min(s.speed*1.5, 20)
	case ev.Key == surface.KeyDown:
		s.speed = max(s.speed/1.5, 0.05)
	case ev.Key == surface.KeyRune && ev.Rune == 'r':
		s.speed = -s.speed
	}
}
