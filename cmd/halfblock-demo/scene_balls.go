package main

import (
	"math"

	"github.com/lixenwraith/halfblock/audio"
	"github.com/lixenwraith/halfblock/config"
	"github.com/lixenwraith/halfblock/engine"
	"github.com/lixenwraith/halfblock/palette"
	"github.com/lixenwraith/halfblock/surface"
	"github.com/lixenwraith/halfblock/vmath"
)

type ball struct {
	pos   vmath.Vec2
	vel   vmath.Vec2
	r     int
	color surface.Color
}

// ballsScene bounces filled circles off the canvas edges
type ballsScene struct {
	app   *app
	count int
	rng   *vmath.FastRand
	balls []ball

	// bounces counts wall hits since enter
	bounces int
}

// Wall normals pointing into the canvas
var (
	normalLeft   = vmath.V2(1, 0)
	normalRight  = vmath.V2(-1, 0)
	normalTop    = vmath.V2(0, 1)
	normalBottom = vmath.V2(0, -1)
)

func newBallsScene(a *app, count int, seed uint64) *ballsScene {
	return &ballsScene{app: a, count: count, rng: vmath.NewFastRand(seed)}
}

func (s *ballsScene) name() string { return "balls" }

func (s *ballsScene) enter(e *engine.Engine) {
	s.balls = s.balls[:0]
	s.bounces = 0
	for range s.count {
		s.spawn(e)
	}
}

func (s *ballsScene) spawn(e *engine.Engine) {
	r := 1 + s.rng.Intn(4)
	w, h := float64(e.Width()), float64(e.Height())
	angle := s.rng.Range(0, 2*math.Pi)
	speed := s.rng.Range(15, 45)

	s.balls = append(s.balls, ball{
		pos: vmath.V2(s.rng.Range(float64(r), max(float64(r), w-float64(r))),
			s.rng.Range(float64(r), max(float64(r), h-float64(r)))),
		vel:   vmath.V2(math.Cos(angle), math.Sin(angle)).Scale(speed),
		r:     r,
		color: s.app.color(palette.Cube(uint8(1+s.rng.Intn(5)), uint8(1+s.rng.Intn(5)), uint8(1+s.rng.Intn(5)))),
	})
}

func (s *ballsScene) update(e *engine.Engine, dt float64) {
	e.Clear(s.app.color(palette.Gray(2)))

	w, h := float64(e.Width()), float64(e.Height())
	hit := false
	for i := range s.balls {
		b := &s.balls[i]
		b.pos = b.pos.Add(b.vel.Scale(dt))
		if bounceBall(b, w, h) {
			hit = true
			s.bounces++
		}
		x, y := b.pos.Ints()
		e.FillCircle(x, y, b.r, b.color)
	}

	// One tone per frame regardless of how many balls hit
	if hit {
		s.app.play(audio.Bounce)
	}
}

// bounceBall keeps b inside a w*h box, reflecting its velocity off each wall it crosses
func bounceBall(b *ball, w, h float64) bool {
	r := float64(b.r)
	hit := false
	if b.pos.X < r && b.vel.Dot(normalLeft) < 0 {
		b.pos.X = r
		b.vel = b.vel.Reflect(normalLeft)
		hit = true
	}
	if b.pos.X > w-1-r && b.vel.Dot(normalRight) < 0 {
		b.pos.X = w - 1 - r
		b.vel = b.vel.Reflect(normalRight)
		hit = true
	}
	if b.pos.Y < r && b.vel.Dot(normalTop) < 0 {
		b.pos.Y = r
		b.vel = b.vel.Reflect(normalTop)
		hit = true
	}
	if b.pos.Y > h-1-r && b.vel.Dot(normalBottom) < 0 {
		b.pos.Y = h - 1 - r
		b.vel = b.vel.Reflect(normalBottom)
		hit = true
	}
	return hit
}

func (s *ballsScene) key(e *engine.Engine, ev surface.Event) {
	if ev.Key != surface.KeyRune {
		return
	}
	switch ev.Rune {
	case '+', '=':
		if len(s.balls) < config.MaxBalls {
			s.spawn(e)
		}
	case '-':
		if len(s.balls) > 0 {
			s.balls = s.balls[:len(s.balls)-1]
		}
	}
}
