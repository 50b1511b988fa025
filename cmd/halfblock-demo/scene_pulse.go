package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/lixenwraith/halfblock/engine"
	"github.com/lixenwraith/halfblock/palette"
	"github.com/lixenwraith/halfblock/surface"
)

// pulseScene eases a filled circle's radius and shade back and forth
type pulseScene struct {
	app    *app
	radius *gween.Sequence
	shade  *gween.Sequence
}

func newPulseScene(a *app) *pulseScene {
	return &pulseScene{app: a}
}

func (s *pulseScene) name() string { return "pulse" }

func (s *pulseScene) enter(e *engine.Engine) {
	maxR := float32(max(min(e.Width(), e.Height())/2-2, 1))

	s.radius = gween.NewSequence(gween.New(maxR*0.2, maxR, 1.2, ease.InOutSine))
	s.radius.SetYoyo(true)
	s.radius.SetLoop(-1)

	s.shade = gween.NewSequence(gween.New(0, 23, 0.9, ease.InOutQuad))
	s.shade.SetYoyo(true)
	s.shade.SetLoop(-1)
}

func (s *pulseScene) update(e *engine.Engine, dt float64) {
	r, _, _ := s.radius.Update(float32(dt))
	g, _, _ := s.shade.Update(float32(dt))

	e.Clear(surface.Black)
	cx, cy := e.Width()/2, e.Height()/2
	e.FillCircle(cx, cy, int(r), s.app.color(palette.Gray(uint8(g))))
	e.DrawCircle(cx, cy, int(r)+1, s.app.color(surface.BrightRed))
	e.DrawString(cx, cy, "pulse", s.app.color(surface.BrightRed), true, engine.AlignCenter)
}
