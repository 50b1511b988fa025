package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lixenwraith/halfblock/audio"
	"github.com/lixenwraith/halfblock/config"
	"github.com/lixenwraith/halfblock/engine"
	"github.com/lixenwraith/halfblock/palette"
	"github.com/lixenwraith/halfblock/status"
	"github.com/lixenwraith/halfblock/surface"
)

// scene is one demo page; all calls happen on the loop goroutine
type scene interface {
	name() string
	enter(e *engine.Engine)
	update(e *engine.Engine, dt float64)
}

// mouseScene receives canvas mouse input
type mouseScene interface {
	mouse(e *engine.Engine, x, y int, buttons surface.ButtonMask)
}

// keyScene receives keys the app does not consume
type keyScene interface {
	key(e *engine.Engine, ev surface.Event)
}

// Metric keys published by the demo
const (
	metricScene   = "demo.scene"
	metricBackend = "demo.backend"
	metricMuted   = "demo.muted"
)

// hudKeys are the registry metrics shown in the HUD
var hudKeys = []string{engine.MetricFPS, engine.MetricFrameMs, engine.MetricPairs, metricMuted}

// app implements engine.Hooks
type app struct {
	cfg    *config.Config
	player *audio.Player
	reg    *status.Registry
	colors int

	scenes  []scene
	current int
	hud     bool
	quit    bool
	notice  string
	noticeT float64
}

func newApp(cfg *config.Config, player *audio.Player, reg *status.Registry, colors int) *app {
	a := &app{
		cfg:    cfg,
		player: player,
		reg:    reg,
		colors: colors,
		hud:    true,
	}
	reg.Strings.Get(metricBackend).Store(cfg.Backend)
	reg.Bools.Get(metricMuted).Store(player.Muted())
	return a
}

// color maps a 256-color index onto what the surface supports
func (a *app) color(c surface.Color) surface.Color {
	if a.colors >= surface.MaxColors {
		return c
	}
	return palette.NearestIn(palette.Lookup(c), a.colors)
}

func (a *app) OnStart(e *engine.Engine) bool {
	e.SetCursorVisible(false)
	e.ClearOutside(surface.Black)

	a.scenes = []scene{
		newBallsScene(a, a.cfg.Demo.Balls, a.cfg.Demo.Seed),
		newSpinnerScene(a),
		newPulseScene(a),
		newPaintScene(a),
		newQRScene(a, a.cfg.Demo.QR),
		newImageScene(a, a.cfg.Demo.Image),
	}

	idx := slices.IndexFunc(a.scenes, func(s scene) bool { return s.name() == a.cfg.Demo.Scene })
	if idx < 0 {
		engine.Logger().Warn("unknown scene", "scene", a.cfg.Demo.Scene)
		return false
	}
	a.switchTo(e, idx)
	return true
}

func (a *app) OnUpdate(e *engine.Engine, dt float64) bool {
	if a.quit {
		return false
	}

	a.scenes[a.current].update(e, dt)

	if a.noticeT > 0 {
		a.noticeT -= dt
		e.DrawString(e.Width()/2, e.Height()-2, a.notice, a.color(surface.BrightYellow), false, engine.AlignCenter)
	}
	if a.hud {
		a.drawHUD(e)
	}
	return true
}

func (a *app) OnMouse(e *engine.Engine, x, y int, buttons surface.ButtonMask) {
	if ms, ok := a.scenes[a.current].(mouseScene); ok {
		ms.mouse(e, x, y, buttons)
	}
}

func (a *app) OnKey(e *engine.Engine, ev surface.Event) {
	switch ev.Key {
	case surface.KeyEscape:
		a.quit = true
		return
	case surface.KeyTab, surface.KeyRight:
		a.switchTo(e, (a.current+1)%len(a.scenes))
		return
	case surface.KeyBacktab, surface.KeyLeft:
		a.switchTo(e, (a.current+len(a.scenes)-1)%len(a.scenes))
		return
	case surface.KeyRune:
		switch r := ev.Rune; {
		case r == 'q':
			a.quit = true
			return
		case r == 'h':
			a.hud = !a.hud
			return
		case r == 'm':
			muted := a.player.ToggleMute()
			a.reg.Bools.Get(metricMuted).Store(muted)
			if muted {
				a.flash("sound off")
			} else {
				a.flash("sound on")
			}
			return
		case r >= '1' && r <= '9':
			if i := int(r - '1'); i < len(a.scenes) {
				a.switchTo(e, i)
			}
			return
		}
	}

	if ks, ok := a.scenes[a.current].(keyScene); ok {
		ks.key(e, ev)
	}
}

func (a *app) switchTo(e *engine.Engine, idx int) {
	a.current = idx
	a.scenes[idx].enter(e)
	a.reg.Strings.Get(metricScene).Store(a.scenes[idx].name())
	engine.Logger().Info("scene", "name", a.scenes[idx].name())
}

// flash shows a short message above the bottom edge
func (a *app) flash(msg string) {
	a.notice = msg
	a.noticeT = 1.5
}

// play emits a tone unless muted or audio is unavailable
func (a *app) play(t audio.Tone) {
	a.player.Play(t)
}

func (a *app) drawHUD(e *engine.Engine) {
	title := fmt.Sprintf("%d/%d %s", a.current+1, len(a.scenes), a.scenes[a.current].name())
	e.DrawString(0, 0, title, a.color(surface.BrightWhite), true, engine.AlignLeft)
	e.DrawString(e.Width(), 0, "tab:next h:hud m:sound q:quit", a.color(surface.BrightBlack), true, engine.AlignRight)

	var parts []string
	for _, entry := range a.reg.Snapshot() {
		if slices.Contains(hudKeys, entry.Key) {
			key := strings.TrimPrefix(strings.TrimPrefix(entry.Key, "engine."), "demo.")
			parts = append(parts, key+"="+entry.Value)
		}
	}
	e.DrawString(0, e.Height()-1, strings.Join(parts, " "), a.color(surface.BrightGreen), true, engine.AlignLeft)
}
