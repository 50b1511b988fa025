package engine

import (
	"testing"

	"github.com/lixenwraith/halfblock/surface"
)

type mouseCall struct {
	x, y    int
	buttons surface.ButtonMask
}

// recordingHooks captures input callbacks
type recordingHooks struct {
	HookFuncs
	mouse []mouseCall
	keys  []surface.Event
}

func (r *recordingHooks) OnMouse(e *Engine, x, y int, buttons surface.ButtonMask) {
	r.mouse = append(r.mouse, mouseCall{x, y, buttons})
}

func (r *recordingHooks) OnKey(e *Engine, ev surface.Event) {
	r.keys = append(r.keys, ev)
}

func TestDispatchMouseMapping(t *testing.T) {
	// Canvas 4x6 at column 2, pixel row 1
	e, h := newTestEngine(t, 20, 10, 4, 6, 2, 1)
	hooks := &recordingHooks{}

	h.Inject(
		surface.Event{Type: surface.EventMouse, X: 5, Y: 2, Buttons: surface.ButtonLeft},
		surface.Event{Type: surface.EventMouse, X: 0, Y: 0, Buttons: surface.ButtonRight},
		surface.Event{Type: surface.EventMouse, X: 100, Y: 100, Buttons: surface.WheelUp},
	)
	e.dispatchInput(hooks)

	want := []mouseCall{
		{3, 3, surface.ButtonLeft},
		{0, 0, surface.ButtonRight},
		{3, 5, surface.WheelUp},
	}
	if len(hooks.mouse) != len(want) {
		t.Fatalf("Expected %d mouse calls, got %d", len(want), len(hooks.mouse))
	}
	for i, w := range want {
		if hooks.mouse[i] != w {
			t.Errorf("mouse call %d: Expected %+v, got %+v", i, w, hooks.mouse[i])
		}
	}
}

func TestDispatchKeysVerbatim(t *testing.T) {
	e, h := newTestEngine(t, 20, 10, 10, 10, 0, 0)
	hooks := &recordingHooks{}

	keys := []surface.Event{
		{Type: surface.EventKey, Key: surface.KeyRune, Rune: 'q'},
		{Type: surface.EventKey, Key: surface.KeyUp, Mod: surface.ModShift},
		{Type: surface.EventKey, Key: surface.KeyCtrlC, Mod: surface.ModCtrl},
	}
	h.Inject(keys...)
	h.Inject(surface.Event{Type: surface.EventResize, X: 30, Y: 30})
	e.dispatchInput(hooks)

	if len(hooks.keys) != len(keys) {
		t.Fatalf("Expected %d key calls, got %d", len(keys), len(hooks.keys))
	}
	for i := range keys {
		if hooks.keys[i] != keys[i] {
			t.Errorf("key %d: Expected %+v, got %+v", i, keys[i], hooks.keys[i])
		}
	}
	if len(hooks.mouse) != 0 {
		t.Error("resize must not reach the mouse hook")
	}
	if h.Pending() != 0 {
		t.Errorf("dispatcher left %d events queued", h.Pending())
	}
}
