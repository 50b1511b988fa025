package engine

import "github.com/lixenwraith/halfblock/surface"

// State is the loop lifecycle: NotStarted -> Running -> Stopped
type State int32

const (
	StateNotStarted State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StateRunning:
		return "Running"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Hooks receives loop callbacks, all on the loop goroutine
type Hooks interface {
	// OnStart runs once before the first frame; false aborts Run
	OnStart(e *Engine) bool

	// OnUpdate runs every frame with the previous frame's duration in seconds
	// false stops the loop after this frame is drawn
	OnUpdate(e *Engine, dt float64) bool

	// OnMouse receives canvas pixel coordinates and the raw button mask
	OnMouse(e *Engine, x, y int, buttons surface.ButtonMask)

	// OnKey receives key events verbatim
	OnKey(e *Engine, ev surface.Event)
}

// HookFuncs adapts closures to Hooks
// A nil Start proceeds, a nil Update stops after one frame, nil input handlers ignore events
type HookFuncs struct {
	Start  func(e *Engine) bool
	Update func(e *Engine, dt float64) bool
	Mouse  func(e *Engine, x, y int, buttons surface.ButtonMask)
	Key    func(e *Engine, ev surface.Event)
}

func (h HookFuncs) OnStart(e *Engine) bool {
	if h.Start == nil {
		return true
	}
	return h.Start(e)
}

func (h HookFuncs) OnUpdate(e *Engine, dt float64) bool {
	if h.Update == nil {
		return false
	}
	return h.Update(e, dt)
}

func (h HookFuncs) OnMouse(e *Engine, x, y int, buttons surface.ButtonMask) {
	if h.Mouse != nil {
		h.Mouse(e, x, y, buttons)
	}
}

func (h HookFuncs) OnKey(e *Engine, ev surface.Event) {
	if h.Key != nil {
		h.Key(e, ev)
	}
}

// State returns the loop state
func (e *Engine) State() State {
	return State(e.state.Load())
}

// Run drives input -> update -> composite -> text -> present until OnUpdate returns false
// Blocks the calling goroutine. The loop runs at most once per engine
func (e *Engine) Run(h Hooks) error {
	if !e.constructed {
		return ErrNotConstructed
	}
	if !e.entered.CompareAndSwap(false, true) {
		if e.State() == StateStopped {
			return ErrLoopStopped
		}
		return ErrLoopRunning
	}

	if !h.OnStart(e) {
		e.entered.Store(false)
		Logger().Warn("start hook aborted")
		return ErrStartAborted
	}

	e.state.Store(int32(StateRunning))
	Logger().Info("loop started", "budget", e.FrameBudget())

	frames := 0
	delta := 0.0
	before := e.clock.Now()
	for {
		e.dispatchInput(h)
		running := h.OnUpdate(e, delta)
		e.composite()
		drained := e.drainText()
		e.surf.Show()

		after := e.clock.Now()
		work := after.Sub(before)
		if budget := e.FrameBudget(); work < budget {
			e.clock.Sleep(budget - work)
		}
		before = e.clock.Now()
		frame := work + before.Sub(after)

		delta = frame.Seconds()
		e.elapsed.Add(delta)
		frames++
		e.metrics.record(frame, work, drained, e.pairs.Len())

		if !running {
			break
		}
	}

	e.state.Store(int32(StateStopped))
	if !e.texts.Empty() {
		// Producers can outlive the loop; their runs will never be painted
		Logger().Debug("discarding queued text", "count", e.texts.Len())
		e.texts.Clear()
	}
	Logger().Info("loop stopped", "frames", frames, "elapsed", e.Elapsed())
	return nil
}
