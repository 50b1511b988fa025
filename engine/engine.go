// Package engine renders a logical pixel canvas onto a character-cell surface
//
// Two vertically stacked pixels share one glyph cell: the lower-half block '▄' shows the lower
// pixel as foreground and the upper pixel as background. The engine owns the pixel buffer,
// the attribute pair cache, the deferred text queue, input dispatch, and the frame loop.
//
// Threading: Run and every drawing method except DrawString belong to the loop goroutine.
// DrawString, SetMaxFPS, Elapsed, and State are safe from any goroutine.
package engine

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/halfblock/queue"
	"github.com/lixenwraith/halfblock/status"
	"github.com/lixenwraith/halfblock/surface"
)

// DefaultMaxFPS is the frame cap until SetMaxFPS is called
const DefaultMaxFPS = 60

// Geometry is the canvas placement fixed at construction
// Width and Height are logical pixels; X is the surface column, Y the logical pixel row
// of the canvas origin (surface row Y/2)
type Geometry struct {
	Width     int
	Height    int
	X         int
	Y         int
	TopOdd    bool // first pixel row is the lower half of its glyph row
	BottomOdd bool // last pixel row is the upper half of its glyph row
}

// Rows returns the number of surface rows the canvas occupies
func (g Geometry) Rows() int {
	rows := g.Height / 2
	if g.TopOdd || g.BottomOdd {
		rows++
	}
	return rows
}

// Engine is a half-block pixel canvas bound to one surface
type Engine struct {
	surf  surface.Surface
	pairs *PairCache
	buf   *Buffer
	geom  Geometry
	win   window

	constructed bool
	outColor    surface.Color

	texts *queue.Queue[DeferredText]

	clock   Clock
	budget  atomic.Int64 // per-frame nanoseconds, 0 = uncapped
	state   atomic.Int32
	entered atomic.Bool
	elapsed status.AtomicFloat

	errMu  sync.Mutex
	errors []string

	reg     *status.Registry
	metrics metrics
}

// Option configures an Engine
type Option func(*Engine)

// WithClock replaces the system clock used for frame pacing
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithRegistry publishes frame metrics into r
func WithRegistry(r *status.Registry) Option {
	return func(e *Engine) { e.reg = r }
}

// WithMaxFPS sets the initial frame cap
func WithMaxFPS(fps int) Option {
	return func(e *Engine) { e.SetMaxFPS(fps) }
}

// New binds an engine to an initialized surface. Construct must succeed before Run
func New(s surface.Surface, opts ...Option) *Engine {
	e := &Engine{
		surf:     s,
		pairs:    NewPairCache(s),
		buf:      NewBuffer(0, 0),
		outColor: surface.Black,
		texts:    queue.New[DeferredText](),
		clock:    NewRealClock(),
	}
	e.SetMaxFPS(DefaultMaxFPS)

	for _, opt := range opts {
		opt(e)
	}

	if e.reg == nil {
		e.reg = status.NewRegistry()
	}
	e.metrics = newMetrics(e.reg)
	return e
}

// Construct sizes and places the canvas on the surface
// width/height are logical pixels, negative = full surface; x/y negative = centered;
// square forces equal sides using the smaller one.
// On failure the message is also kept in Errors and the engine stays unusable
func (e *Engine) Construct(width, height, x, y int, square bool) error {
	if e.constructed {
		return e.fail(ErrAlreadyConstructed, "construct called twice")
	}

	cols, rows := e.surf.Size()
	if width > cols || height > rows*2 {
		return e.fail(ErrCanvasTooLarge, fmt.Sprintf(
			"requested %dx%d exceeds surface %dx%d", width, height, cols, rows*2))
	}

	w, h := width, height
	if w < 0 {
		w = cols
	}
	if h < 0 {
		h = rows * 2
	}
	if square {
		w = min(w, h)
		h = w
	}
	if x < 0 {
		x = (cols - w) / 2
	}
	if y < 0 {
		y = (rows*2 - h) / 2
	}

	g := Geometry{
		Width:     w,
		Height:    h,
		X:         x,
		Y:         y,
		TopOdd:    y&1 == 1,
		BottomOdd: (y+h)&1 == 1,
	}
	if x+w > cols || y/2+g.Rows() > rows {
		return e.fail(ErrCanvasTooLarge, fmt.Sprintf(
			"canvas %dx%d at (%d,%d) extends past surface %dx%d", w, h, x, y, cols, rows*2))
	}

	e.geom = g
	e.win = window{surf: e.surf, left: x, top: y / 2, cols: w, rows: g.Rows()}
	e.buf = NewBuffer(w, h)
	e.buf.Clear(surface.Black)
	e.constructed = true

	Logger().Info("canvas constructed",
		"width", w, "height", h, "x", x, "y", y,
		"top_odd", g.TopOdd, "bottom_odd", g.BottomOdd)
	return nil
}

// fail records a construction error message and returns the wrapped error
func (e *Engine) fail(err error, msg string) error {
	full := fmt.Errorf("%w: %s", err, msg)

	e.errMu.Lock()
	e.errors = append(e.errors, "[ERROR] engine.Construct: "+full.Error())
	e.errMu.Unlock()

	Logger().Warn("construct failed", "error", full)
	return full
}

// Errors returns the accumulated construction error messages
func (e *Engine) Errors() []string {
	e.errMu.Lock()
	defer e.errMu.Unlock()
	out := make([]string, len(e.errors))
	copy(out, e.errors)
	return out
}

// Constructed reports whether Construct succeeded
func (e *Engine) Constructed() bool {
	return e.constructed
}

// Geometry returns the canvas placement
func (e *Engine) Geometry() Geometry {
	return e.geom
}

// SetMaxFPS sets the frame cap; fps <= 0 disables pacing
func (e *Engine) SetMaxFPS(fps int) {
	if fps <= 0 {
		e.budget.Store(0)
		return
	}
	e.budget.Store(int64(time.Second / time.Duration(fps)))
}

// FrameBudget returns the per-frame time budget
func (e *Engine) FrameBudget() time.Duration {
	return time.Duration(e.budget.Load())
}

// SetCursorVisible shows or hides the surface cursor
func (e *Engine) SetCursorVisible(visible bool) {
	e.surf.SetCursorVisible(visible)
}

// Clear resets the canvas to an undrawn background color
func (e *Engine) Clear(c surface.Color) {
	e.buf.Clear(c)
}

// ClearOutside sets the color around the canvas, used for odd edge rows, and paints
// the whole surface with it
func (e *Engine) ClearOutside(c surface.Color) {
	e.outColor = c
	e.surf.Fill(' ', e.pairs.Resolve(surface.Black, c))
	e.surf.Show()
}

// OutsideColor returns the color paired with odd edge rows
func (e *Engine) OutsideColor() surface.Color {
	return e.outColor
}

// Width returns the canvas width in logical pixels
func (e *Engine) Width() int { return e.geom.Width }

// Height returns the canvas height in logical pixels
func (e *Engine) Height() int { return e.geom.Height }

// ScreenWidth returns the surface width in logical pixels
func (e *Engine) ScreenWidth() int {
	cols, _ := e.surf.Size()
	return cols
}

// ScreenHeight returns the surface height in logical pixels
func (e *Engine) ScreenHeight() int {
	_, rows := e.surf.Size()
	return rows * 2
}

// Elapsed returns seconds accumulated by the loop since it entered Running
func (e *Engine) Elapsed() float64 {
	return e.elapsed.Load()
}

// PollEvent reads one pending surface event without blocking
func (e *Engine) PollEvent() (surface.Event, bool) {
	return e.surf.PollEvent()
}

// Buffer exposes the pixel buffer for direct reads
func (e *Engine) Buffer() *Buffer {
	return e.buf
}

// Pairs exposes the attribute pair cache
func (e *Engine) Pairs() *PairCache {
	return e.pairs
}

// Registry returns the metrics registry the engine publishes into
func (e *Engine) Registry() *status.Registry {
	return e.reg
}
