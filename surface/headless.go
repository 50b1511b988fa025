package surface

import (
	"fmt"
	"sync"
)

// HeadlessCell is one recorded glyph cell
type HeadlessCell struct {
	Rune rune
	Pair PairID
}

// Headless is an in-memory Surface with a fixed size
// It records every pair registration and glyph write, and replays injected events
// Safe for concurrent use: events may be injected from any goroutine
type Headless struct {
	mu sync.Mutex

	cols, rows int
	colors     int
	capacity   int

	cells   []HeadlessCell
	pairs   map[PairID][2]Color
	defines int
	shows   int
	writes  int
	events  []Event

	cursorVisible bool
	initialized   bool
	finalized     bool
}

// NewHeadless creates a headless surface with a full 256-color palette
func NewHeadless(cols, rows int) *Headless {
	return NewHeadlessPalette(cols, rows, MaxColors, pairCapacity(MaxColors))
}

// NewHeadlessPalette creates a headless surface with an explicit palette size and pair capacity
func NewHeadlessPalette(cols, rows, colors, capacity int) *Headless {
	if colors > MaxColors {
		colors = MaxColors
	}
	return &Headless{
		cols:          cols,
		rows:          rows,
		colors:        colors,
		capacity:      capacity,
		cells:         make([]HeadlessCell, cols*rows),
		pairs:         make(map[PairID][2]Color),
		cursorVisible: true,
	}
}

// Init implements Surface
func (h *Headless) Init() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.initialized = true
	return nil
}

// Fini implements Surface
func (h *Headless) Fini() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.finalized = true
	h.cursorVisible = true
}

// Size implements Surface
func (h *Headless) Size() (int, int) {
	return h.cols, h.rows
}

// Colors implements Surface
func (h *Headless) Colors() int {
	return h.colors
}

// PairCapacity implements Surface
func (h *Headless) PairCapacity() int {
	return h.capacity
}

// DefinePair implements Surface
func (h *Headless) DefinePair(id PairID, fg, bg Color) error {
	if id <= 0 || int(id) >= h.capacity {
		return fmt.Errorf("%w: %d (capacity %d)", ErrPairRange, id, h.capacity)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pairs[id] = [2]Color{fg, bg}
	h.defines++
	return nil
}

// SetContent implements Surface; out-of-range cells are ignored
func (h *Headless) SetContent(col, row int, r rune, pair PairID) {
	if col < 0 || col >= h.cols || row < 0 || row >= h.rows {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cells[row*h.cols+col] = HeadlessCell{Rune: r, Pair: pair}
	h.writes++
}

// Fill implements Surface
func (h *Headless) Fill(r rune, pair PairID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := range h.cells {
		h.cells[i] = HeadlessCell{Rune: r, Pair: pair}
	}
}

// SetCursorVisible implements Surface
func (h *Headless) SetCursorVisible(visible bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cursorVisible = visible
}

// Show implements Surface
func (h *Headless) Show() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.shows++
}

// PollEvent implements Surface
func (h *Headless) PollEvent() (Event, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.events) == 0 {
		return Event{}, false
	}
	ev := h.events[0]
	h.events = h.events[1:]
	return ev, true
}

// ===== TEST / INSPECTION API =====

// Inject queues events returned by subsequent PollEvent calls
func (h *Headless) Inject(events ...Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, events...)
}

// Pending returns the number of queued events
func (h *Headless) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.events)
}

// Cell returns the glyph and resolved colors at a cell
// ok is false for out-of-range cells or cells written with an unregistered pair
func (h *Headless) Cell(col, row int) (r rune, fg, bg Color, ok bool) {
	if col < 0 || col >= h.cols || row < 0 || row >= h.rows {
		return 0, 0, 0, false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	c := h.cells[row*h.cols+col]
	p, defined := h.pairs[c.Pair]
	return c.Rune, p[0], p[1], defined
}

// Pair returns the colors registered for id
func (h *Headless) Pair(id PairID) (fg, bg Color, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	p, ok := h.pairs[id]
	return p[0], p[1], ok
}

// DefineCount returns the number of DefinePair calls
func (h *Headless) DefineCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.defines
}

// WriteCount returns the number of in-range SetContent calls
func (h *Headless) WriteCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.writes
}

// ShowCount returns the number of Show calls
func (h *Headless) ShowCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.shows
}

// CursorVisible reports the last requested cursor visibility
func (h *Headless) CursorVisible() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursorVisible
}

// Finalized reports whether Fini was called
func (h *Headless) Finalized() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.finalized
}
