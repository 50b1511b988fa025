package surface

import (
	"bufio"
	"fmt"
	"io"
	"sync"
	"time"
)

// Backend abstracts the platform terminal device under ANSISurface
type Backend interface {
	io.Writer

	// Init enters raw mode
	Init() error

	// Fini restores the previous terminal mode
	Fini()

	// Size returns the terminal dimensions
	Size() (cols, rows int)

	// Read blocks until input is available, stopCh is closed, or a poll timeout elapses
	// A timeout returns (nil, nil)
	Read(stopCh <-chan struct{}) ([]byte, error)
}

// resizeNotifier is implemented by backends that observe terminal size changes
type resizeNotifier interface {
	SetResizeHandler(handler func(cols, rows int))
}

// escapeTimeout separates a standalone ESC keypress from an escape sequence
const escapeTimeout = 50 * time.Millisecond

// ansiCell is one glyph in the output buffers
type ansiCell struct {
	r    rune
	pair PairID
}

// ansiPair holds registered pair colors
type ansiPair struct {
	fg, bg  Color
	defined bool
}

// ANSISurface drives a raw-mode terminal with direct ANSI sequences
// Output is double-buffered: Show diffs the back buffer against what is on screen
// and emits only changed cells, coalescing color changes across runs
type ANSISurface struct {
	backend Backend
	writer  *bufio.Writer

	cols, rows int
	back       []ansiCell
	front      []ansiCell
	pairs      []ansiPair

	// Emitted style / cursor state for coalescing
	lastPair    PairID
	lastValid   bool
	cursorX     int
	cursorY     int
	cursorValid bool

	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	pending []byte

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewANSISurface creates a surface on the process's controlling terminal
func NewANSISurface() *ANSISurface {
	return NewANSISurfaceWithBackend(newBackend())
}

// NewANSISurfaceWithBackend creates a surface over an explicit backend
func NewANSISurfaceWithBackend(b Backend) *ANSISurface {
	return &ANSISurface{
		backend: b,
		writer:  bufio.NewWriterSize(b, 128*1024),
		pairs:   make([]ansiPair, pairCapacity(MaxColors)),
		eventCh: make(chan Event, 256),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Init implements Surface
func (s *ANSISurface) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := s.backend.Init(); err != nil {
		return fmt.Errorf("ansi backend: %w", err)
	}

	s.cols, s.rows = s.backend.Size()
	size := s.cols * s.rows
	s.back = make([]ansiCell, size)
	s.front = make([]ansiCell, size)
	for i := range s.back {
		s.back[i] = ansiCell{r: ' '}
	}

	w := s.writer
	w.Write(csiAltScreenEnter)
	w.Write(csiCursorHide)
	w.Write(csiAutoWrapOff)
	w.Write(csiMouseOn)
	w.Write(csiSGR0)
	w.Write(csiClear)
	w.Flush()

	// Front buffer now matches the cleared screen
	for i := range s.front {
		s.front[i] = ansiCell{r: ' '}
	}
	s.lastValid = false
	s.cursorValid = false

	go s.readLoop()

	// Size changes are reported, the buffers keep their initial dimensions
	if rn, ok := s.backend.(resizeNotifier); ok {
		rn.SetResizeHandler(func(cols, rows int) {
			s.send(Event{Type: EventResize, X: cols, Y: rows})
		})
	}

	s.initialized = true
	return nil
}

// Fini implements Surface
func (s *ANSISurface) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}

	close(s.stopCh)
	select {
	case <-s.doneCh:
	case <-time.After(200 * time.Millisecond):
		// Reader stuck in a blocking read, proceed anyway
	}

	w := s.writer
	w.Write(csiMouseOff)
	w.Write(csiSGR0)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiAutoWrapOn)
	w.Flush()

	s.backend.Fini()
	s.finalized = true
}

// Size implements Surface
func (s *ANSISurface) Size() (int, int) {
	if !s.initialized {
		return s.backend.Size()
	}
	return s.cols, s.rows
}

// Colors implements Surface
func (s *ANSISurface) Colors() int {
	return MaxColors
}

// PairCapacity implements Surface
func (s *ANSISurface) PairCapacity() int {
	return len(s.pairs)
}

// DefinePair implements Surface
func (s *ANSISurface) DefinePair(id PairID, fg, bg Color) error {
	if id <= 0 || int(id) >= len(s.pairs) {
		return fmt.Errorf("%w: %d (capacity %d)", ErrPairRange, id, len(s.pairs))
	}
	s.pairs[id] = ansiPair{fg: fg, bg: bg, defined: true}
	return nil
}

// SetContent implements Surface
func (s *ANSISurface) SetContent(col, row int, r rune, pair PairID) {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return
	}
	s.back[row*s.cols+col] = ansiCell{r: r, pair: pair}
}

// Fill implements Surface
func (s *ANSISurface) Fill(r rune, pair PairID) {
	if len(s.back) == 0 {
		return
	}
	s.back[0] = ansiCell{r: r, pair: pair}
	for filled := 1; filled < len(s.back); filled *= 2 {
		copy(s.back[filled:], s.back[:filled])
	}
}

// SetCursorVisible implements Surface
func (s *ANSISurface) SetCursorVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}
	if visible {
		s.writer.Write(csiCursorShow)
	} else {
		s.writer.Write(csiCursorHide)
	}
	s.writer.Flush()
}

// Show implements Surface: writes changed cells only
func (s *ANSISurface) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}

	w := s.writer
	for y := 0; y < s.rows; y++ {
		rowStart := y * s.cols
		x := 0
		for x < s.cols {
			idx := rowStart + x
			if s.back[idx] == s.front[idx] {
				x++
				continue
			}

			if !s.cursorValid || x != s.cursorX || y != s.cursorY {
				writeCursorPos(w, x, y)
				s.cursorX, s.cursorY = x, y
				s.cursorValid = true
			}

			// Contiguous dirty run
			for x < s.cols {
				cidx := rowStart + x
				c := s.back[cidx]
				if c == s.front[cidx] {
					break
				}
				s.writeStyle(w, c.pair)

				r := c.r
				if r == 0 {
					r = ' '
				}
				if r < 0x80 {
					w.WriteByte(byte(r))
				} else {
					w.WriteRune(r)
				}

				s.front[cidx] = c
				s.cursorX++
				x++
			}
		}
	}

	w.Write(csiSGR0)
	s.lastValid = false
	w.Flush()
}

// writeStyle emits a color change only when the pair differs from the last emitted one
func (s *ANSISurface) writeStyle(w *bufio.Writer, pair PairID) {
	if s.lastValid && pair == s.lastPair {
		return
	}
	p := s.pairs[0]
	if int(pair) < len(s.pairs) {
		p = s.pairs[pair]
	}
	if p.defined {
		writePairColors(w, p.fg, p.bg)
	} else {
		w.Write(csiDefaultColors)
	}
	s.lastPair = pair
	s.lastValid = true
}

// PollEvent implements Surface
func (s *ANSISurface) PollEvent() (Event, bool) {
	select {
	case ev := <-s.eventCh:
		return ev, true
	default:
		return Event{}, false
	}
}

// readLoop reads and parses input until stopped
func (s *ANSISurface) readLoop() {
	defer close(s.doneCh)

	var escAt time.Time
	for {
		data, err := s.backend.Read(s.stopCh)
		if err != nil {
			return
		}

		select {
		case <-s.stopCh:
			return
		default:
		}

		if len(data) == 0 {
			// Poll timeout: a lone ESC that has waited long enough is a keypress
			if len(s.pending) == 1 && s.pending[0] == 0x1b && time.Since(escAt) >= escapeTimeout {
				s.send(Event{Type: EventKey, Key: KeyEscape})
				s.pending = s.pending[:0]
			}
			continue
		}

		s.pending = append(s.pending, data...)
		consumed := parseInput(s.pending, s.send)
		n := copy(s.pending, s.pending[consumed:])
		s.pending = s.pending[:n]
		if n == 1 && s.pending[0] == 0x1b {
			escAt = time.Now()
		}
	}
}

// send queues an event without blocking, dropping on overflow
func (s *ANSISurface) send(ev Event) {
	select {
	case s.eventCh <- ev:
	default:
	}
}
