package surface

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// TcellSurface backs Surface with a tcell.Screen
// Pairs resolve to tcell styles over palette colors; input is pumped by a goroutine
// into a buffered channel that PollEvent drains without blocking
type TcellSurface struct {
	screen tcell.Screen
	owned  bool // screen created in Init, not injected

	colors int
	styles map[PairID]tcell.Style

	eventCh chan Event
	doneCh  chan struct{}

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewTcellSurface creates a surface that opens the controlling terminal on Init
func NewTcellSurface() *TcellSurface {
	return &TcellSurface{
		owned:   true,
		styles:  make(map[PairID]tcell.Style),
		eventCh: make(chan Event, 256),
		doneCh:  make(chan struct{}),
	}
}

// NewTcellSurfaceFromScreen wraps an existing, uninitialized screen
// (e.g. tcell.NewSimulationScreen)
func NewTcellSurfaceFromScreen(screen tcell.Screen) *TcellSurface {
	s := NewTcellSurface()
	s.screen = screen
	s.owned = false
	return s
}

// Screen returns the wrapped tcell screen, nil before Init for owned surfaces
func (s *TcellSurface) Screen() tcell.Screen {
	return s.screen
}

// Init implements Surface
func (s *TcellSurface) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if s.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("tcell screen: %w", err)
		}
		s.screen = screen
	}

	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}

	s.colors = clampColors(s.screen.Colors())
	s.screen.EnableMouse(tcell.MouseMotionEvents)
	s.screen.HideCursor()
	s.screen.Clear()

	go s.pollLoop()

	s.initialized = true
	return nil
}

// pollLoop translates tcell events until the screen is finalized
func (s *TcellSurface) pollLoop() {
	defer close(s.doneCh)

	for {
		tev := s.screen.PollEvent()
		if tev == nil {
			// Fini closes the event source
			return
		}

		ev, ok := translateTcellEvent(tev)
		if !ok {
			continue
		}

		select {
		case s.eventCh <- ev:
		default:
			// Channel full, drop
		}
	}
}

// Fini implements Surface
func (s *TcellSurface) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}

	s.screen.DisableMouse()
	s.screen.ShowCursor(0, 0)
	s.screen.Fini()
	<-s.doneCh

	s.finalized = true
}

// Size implements Surface
func (s *TcellSurface) Size() (int, int) {
	if s.screen == nil {
		return 0, 0
	}
	return s.screen.Size()
}

// Colors implements Surface
func (s *TcellSurface) Colors() int {
	return s.colors
}

// PairCapacity implements Surface
func (s *TcellSurface) PairCapacity() int {
	return pairCapacity(s.colors)
}

// DefinePair implements Surface
func (s *TcellSurface) DefinePair(id PairID, fg, bg Color) error {
	if id <= 0 || int(id) >= s.PairCapacity() {
		return fmt.Errorf("%w: %d (capacity %d)", ErrPairRange, id, s.PairCapacity())
	}
	s.styles[id] = tcell.StyleDefault.
		Foreground(tcell.PaletteColor(int(fg))).
		Background(tcell.PaletteColor(int(bg)))
	return nil
}

// SetContent implements Surface
func (s *TcellSurface) SetContent(col, row int, r rune, pair PairID) {
	s.screen.SetContent(col, row, r, nil, s.style(pair))
}

// Fill implements Surface
func (s *TcellSurface) Fill(r rune, pair PairID) {
	s.screen.Fill(r, s.style(pair))
}

// style returns the registered style, tcell default for pair 0 or unknown ids
func (s *TcellSurface) style(pair PairID) tcell.Style {
	if st, ok := s.styles[pair]; ok {
		return st
	}
	return tcell.StyleDefault
}

// SetCursorVisible implements Surface
func (s *TcellSurface) SetCursorVisible(visible bool) {
	if visible {
		s.screen.ShowCursor(0, 0)
	} else {
		s.screen.HideCursor()
	}
}

// Show implements Surface
func (s *TcellSurface) Show() {
	s.screen.Show()
}

// PollEvent implements Surface
func (s *TcellSurface) PollEvent() (Event, bool) {
	select {
	case ev := <-s.eventCh:
		return ev, true
	default:
		return Event{}, false
	}
}

// clampColors maps a reported color count onto the palette range the engine addresses
func clampColors(n int) int {
	switch {
	case n > MaxColors:
		return MaxColors
	case n < 2:
		return 2
	default:
		return n
	}
}

// translateTcellEvent converts a tcell event, ok is false for unsupported events
func translateTcellEvent(tev tcell.Event) (Event, bool) {
	switch e := tev.(type) {
	case *tcell.EventKey:
		ev := Event{Type: EventKey, Mod: translateTcellMod(e.Modifiers())}
		ev.Key, ev.Rune = translateTcellKey(e.Key(), e.Rune())
		return ev, ev.Key != KeyNone
	case *tcell.EventMouse:
		x, y := e.Position()
		return Event{
			Type:    EventMouse,
			X:       x,
			Y:       y,
			Buttons: translateTcellButtons(e.Buttons()),
			Mod:     translateTcellMod(e.Modifiers()),
		}, true
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, X: w, Y: h}, true
	}
	return Event{}, false
}

func translateTcellKey(k tcell.Key, r rune) (Key, rune) {
	switch k {
	case tcell.KeyRune:
		return KeyRune, r
	case tcell.KeyEscape:
		return KeyEscape, 0
	case tcell.KeyEnter:
		return KeyEnter, 0
	case tcell.KeyTab:
		return KeyTab, 0
	case tcell.KeyBacktab:
		return KeyBacktab, 0
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace, 0
	case tcell.KeyDelete:
		return KeyDelete, 0
	case tcell.KeyUp:
		return KeyUp, 0
	case tcell.KeyDown:
		return KeyDown, 0
	case tcell.KeyLeft:
		return KeyLeft, 0
	case tcell.KeyRight:
		return KeyRight, 0
	case tcell.KeyHome:
		return KeyHome, 0
	case tcell.KeyEnd:
		return KeyEnd, 0
	case tcell.KeyPgUp:
		return KeyPageUp, 0
	case tcell.KeyPgDn:
		return KeyPageDown, 0
	case tcell.KeyInsert:
		return KeyInsert, 0
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return KeyF1 + Key(k-tcell.KeyF1), 0
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return KeyCtrlA + Key(k-tcell.KeyCtrlA), 0
	}
	return KeyNone, 0
}

func translateTcellMod(m tcell.ModMask) Modifier {
	var mod Modifier
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	return mod
}

func translateTcellButtons(b tcell.ButtonMask) ButtonMask {
	var mask ButtonMask
	if b&tcell.ButtonPrimary != 0 {
		mask |= ButtonLeft
	}
	if b&tcell.ButtonMiddle != 0 {
		mask |= ButtonMiddle
	}
	if b&tcell.ButtonSecondary != 0 {
		mask |= ButtonRight
	}
	if b&tcell.WheelUp != 0 {
		mask |= WheelUp
	}
	if b&tcell.WheelDown != 0 {
		mask |= WheelDown
	}
	if b&tcell.WheelLeft != 0 {
		mask |= WheelLeft
	}
	if b&tcell.WheelRight != 0 {
		mask |= WheelRight
	}
	return mask
}
