package surface

import (
	"errors"
	"testing"
)

func TestHeadlessDefinePairRange(t *testing.T) {
	h := NewHeadlessPalette(4, 4, 8, 65)

	if err := h.DefinePair(0, Red, Blue); !errors.Is(err, ErrPairRange) {
		t.Errorf("pair 0: expected ErrPairRange, got %v", err)
	}
	if err := h.DefinePair(65, Red, Blue); !errors.Is(err, ErrPairRange) {
		t.Errorf("pair 65: expected ErrPairRange, got %v", err)
	}
	if err := h.DefinePair(64, Red, Blue); err != nil {
		t.Fatalf("pair 64: unexpected error %v", err)
	}

	fg, bg, ok := h.Pair(64)
	if !ok || fg != Red || bg != Blue {
		t.Errorf("Pair(64): Expected (%d, %d, true), got (%d, %d, %v)", Red, Blue, fg, bg, ok)
	}
	if h.DefineCount() != 1 {
		t.Errorf("expected 1 define, got %d", h.DefineCount())
	}
}

func TestHeadlessSetContentBounds(t *testing.T) {
	h := NewHeadless(3, 2)
	h.DefinePair(5, Green, Black)

	h.SetContent(2, 1, 'x', 5)
	h.SetContent(-1, 0, 'y', 5)
	h.SetContent(3, 0, 'y', 5)
	h.SetContent(0, 2, 'y', 5)

	if h.WriteCount() != 1 {
		t.Errorf("expected 1 in-range write, got %d", h.WriteCount())
	}

	r, fg, bg, ok := h.Cell(2, 1)
	if !ok || r != 'x' || fg != Green || bg != Black {
		t.Errorf("Cell(2,1) = (%q, %d, %d, %v)", r, fg, bg, ok)
	}
	if _, _, _, ok := h.Cell(3, 0); ok {
		t.Error("out-of-range cell reported ok")
	}
}

func TestHeadlessFill(t *testing.T) {
	h := NewHeadless(4, 3)
	h.DefinePair(9, Black, Cyan)
	h.Fill(' ', 9)

	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			r, _, bg, ok := h.Cell(col, row)
			if !ok || r != ' ' || bg != Cyan {
				t.Fatalf("cell (%d,%d) not filled: %q %d %v", col, row, r, bg, ok)
			}
		}
	}
}

func TestHeadlessEventsFIFO(t *testing.T) {
	h := NewHeadless(10, 10)
	h.Inject(
		Event{Type: EventKey, Key: KeyRune, Rune: 'a'},
		Event{Type: EventMouse, X: 3, Y: 4, Buttons: ButtonLeft},
	)

	if h.Pending() != 2 {
		t.Fatalf("expected 2 pending, got %d", h.Pending())
	}

	ev, ok := h.PollEvent()
	if !ok || ev.Rune != 'a' {
		t.Errorf("first event = %+v, %v", ev, ok)
	}
	ev, ok = h.PollEvent()
	if !ok || ev.Type != EventMouse || ev.X != 3 || ev.Y != 4 {
		t.Errorf("second event = %+v, %v", ev, ok)
	}
	if _, ok := h.PollEvent(); ok {
		t.Error("expected empty queue")
	}
}

func TestHeadlessLifecycle(t *testing.T) {
	h := NewHeadless(2, 2)
	if err := h.Init(); err != nil {
		t.Fatal(err)
	}
	h.SetCursorVisible(false)
	if h.CursorVisible() {
		t.Error("cursor should be hidden")
	}
	h.Show()
	h.Show()
	if h.ShowCount() != 2 {
		t.Errorf("expected 2 shows, got %d", h.ShowCount())
	}

	h.Fini()
	if !h.Finalized() {
		t.Error("expected finalized")
	}
	if !h.CursorVisible() {
		t.Error("Fini should restore the cursor")
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyEscape, "Esc"},
		{KeyF5, "F5"},
		{KeyCtrlC, "Ctrl+C"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String(): Expected %q, got %q", tt.key, tt.want, got)
		}
	}
}
