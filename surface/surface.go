// Package surface defines the character-cell display contract the engine renders into,
// and provides its backings.
//
// A Surface is a grid of glyph cells addressed by column and row. Colors are palette
// indices; a cell is written with a registered attribute pair (foreground, background)
// addressed by a small integer id, mirroring curses-style color pairs.
//
// Backings:
//   - TcellSurface: gdamore/tcell screen
//   - ANSISurface: raw-mode terminal driven with direct ANSI sequences
//   - Headless: in-memory grid for tests and offscreen runs
package surface

import "errors"

// Color is a palette index (0..Colors()-1)
type Color uint8

// Standard ANSI palette indices
const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// PairID addresses a registered (foreground, background) pair
// 0 is the surface default pair and is never registered
type PairID int

// MaxColors caps the palette size reported by any backing
const MaxColors = 256

var (
	ErrNotTerminal    = errors.New("surface: not a terminal")
	ErrNotInitialized = errors.New("surface: not initialized")
	ErrPairRange      = errors.New("surface: pair id out of range")
)

// Surface is the terminal-control capability consumed by the engine
type Surface interface {
	// Init enters raw, non-blocking, keypad-aware mode and detects color support
	Init() error

	// Fini restores the terminal and releases cursor control. Safe to call multiple times
	Fini()

	// Size returns the addressable columns and rows
	Size() (cols, rows int)

	// Colors returns the palette size, at most MaxColors
	Colors() int

	// PairCapacity returns the exclusive upper bound of definable pair ids
	PairCapacity() int

	// DefinePair registers a pair once; later addressed by id when writing
	DefinePair(id PairID, fg, bg Color) error

	// SetContent writes one glyph with a registered pair at a cell
	SetContent(col, row int, r rune, pair PairID)

	// Fill writes the same glyph and pair to every cell
	Fill(r rune, pair PairID)

	// SetCursorVisible shows or hides the hardware cursor
	SetCursorVisible(visible bool)

	// Show presents pending writes
	Show()

	// PollEvent returns the next pending event without blocking
	// ok is false when no input is pending
	PollEvent() (ev Event, ok bool)
}

// pairCapacity is the pair namespace size for a palette: colors²+1
func pairCapacity(colors int) int {
	return colors*colors + 1
}
