package surface

import (
	"bufio"
	"io"
)

// Pre-allocated ANSI sequences
var (
	csi     = []byte("\x1b[")
	csiSGR0 = []byte("\x1b[0m")
	csiRIS  = []byte("\x1bc")

	csiClear      = []byte("\x1b[2J\x1b[H")
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// ?7l keeps the cursor at the right margin so the bottom-right cell does not scroll
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")

	csiDefaultColors = []byte("\x1b[39;49m")

	// Any-event tracking with SGR extended coordinates
	csiMouseOn  = []byte("\x1b[?1003h\x1b[?1006h")
	csiMouseOff = []byte("\x1b[?1006l\x1b[?1003l")
)

// writeInt writes a non-negative integer without allocation
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	w.Write(buf[i:])
}

// writeCursorPos writes a cursor positioning sequence (0-indexed input)
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csi)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}

// writePairColors writes a combined 256-color SGR for a pair
func writePairColors(w *bufio.Writer, fg, bg Color) {
	w.Write(csi)
	w.WriteString("38;5;")
	writeInt(w, int(fg))
	w.WriteString(";48;5;")
	writeInt(w, int(bg))
	w.WriteByte('m')
}

// EmergencyReset attempts to restore the terminal to a sane state
// Call from panic recovery when Fini cannot run normally
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseOff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if s, ok := w.(interface{ Sync() error }); ok {
		s.Sync()
	}

	// Escape sequences alone do not restore termios
	resetTerminalMode()
}
