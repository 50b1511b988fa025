package surface

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventMouse
	EventResize
)

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// KeyCtrlA..KeyCtrlZ are contiguous: KeyCtrlA + n for the n-th letter
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

// Modifier is a key/mouse modifier bitmask
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// ButtonMask is the mouse button state reported with a mouse event
// Zero means no button held (motion or release)
type ButtonMask uint16

const (
	ButtonNone   ButtonMask = 0
	ButtonLeft   ButtonMask = 1 << 0
	ButtonMiddle ButtonMask = 1 << 1
	ButtonRight  ButtonMask = 1 << 2
	WheelUp      ButtonMask = 1 << 3
	WheelDown    ButtonMask = 1 << 4
	WheelLeft    ButtonMask = 1 << 5
	WheelRight   ButtonMask = 1 << 6
)

// Event is a single input event
// X, Y are screen cell coordinates for mouse events, Width/Height for resize
type Event struct {
	Type    EventType
	Key     Key
	Rune    rune
	Mod     Modifier
	X, Y    int
	Buttons ButtonMask
}

// String returns a short key name for logs and HUDs
func (k Key) String() string {
	switch {
	case k == KeyNone:
		return "None"
	case k == KeyRune:
		return "Rune"
	case k >= KeyCtrlA && k <= KeyCtrlZ:
		return "Ctrl+" + string(rune('A'+int(k-KeyCtrlA)))
	case k >= KeyF1 && k <= KeyF12:
		n := int(k-KeyF1) + 1
		if n < 10 {
			return "F" + string(rune('0'+n))
		}
		return "F1" + string(rune('0'+n-10))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

var keyNames = map[Key]string{
	KeyEscape:    "Esc",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBacktab:   "Backtab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PgUp",
	KeyPageDown:  "PgDn",
	KeyInsert:    "Insert",
}
