package surface

import "unicode/utf8"

// csiTildeKeys maps the numeric parameter of "ESC [ n ~" sequences
var csiTildeKeys = map[int]Key{
	1:  KeyHome,
	2:  KeyInsert,
	3:  KeyDelete,
	4:  KeyEnd,
	5:  KeyPageUp,
	6:  KeyPageDown,
	7:  KeyHome,
	8:  KeyEnd,
	11: KeyF1,
	12: KeyF2,
	13: KeyF3,
	14: KeyF4,
	15: KeyF5,
	17: KeyF6,
	18: KeyF7,
	19: KeyF8,
	20: KeyF9,
	21: KeyF10,
	23: KeyF11,
	24: KeyF12,
}

// finalKeys maps the final byte of CSI/SS3 cursor and function key sequences
var finalKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
	'Z': KeyBacktab,
}

// maxCSILen bounds the scan for a CSI terminator before the sequence is discarded
const maxCSILen = 32

// parseInput decodes raw terminal bytes, calling emit per event
// Returns bytes consumed; an incomplete trailing sequence is left unconsumed
func parseInput(data []byte, emit func(Event)) int {
	i := 0
	for i < len(data) {
		b := data[i]

		switch {
		case b == 0x1b:
			if i+1 >= len(data) {
				// Lone ESC: caller decides after the escape timeout
				return i
			}
			n, ev, ok := parseEscape(data[i:])
			if n == 0 {
				return i
			}
			if ok {
				emit(ev)
			}
			i += n

		case b >= 0x20 && b < 0x7f:
			emit(Event{Type: EventKey, Key: KeyRune, Rune: rune(b)})
			i++

		case b == 0x7f:
			emit(Event{Type: EventKey, Key: KeyBackspace})
			i++

		case b < 0x20:
			if ev, ok := controlEvent(b); ok {
				emit(ev)
			}
			i++

		default:
			if !utf8.FullRune(data[i:]) {
				return i
			}
			r, size := utf8.DecodeRune(data[i:])
			if r != utf8.RuneError {
				emit(Event{Type: EventKey, Key: KeyRune, Rune: r})
			}
			i += size
		}
	}
	return i
}

// controlEvent maps C0 control bytes
func controlEvent(b byte) (Event, bool) {
	switch b {
	case 0x08:
		return Event{Type: EventKey, Key: KeyBackspace}, true
	case 0x09:
		return Event{Type: EventKey, Key: KeyTab}, true
	case 0x0a, 0x0d:
		return Event{Type: EventKey, Key: KeyEnter}, true
	case 0x1b:
		return Event{Type: EventKey, Key: KeyEscape}, true
	}
	if b >= 0x01 && b <= 0x1a {
		return Event{Type: EventKey, Key: KeyCtrlA + Key(b-0x01), Mod: ModCtrl}, true
	}
	return Event{}, false
}

// parseEscape decodes a sequence starting with ESC
// n == 0 means incomplete; ok == false means consumed but not reportable
func parseEscape(data []byte) (n int, ev Event, ok bool) {
	switch data[1] {
	case '[':
		return parseCSI(data)
	case 'O':
		if len(data) < 3 {
			return 0, Event{}, false
		}
		if k, found := finalKeys[data[2]]; found {
			return 3, Event{Type: EventKey, Key: k}, true
		}
		return 3, Event{}, false
	case 0x1b:
		return 2, Event{Type: EventKey, Key: KeyEscape, Mod: ModAlt}, true
	}

	// Alt+key
	if data[1] < 0x20 {
		ev, ok := controlEvent(data[1])
		ev.Mod |= ModAlt
		return 2, ev, ok
	}
	if data[1] < 0x7f {
		return 2, Event{Type: EventKey, Key: KeyRune, Rune: rune(data[1]), Mod: ModAlt}, true
	}
	// ESC followed by UTF-8: report ESC, leave the rune for the next pass
	return 1, Event{Type: EventKey, Key: KeyEscape}, true
}

// parseCSI decodes "ESC [ params final"
func parseCSI(data []byte) (int, Event, bool) {
	if len(data) < 3 {
		return 0, Event{}, false
	}
	if data[2] == '<' {
		return parseSGRMouse(data)
	}

	end := 2
	for ; end < len(data); end++ {
		b := data[end]
		if b >= 0x40 && b <= 0x7e {
			break
		}
		if b < 0x20 || end >= maxCSILen {
			// Malformed, drop the introducer
			return 2, Event{}, false
		}
	}
	if end >= len(data) {
		return 0, Event{}, false
	}

	params, valid := parseParams(data[2:end])
	final := data[end]
	n := end + 1
	if !valid {
		return n, Event{}, false
	}

	var ev Event
	ev.Type = EventKey
	if final == '~' {
		if len(params) == 0 {
			return n, Event{}, false
		}
		k, found := csiTildeKeys[params[0]]
		if !found {
			return n, Event{}, false
		}
		ev.Key = k
	} else {
		k, found := finalKeys[final]
		if !found {
			return n, Event{}, false
		}
		ev.Key = k
		if k == KeyBacktab {
			ev.Mod |= ModShift
		}
	}

	// xterm modifier parameter: 1 + (shift|alt<<1|ctrl<<2)
	if len(params) >= 2 && params[1] > 1 {
		ev.Mod |= Modifier(params[1]-1) & (ModShift | ModAlt | ModCtrl)
	}
	return n, ev, true
}

// parseSGRMouse decodes "ESC [ < btn ; x ; y M|m"
func parseSGRMouse(data []byte) (int, Event, bool) {
	end := 3
	for ; end < len(data); end++ {
		if data[end] == 'M' || data[end] == 'm' {
			break
		}
		if end >= maxCSILen {
			return 3, Event{}, false
		}
	}
	if end >= len(data) {
		return 0, Event{}, false
	}

	n := end + 1
	params, valid := parseParams(data[3:end])
	if !valid || len(params) != 3 {
		return n, Event{}, false
	}
	btn, x, y := params[0], params[1], params[2]

	ev := Event{Type: EventMouse, X: x - 1, Y: y - 1}

	if btn&4 != 0 {
		ev.Mod |= ModShift
	}
	if btn&8 != 0 {
		ev.Mod |= ModAlt
	}
	if btn&16 != 0 {
		ev.Mod |= ModCtrl
	}

	released := data[end] == 'm'
	code := btn & 0x03
	switch {
	case btn&64 != 0:
		ev.Buttons = [4]ButtonMask{WheelUp, WheelDown, WheelLeft, WheelRight}[code]
	case released:
		ev.Buttons = ButtonNone
	default:
		ev.Buttons = [4]ButtonMask{ButtonLeft, ButtonMiddle, ButtonRight, ButtonNone}[code]
	}
	return n, ev, true
}

// parseParams splits "n;n;n" into integers; empty fields read as 0
func parseParams(data []byte) ([]int, bool) {
	if len(data) == 0 {
		return nil, true
	}
	params := make([]int, 1, 4)
	for _, b := range data {
		switch {
		case b == ';':
			params = append(params, 0)
		case b >= '0' && b <= '9':
			last := &params[len(params)-1]
			*last = *last*10 + int(b-'0')
			if *last > 9999 {
				return nil, false
			}
		default:
			return nil, false
		}
	}
	return params, true
}
