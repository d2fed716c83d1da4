// @focus: #sys { io } #input { keys }
package terminal

const (
	esc = 0x1b
	del = 0x7f

	// maxRun is the lookahead used when reading a key run from input
	maxRun = 7
)

// Modifier bits of an xterm modifier parameter, after subtracting 1
const (
	modShiftBit = 1 << 0
	modAltBit   = 1 << 1
	modCtrlBit  = 1 << 2
)

// Decode turns a run of input runes into at most one keystroke.
// The run is what a single read produced: one key, or one escape sequence.
// Returns false when the run is not a recognizable key; callers discard it.
func Decode(run []rune) (KeyStroke, bool) {
	switch len(run) {
	case 0:
		return KeyStroke{}, false
	case 1:
		return decodeSingle(run[0]), true
	case 2:
		return decodeAlt(run[0], run[1])
	default:
		return decodeSequence(run)
	}
}

// decodeSingle maps one rune to a key
func decodeSingle(c rune) KeyStroke {
	if ks, ok := decodeControl(c); ok {
		return ks
	}
	if c == del {
		return KeyStroke{Type: KeyDelete}
	}
	return KeyStroke{Char: c, Type: KeyCharacter}
}

// decodeControl maps C0 control codes to keys, false for anything >= 32
func decodeControl(c rune) (KeyStroke, bool) {
	if c < 0 || c >= 32 {
		return KeyStroke{}, false
	}

	var ch rune
	switch c {
	case '\n':
		return KeyStroke{Type: KeyLF}, true
	case '\r':
		return KeyStroke{Type: KeyCR}, true
	case '\t':
		return KeyStroke{Type: KeyTab}, true
	case 0x08:
		return KeyStroke{Type: KeyBackspace}, true
	case esc:
		return KeyStroke{Type: KeyEscape}, true
	case 0x00: // Ctrl+Space or Ctrl+@
		ch = ' '
	case 0x1c:
		ch = '\\'
	case 0x1d:
		ch = ']'
	case 0x1e:
		ch = '^'
	case 0x1f:
		ch = '_'
	default:
		// Ctrl+A = 0x01 ... Ctrl+Z = 0x1A
		ch = 96 + c
	}
	return KeyStroke{Char: ch, Type: KeyCharacter, Ctrl: true}, true
}

// decodeAlt handles two-rune runs, which are only meaningful as ESC + key
func decodeAlt(c1, c2 rune) (KeyStroke, bool) {
	if c1 != esc {
		return KeyStroke{}, false
	}
	if ks, ok := decodeControl(c2); ok {
		ks.Alt = true
		return ks, true
	}
	if c2 == del {
		return KeyStroke{Type: KeyDelete, Alt: true}, true
	}
	return KeyStroke{Char: c2, Type: KeyCharacter, Alt: true}, true
}

// seqState is a state of the CSI/SS3 matcher
type seqState uint8

const (
	seqStart seqState = iota
	seqIntro
	seqKeyID
	seqModState
	seqMatch
)

// tildeKeys maps the numeric key-id of ESC [ <id> ~ sequences
var tildeKeys = map[int]KeyType{
	1:  KeyHome,
	2:  KeyInsert,
	3:  KeyDelete,
	4:  KeyEnd,
	5:  KeyPageUp,
	6:  KeyPageDown,
	11: KeyF1,
	12: KeyF2,
	13: KeyF3,
	14: KeyF4,
	15: KeyF5,
	16: KeyF5,
	17: KeyF6,
	18: KeyF7,
	19: KeyF8,
	20: KeyF9,
	21: KeyF10,
	23: KeyF11,
	24: KeyF12,
}

// finalKeys maps the final byte of ESC [ ... X and ESC O X sequences
var finalKeys = map[rune]KeyType{
	'A': KeyArrowUp,
	'B': KeyArrowDown,
	'C': KeyArrowRight,
	'D': KeyArrowLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
	'Z': KeyReverseTab,
}

// decodeSequence runs the escape sequence matcher:
//
//	ESC [ESC] ( '[' | 'O' ) <digits> [ ';' <digits> ] <final>
//
// The whole run must be consumed by exactly one sequence.
func decodeSequence(run []rune) (KeyStroke, bool) {
	state := seqStart
	keyID, modState := 0, 0
	var intro, final rune
	doubleEsc := false

	for _, c := range run {
		switch state {
		case seqStart:
			if c != esc {
				return KeyStroke{}, false
			}
			state = seqIntro

		case seqIntro:
			if c == esc && !doubleEsc {
				doubleEsc = true
				continue
			}
			if c != '[' && c != 'O' {
				return KeyStroke{}, false
			}
			intro = c
			state = seqKeyID

		case seqKeyID:
			switch {
			case c == ';':
				state = seqModState
			case isDigit(c):
				keyID = keyID*10 + int(c-'0')
			default:
				final = c
				state = seqMatch
			}

		case seqModState:
			if isDigit(c) {
				modState = modState*10 + int(c-'0')
			} else {
				final = c
				state = seqMatch
			}

		case seqMatch:
			// Trailing garbage after the final byte
			return KeyStroke{}, false
		}
	}

	if state != seqMatch {
		return KeyStroke{}, false
	}

	mods := modState - 1
	legacyCtrl := false

	var kt KeyType
	var found bool
	if final == '~' {
		kt, found = tildeKeys[keyID]
	} else {
		kt, found = finalKeys[final]
		if intro == 'O' {
			// SS3 arrows are sent for Ctrl+Arrow by some terminals (PuTTY)
			if final >= 'A' && final <= 'D' {
				legacyCtrl = true
			}
			// ESC O R collides with a cursor position report
			if final == 'R' {
				mods = -1
			}
		}
	}
	if !found {
		return KeyStroke{}, false
	}

	ks := KeyStroke{Type: kt}
	if mods >= 0 {
		ks.Ctrl = mods&modCtrlBit != 0
		ks.Alt = mods&modAltBit != 0
		ks.Shift = mods&modShiftBit != 0
	}
	if doubleEsc {
		ks.Alt = true
	}
	if legacyCtrl {
		ks.Ctrl = true
	}
	return ks, true
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
