package terminal

import "strings"

// KeyType identifies the kind of a decoded keystroke
type KeyType uint8

const (
	KeyCharacter KeyType = iota // Literal character (check KeyStroke.Char)

	// Control keys
	KeyLF
	KeyCR
	KeyTab
	KeyBackspace
	KeyEscape
	KeyDelete
	KeyEOF // Input stream closed

	// Navigation
	KeyHome
	KeyEnd
	KeyInsert
	KeyPageUp
	KeyPageDown
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight

	// Function keys
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

	KeyReverseTab // Shift+Tab
)

// keyTypeNames maps KeyType constants to canonical string names
var keyTypeNames = map[KeyType]string{
	KeyCharacter: "character",
	KeyLF:        "lf",
	KeyCR:        "cr",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyEscape:    "escape",
	KeyDelete:    "delete",
	KeyEOF:       "eof",

	KeyHome:       "home",
	KeyEnd:        "end",
	KeyInsert:     "insert",
	KeyPageUp:     "page_up",
	KeyPageDown:   "page_down",
	KeyArrowUp:    "arrow_up",
	KeyArrowDown:  "arrow_down",
	KeyArrowLeft:  "arrow_left",
	KeyArrowRight: "arrow_right",

	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",
	KeyF11: "f11",
	KeyF12: "f12",

	KeyReverseTab: "reverse_tab",
}

// nameToKeyType is the reverse lookup, built from keyTypeNames
var nameToKeyType map[string]KeyType

func init() {
	nameToKeyType = make(map[string]KeyType, len(keyTypeNames))
	for k, v := range keyTypeNames {
		nameToKeyType[v] = k
	}
	// Aliases
	nameToKeyType["enter"] = KeyCR
	nameToKeyType["shift_tab"] = KeyReverseTab
	nameToKeyType["backtab"] = KeyReverseTab
}

// String returns the canonical name of the key type
func (k KeyType) String() string {
	if name, ok := keyTypeNames[k]; ok {
		return name
	}
	return "unknown"
}

// KeyTypeByName resolves a canonical name to a KeyType
// Returns false if name is unknown
func KeyTypeByName(name string) (KeyType, bool) {
	k, ok := nameToKeyType[strings.ToLower(name)]
	return k, ok
}

// KeyStroke is a single decoded key event.
// Char is meaningful only when Type is KeyCharacter.
type KeyStroke struct {
	Char  rune
	Type  KeyType
	Ctrl  bool
	Alt   bool
	Shift bool
}

// String renders the stroke as "ctrl+alt+shift+<key>"
func (k KeyStroke) String() string {
	var sb strings.Builder
	if k.Ctrl {
		sb.WriteString("ctrl+")
	}
	if k.Alt {
		sb.WriteString("alt+")
	}
	if k.Shift {
		sb.WriteString("shift+")
	}
	if k.Type == KeyCharacter {
		switch k.Char {
		case ' ':
			sb.WriteString("space")
		default:
			sb.WriteRune(k.Char)
		}
		return sb.String()
	}
	sb.WriteString(k.Type.String())
	return sb.String()
}

// IsChar reports whether the stroke is the literal character c with no modifiers
func (k KeyStroke) IsChar(c rune) bool {
	return k.Type == KeyCharacter && k.Char == c && !k.Ctrl && !k.Alt && !k.Shift
}

// IsCtrl reports whether the stroke is Ctrl+c without other modifiers
func (k KeyStroke) IsCtrl(c rune) bool {
	return k.Type == KeyCharacter && k.Char == c && k.Ctrl && !k.Alt && !k.Shift
}
