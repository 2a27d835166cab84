package terminal

import "fmt"

// keyToName maps Key constants to canonical string names
var keyToName = map[Key]string{
	KeyUnknown:   "unknown",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyNewline:   "newline",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeySpace:     "space",
	KeyDelete:    "delete",

	KeyUp:    "up",
	KeyDown:  "down",
	KeyLeft:  "left",
	KeyRight: "right",

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
}

// String returns the canonical name, the quoted character for printable keys,
// or a hex code for other control bytes
func (k Key) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	if k.IsRune() {
		return fmt.Sprintf("'%c'", rune(k))
	}
	return fmt.Sprintf("0x%02X", uint16(k))
}
