package terminal

// Key is a decoded key code. Values below 256 are the raw input byte;
// named keys without a single-byte encoding start at KeyUp.
type Key uint16

const (
	KeyUnknown   Key = 0
	KeyBackspace Key = 8
	KeyTab       Key = 9
	KeyNewline   Key = 10 // Enter after ICRNL translation
	KeyEnter     Key = 13
	KeyEscape    Key = 27
	KeySpace     Key = 32
	KeyDelete    Key = 127
)

// Navigation and function keys
const (
	KeyUp Key = 256 + iota
	KeyDown
	KeyLeft
	KeyRight
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
)

// IsRune reports whether the key is a printable ASCII character
func (k Key) IsRune() bool {
	return k >= 0x20 && k < 0x7f
}

// Rune returns the key as a rune; only meaningful when IsRune is true
func (k Key) Rune() rune {
	return rune(k)
}

// IsEnter reports whether the key submits, covering both CR and LF
func (k Key) IsEnter() bool {
	return k == KeyEnter || k == KeyNewline
}

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
)

// Event represents a terminal input event
type Event struct {
	Type EventType
	Key  Key
}
