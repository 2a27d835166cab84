package terminal

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout is returned by WaitEvent when no input arrived in time
	ErrTimeout = errors.New("terminal: wait timed out")

	// ErrDecode is returned when input could not be read
	ErrDecode = errors.New("terminal: event read failed")
)

// maxEventBytes bounds a single read; an arrow key is ESC '[' X
const maxEventBytes = 3

// Decode turns one read's worth of input into a key event.
// A single byte is its own key code, ESC '[' A-D are the arrows, and every
// other shape decodes to KeyUnknown. An empty read is ErrDecode.
func Decode(p []byte) (Event, error) {
	switch len(p) {
	case 0:
		return Event{}, fmt.Errorf("%w: empty read", ErrDecode)
	case 1:
		return Event{Type: EventKey, Key: Key(p[0])}, nil
	case 3:
		if p[0] == 0x1b && p[1] == '[' {
			return Event{Type: EventKey, Key: arrowKey(p[2])}, nil
		}
	}
	return Event{Type: EventKey, Key: KeyUnknown}, nil
}

func arrowKey(b byte) Key {
	switch b {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	default:
		return KeyUnknown
	}
}
