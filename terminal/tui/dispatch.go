package tui

import "github.com/lixenwraith/gtlib/terminal"

// Dispatch applies a decoded key to the window: arrows and Tab move focus,
// Enter activates, printable keys and Backspace/Delete edit a focused textbox.
// Returns true when the event changed or triggered something.
func Dispatch(win *Window, ev terminal.Event) bool {
	if win == nil || ev.Type != terminal.EventKey {
		return false
	}

	switch ev.Key {
	case terminal.KeyUp, terminal.KeyLeft:
		win.FocusPrev()
		return true
	case terminal.KeyDown, terminal.KeyRight, terminal.KeyTab:
		win.FocusNext()
		return true
	}

	if ev.Key.IsEnter() {
		win.ActivateFocused()
		return true
	}

	focused := win.focused
	if focused == nil {
		return false
	}

	switch {
	case ev.Key.IsRune():
		return focused.insertRune(ev.Key.Rune())
	case ev.Key == terminal.KeyBackspace || ev.Key == terminal.KeyDelete:
		return focused.deleteRune()
	}
	return false
}
