package tui

// Focused returns the focused widget, nil when none
func (win *Window) Focused() *Widget {
	if win == nil {
		return nil
	}
	return win.focused
}

// SetFocus moves focus to w when it belongs to this window and can take focus
func (win *Window) SetFocus(w *Widget) {
	if win == nil || w == nil || w.window != win || !w.canFocus() {
		return
	}
	win.moveFocus(w)
}

// FocusNext moves focus forward in list order, wrapping at the end.
// Without a current focus it picks the first eligible widget.
func (win *Window) FocusNext() {
	if win == nil || len(win.widgets) == 0 {
		return
	}

	cur := win.indexOf(win.focused)
	if cur < 0 {
		win.moveFocus(firstFocusable(win.widgets))
		return
	}

	next := firstFocusable(win.widgets[cur+1:])
	if next == nil {
		next = firstFocusable(win.widgets[:cur])
	}
	win.moveFocus(next)
}

// FocusPrev moves focus backward in list order, wrapping at the start.
// Without a current focus it picks the last eligible widget.
func (win *Window) FocusPrev() {
	if win == nil || len(win.widgets) == 0 {
		return
	}

	var prev *Widget
	if cur := win.indexOf(win.focused); cur >= 0 {
		prev = lastFocusable(win.widgets[:cur])
	}
	if prev == nil {
		prev = lastFocusable(win.widgets)
	}
	win.moveFocus(prev)
}

// ActivateFocused invokes the focused widget's activation, if it has one
func (win *Window) ActivateFocused() {
	if win == nil || win.focused == nil {
		return
	}
	if a, ok := win.focused.variant.(activatable); ok {
		a.activate(win.focused)
	}
}

// moveFocus transfers the focused flag; nil or the current widget is a no-op
func (win *Window) moveFocus(next *Widget) {
	if next == nil || next == win.focused {
		return
	}
	if win.focused != nil {
		win.focused.focused = false
	}
	next.focused = true
	win.focused = next
}

// dropFocus moves focus off w, clearing it when no other widget is eligible
func (win *Window) dropFocus(w *Widget) {
	if win.focused != w {
		return
	}
	win.FocusNext()
	if win.focused == w {
		w.focused = false
		win.focused = nil
	}
}

func firstFocusable(ws []*Widget) *Widget {
	for _, w := range ws {
		if w.canFocus() {
			return w
		}
	}
	return nil
}

func lastFocusable(ws []*Widget) *Widget {
	var found *Widget
	for _, w := range ws {
		if w.canFocus() {
			found = w
		}
	}
	return found
}
