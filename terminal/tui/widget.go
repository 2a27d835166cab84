package tui

import (
	"unicode/utf8"

	"github.com/lixenwraith/gtlib/terminal"
)

// Kind identifies the widget variant
type Kind uint8

const (
	KindButton Kind = iota
	KindLabel
	KindTextbox
)

func (k Kind) String() string {
	switch k {
	case KindButton:
		return "button"
	case KindLabel:
		return "label"
	case KindTextbox:
		return "textbox"
	default:
		return "unknown"
	}
}

// Rect is a position and size snapshot
type Rect struct {
	X, Y          int
	Width, Height int
}

// ButtonHandler runs when a focused button is activated.
// userData is whatever was passed at creation; the caller keeps ownership of it.
type ButtonHandler func(w *Widget, userData any)

// variant is the per-kind payload of a Widget.
// Every variant is drawable; focusable and activatable are optional capabilities.
type variant interface {
	kind() Kind
	render(r *Renderer, win *Window, w *Widget)
}

type focusable interface {
	focusable()
}

type activatable interface {
	activate(w *Widget)
}

// Button is the payload of a KindButton widget
type Button struct {
	handler  ButtonHandler
	userData any
}

func (*Button) kind() Kind  { return KindButton }
func (*Button) focusable() {}

func (b *Button) activate(w *Widget) {
	if b.handler != nil {
		b.handler(w, b.userData)
	}
}

// Label is the payload of a KindLabel widget
type Label struct {
	Fg, Bg terminal.Color
	Attr   terminal.Attr
}

func (*Label) kind() Kind { return KindLabel }

// Textbox is the payload of a KindTextbox widget
type Textbox struct {
	MaxLength int // In runes; 0 means unlimited
}

func (*Textbox) kind() Kind  { return KindTextbox }
func (*Textbox) focusable() {}

// clamp truncates s to the textbox limit
func (t *Textbox) clamp(s string) string {
	if t.MaxLength <= 0 || utf8.RuneCountInString(s) <= t.MaxLength {
		return s
	}
	runes := []rune(s)
	return string(runes[:t.MaxLength])
}

// Widget is a drawable element owned by exactly one Window.
// All methods are no-ops (or zero results) on a nil receiver.
type Widget struct {
	x, y          int
	width, height int
	text          string
	visible       bool
	focused       bool
	destroyed     bool

	window  *Window
	variant variant
}

// Kind returns the widget variant
func (w *Widget) Kind() Kind {
	if w == nil {
		return Kind(255)
	}
	return w.variant.kind()
}

// Window returns the owning window, nil once destroyed
func (w *Widget) Window() *Window {
	if w == nil {
		return nil
	}
	return w.window
}

// Bounds returns position (relative to window) and size
func (w *Widget) Bounds() Rect {
	if w == nil {
		return Rect{}
	}
	return Rect{X: w.x, Y: w.y, Width: w.width, Height: w.height}
}

// Text returns the current text
func (w *Widget) Text() string {
	if w == nil {
		return ""
	}
	return w.text
}

// SetText replaces the text; textboxes truncate to their max length
func (w *Widget) SetText(text string) {
	if w == nil || w.destroyed {
		return
	}
	switch v := w.variant.(type) {
	case *Textbox:
		text = v.clamp(text)
	case *Label:
		w.width = utf8.RuneCountInString(text)
	}
	w.text = text
}

// Visible reports the visibility flag
func (w *Widget) Visible() bool {
	return w != nil && w.visible
}

// SetVisible toggles visibility. Hiding the focused widget moves focus to the
// next eligible widget, or clears it when none remains. Showing a focusable
// widget in a window without focus gives it focus.
func (w *Widget) SetVisible(visible bool) {
	if w == nil || w.destroyed {
		return
	}
	w.visible = visible
	if w.window == nil {
		return
	}
	switch {
	case !visible && w.focused:
		w.window.dropFocus(w)
	case visible && w.window.focused == nil && w.canFocus():
		w.window.moveFocus(w)
	}
}

// Focused reports whether the widget holds its window's focus
func (w *Widget) Focused() bool {
	return w != nil && w.focused
}

// Focusable reports whether the variant can take focus (button, textbox)
func (w *Widget) Focusable() bool {
	if w == nil {
		return false
	}
	_, ok := w.variant.(focusable)
	return ok
}

// Activatable reports whether the variant responds to activation (button)
func (w *Widget) Activatable() bool {
	if w == nil {
		return false
	}
	_, ok := w.variant.(activatable)
	return ok
}

// Label returns the label payload when the widget is a label
func (w *Widget) Label() (*Label, bool) {
	if w == nil {
		return nil, false
	}
	l, ok := w.variant.(*Label)
	return l, ok
}

// Textbox returns the textbox payload when the widget is a textbox
func (w *Widget) Textbox() (*Textbox, bool) {
	if w == nil {
		return nil, false
	}
	t, ok := w.variant.(*Textbox)
	return t, ok
}

// Destroyed reports whether Destroy has run
func (w *Widget) Destroyed() bool {
	return w != nil && w.destroyed
}

// Destroy unlinks the widget from its window, moving focus off it, then
// releases its text
func (w *Widget) Destroy() {
	if w == nil || w.destroyed {
		return
	}
	if w.window != nil {
		// RemoveWidget calls back into release
		w.window.RemoveWidget(w)
		return
	}
	w.release()
}

// release clears the widget's state without touching its window
func (w *Widget) release() {
	if w.destroyed {
		return
	}
	w.text = ""
	w.focused = false
	w.window = nil
	w.destroyed = true
}

// canFocus reports whether traversal may land on the widget
func (w *Widget) canFocus() bool {
	return w.visible && !w.destroyed && w.Focusable()
}

// insertRune appends a typed character to a textbox within its limit
func (w *Widget) insertRune(r rune) bool {
	t, ok := w.variant.(*Textbox)
	if !ok {
		return false
	}
	if t.MaxLength > 0 && utf8.RuneCountInString(w.text) >= t.MaxLength {
		return false
	}
	w.text += string(r)
	return true
}

// deleteRune removes the last character of a textbox
func (w *Widget) deleteRune() bool {
	if _, ok := w.variant.(*Textbox); !ok || w.text == "" {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(w.text)
	w.text = w.text[:len(w.text)-size]
	return true
}
