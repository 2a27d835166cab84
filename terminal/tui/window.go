package tui

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/lixenwraith/gtlib/terminal"
)

// ErrInvalidSize is returned by NewWindow for non-positive dimensions
var ErrInvalidSize = errors.New("tui: window width and height must be positive")

// Window is a rectangular screen region that owns its widgets.
// Widgets are kept most-recently-created first; that order drives rendering
// and focus traversal. All methods are no-ops on a nil receiver.
type Window struct {
	x, y          int
	width, height int
	title         string
	visible       bool
	destroyed     bool

	widgets []*Widget
	focused *Widget
}

// NewWindow creates a hidden window at (x, y) in terminal coordinates
func NewWindow(x, y, width, height int, title string) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	return &Window{
		x:      x,
		y:      y,
		width:  width,
		height: height,
		title:  title,
	}, nil
}

// Destroy destroys every widget, then releases the title
func (win *Window) Destroy() {
	if win == nil || win.destroyed {
		return
	}
	for _, w := range win.widgets {
		w.release()
	}
	win.widgets = nil
	win.focused = nil
	win.title = ""
	win.visible = false
	win.destroyed = true
}

// Destroyed reports whether Destroy has run
func (win *Window) Destroyed() bool {
	return win != nil && win.destroyed
}

func (win *Window) Show() {
	if win != nil {
		win.visible = true
	}
}

func (win *Window) Hide() {
	if win != nil {
		win.visible = false
	}
}

// Visible reports the visibility flag
func (win *Window) Visible() bool {
	return win != nil && win.visible
}

// Move sets the origin without validation
func (win *Window) Move(x, y int) {
	if win == nil {
		return
	}
	win.x, win.y = x, y
}

// Resize sets the size without validation
func (win *Window) Resize(width, height int) {
	if win == nil {
		return
	}
	win.width, win.height = width, height
}

// Geometry returns a snapshot of position and size
func (win *Window) Geometry() Rect {
	if win == nil {
		return Rect{}
	}
	return Rect{X: win.x, Y: win.y, Width: win.width, Height: win.height}
}

// SetTitle replaces the title
func (win *Window) SetTitle(title string) {
	if win == nil || win.destroyed {
		return
	}
	win.title = title
}

// Title returns the title, empty when none is set
func (win *Window) Title() string {
	if win == nil {
		return ""
	}
	return win.title
}

// CopyTitle copies as much of the title as fits into dst without splitting a
// rune and returns the byte count
func (win *Window) CopyTitle(dst []byte) int {
	if win == nil {
		return 0
	}
	n := copy(dst, win.title)
	if n < len(win.title) {
		// Back off to the start of the rune cut at the boundary
		for n > 0 && !utf8.RuneStart(win.title[n]) {
			n--
		}
	}
	return n
}

// Widgets returns the widgets in list order (most recently created first)
func (win *Window) Widgets() []*Widget {
	if win == nil {
		return nil
	}
	out := make([]*Widget, len(win.widgets))
	copy(out, win.widgets)
	return out
}

// NewButton creates a focusable, activatable button.
// userData is handed back to handler on activation and is never retained beyond the widget.
func (win *Window) NewButton(x, y, width, height int, text string, handler ButtonHandler, userData any) *Widget {
	return win.attach(&Widget{
		x: x, y: y, width: width, height: height,
		text:    text,
		variant: &Button{handler: handler, userData: userData},
	})
}

// NewLabel creates a drawable, never-focusable text label
func (win *Window) NewLabel(x, y int, text string, fg, bg terminal.Color, attr terminal.Attr) *Widget {
	return win.attach(&Widget{
		x: x, y: y, width: utf8.RuneCountInString(text), height: 1,
		text:    text,
		variant: &Label{Fg: fg, Bg: bg, Attr: attr},
	})
}

// NewTextbox creates a focusable text box; maxLength <= 0 means unlimited
func (win *Window) NewTextbox(x, y, width, height int, text string, maxLength int) *Widget {
	tb := &Textbox{MaxLength: max(maxLength, 0)}
	return win.attach(&Widget{
		x: x, y: y, width: width, height: height,
		text:    tb.clamp(text),
		variant: tb,
	})
}

// attach prepends w and applies the creation focus rule shared by every
// constructor: the first focusable widget of an unfocused window takes focus
func (win *Window) attach(w *Widget) *Widget {
	if win == nil || win.destroyed {
		return nil
	}
	w.window = win
	w.visible = true

	win.widgets = append(win.widgets, nil)
	copy(win.widgets[1:], win.widgets)
	win.widgets[0] = w

	if win.focused == nil && w.canFocus() {
		win.moveFocus(w)
	}
	return w
}

// RemoveWidget unlinks w from the window and destroys it
func (win *Window) RemoveWidget(w *Widget) {
	if win == nil || w == nil || w.window != win {
		return
	}
	idx := win.indexOf(w)
	if idx < 0 {
		return
	}
	if w.focused {
		win.dropFocus(w)
	}
	win.widgets = append(win.widgets[:idx], win.widgets[idx+1:]...)
	w.release()
}

func (win *Window) indexOf(w *Widget) int {
	for i, c := range win.widgets {
		if c == w {
			return i
		}
	}
	return -1
}
