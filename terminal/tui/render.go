package tui

import (
	"unicode/utf8"

	"github.com/lixenwraith/gtlib/terminal"
)

// Canvas is the output surface: the terminal session locally, or a remote
// window manager. Coordinates are absolute and 0-indexed.
type Canvas interface {
	Size() (width, height int)
	SetCell(x, y int, ch rune, fg, bg terminal.Color, attr terminal.Attr)
	ClearRect(x, y, width, height int)
}

// Renderer draws windows and widgets onto a Canvas.
// There is no frame buffer: every call goes straight to the canvas.
type Renderer struct {
	canvas Canvas
}

// NewRenderer binds a renderer to its output surface
func NewRenderer(c Canvas) *Renderer {
	return &Renderer{canvas: c}
}

// DrawChar draws one cell at window-local coordinates.
// Hidden windows and cells outside the canvas produce no output.
func (r *Renderer) DrawChar(win *Window, x, y int, ch rune, fg, bg terminal.Color, attr terminal.Attr) {
	if win == nil || !win.visible {
		return
	}

	absX := win.x + x
	absY := win.y + y

	w, h := r.canvas.Size()
	if absX < 0 || absX >= w || absY < 0 || absY >= h {
		return
	}

	r.canvas.SetCell(absX, absY, ch, fg, bg, attr)
}

// DrawString draws s left to right, one column per rune, stopping at the window width
func (r *Renderer) DrawString(win *Window, x, y int, s string, fg, bg terminal.Color, attr terminal.Attr) {
	if win == nil || !win.visible {
		return
	}
	col := 0
	for _, ch := range s {
		if x+col >= win.width {
			break
		}
		r.DrawChar(win, x+col, y, ch, fg, bg, attr)
		col++
	}
}

// DrawBorder outlines the window with '-', '|' and '+' corners
func (r *Renderer) DrawBorder(win *Window, fg, bg terminal.Color, attr terminal.Attr) {
	if win == nil || !win.visible {
		return
	}

	right, bottom := win.width-1, win.height-1

	for x := 0; x < win.width; x++ {
		r.DrawChar(win, x, 0, '-', fg, bg, attr)
		r.DrawChar(win, x, bottom, '-', fg, bg, attr)
	}
	for y := 0; y < win.height; y++ {
		r.DrawChar(win, 0, y, '|', fg, bg, attr)
		r.DrawChar(win, right, y, '|', fg, bg, attr)
	}

	r.DrawChar(win, 0, 0, '+', fg, bg, attr)
	r.DrawChar(win, right, 0, '+', fg, bg, attr)
	r.DrawChar(win, 0, bottom, '+', fg, bg, attr)
	r.DrawChar(win, right, bottom, '+', fg, bg, attr)
}

// DrawTitle writes the window title into the top border row
func (r *Renderer) DrawTitle(win *Window, fg, bg terminal.Color, attr terminal.Attr) {
	if win == nil || win.title == "" {
		return
	}
	r.DrawString(win, 2, 0, win.title, fg, bg, attr)
}

// ClearWindow blanks the window region
func (r *Renderer) ClearWindow(win *Window) {
	if win == nil || !win.visible {
		return
	}
	r.canvas.ClearRect(win.x, win.y, win.width, win.height)
}

// RenderWidget draws one visible widget according to its variant
func (r *Renderer) RenderWidget(win *Window, w *Widget) {
	if win == nil || w == nil || !w.visible || w.destroyed {
		return
	}
	w.variant.render(r, win, w)
}

// RenderAll draws every visible widget in list order
func (r *Renderer) RenderAll(win *Window) {
	if win == nil {
		return
	}
	for _, w := range win.widgets {
		r.RenderWidget(win, w)
	}
}

// Refresh redraws the whole window: clear, caller decoration (border, title), widgets
func (r *Renderer) Refresh(win *Window, decorate func(r *Renderer, win *Window)) {
	if win == nil || !win.visible {
		return
	}
	r.ClearWindow(win)
	if decorate != nil {
		decorate(r, win)
	}
	r.RenderAll(win)
}

func (b *Button) render(r *Renderer, win *Window, w *Widget) {
	fg, bg := terminal.ColorWhite, terminal.ColorDefault
	attr := terminal.AttrNone
	if w.focused {
		fg, bg = terminal.ColorYellow, terminal.ColorBlue
		attr = terminal.AttrBold
	}

	for y := 0; y < w.height; y++ {
		for x := 0; x < w.width; x++ {
			ch := ' '
			switch {
			case y == 0 || y == w.height-1:
				ch = '-'
				if x == 0 || x == w.width-1 {
					ch = '+'
				}
			case x == 0 || x == w.width-1:
				ch = '|'
			}
			r.DrawChar(win, w.x+x, w.y+y, ch, fg, bg, terminal.AttrNone)
		}
	}

	if w.text != "" {
		startX := (w.width - utf8.RuneCountInString(w.text)) / 2
		startY := w.height / 2
		r.DrawString(win, w.x+startX, w.y+startY, w.text, fg, bg, attr)
	}
}

func (l *Label) render(r *Renderer, win *Window, w *Widget) {
	if w.text != "" {
		r.DrawString(win, w.x, w.y, w.text, l.Fg, l.Bg, l.Attr)
	}
}

func (t *Textbox) render(r *Renderer, win *Window, w *Widget) {
	// Focused boxes invert to black on white
	fg, bg := terminal.ColorWhite, terminal.ColorBlack
	if w.focused {
		fg, bg = terminal.ColorBlack, terminal.ColorWhite
	}

	for y := 0; y < w.height; y++ {
		for x := 0; x < w.width; x++ {
			r.DrawChar(win, w.x+x, w.y+y, ' ', fg, bg, terminal.AttrNone)
		}
	}

	for x := 0; x < w.width; x++ {
		r.DrawChar(win, w.x+x, w.y, '-', fg, bg, terminal.AttrNone)
		r.DrawChar(win, w.x+x, w.y+w.height-1, '-', fg, bg, terminal.AttrNone)
	}
	for y := 0; y < w.height; y++ {
		r.DrawChar(win, w.x, w.y+y, '|', fg, bg, terminal.AttrNone)
		r.DrawChar(win, w.x+w.width-1, w.y+y, '|', fg, bg, terminal.AttrNone)
	}

	if w.text != "" {
		r.DrawString(win, w.x+1, w.y+1, w.text, fg, bg, terminal.AttrNone)
	}
}
