package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments
var (
	csi      = []byte("\x1b[")
	csiReset = []byte("\x1b[0m")
	csiClear = []byte("\x1b[2J\x1b[H")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Attribute sequences
	csiAttrBold      = []byte("\x1b[1m")
	csiAttrUnderline = []byte("\x1b[4m")
	csiAttrReverse   = []byte("\x1b[7m")
)

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [20]byte
	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeCursorPos writes cursor positioning sequence (0-indexed input, 1-indexed output)
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csi)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}

// writeAttrs writes one sequence per set attribute bit, in bold/underline/reverse order
func writeAttrs(w *bufio.Writer, attr Attr) {
	if attr&AttrBold != 0 {
		w.Write(csiAttrBold)
	}
	if attr&AttrUnderline != 0 {
		w.Write(csiAttrUnderline)
	}
	if attr&AttrReverse != 0 {
		w.Write(csiAttrReverse)
	}
}

// writeColors writes ESC[3nm / ESC[4nm, skipping ColorDefault and out-of-range values
func writeColors(w *bufio.Writer, fg, bg Color) {
	if fg < ColorDefault {
		w.Write(csi)
		w.WriteByte('3')
		w.WriteByte(byte(fg) + '0')
		w.WriteByte('m')
	}
	if bg < ColorDefault {
		w.Write(csi)
		w.WriteByte('4')
		w.WriteByte(byte(bg) + '0')
		w.WriteByte('m')
	}
}
