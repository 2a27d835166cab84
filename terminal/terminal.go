package terminal

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// Fallback dimensions when the device cannot report its size
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

// Session is the scoped raw-mode terminal resource.
// All output goes through the session; every draw call is flushed before it returns.
type Session struct {
	backend Backend
	out     *bufio.Writer
	log     *slog.Logger

	mu       sync.Mutex
	acquired bool
	width    int
	height   int
}

// Option configures a Session
type Option func(*Session)

// WithBackend replaces the platform backend (tests, alternate devices)
func WithBackend(b Backend) Option {
	return func(s *Session) {
		s.backend = b
	}
}

// WithLogger sets the structured logger; the default discards
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// NewSession creates an unacquired session bound to stdin/stdout
func NewSession(opts ...Option) *Session {
	s := &Session{
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		width:  FallbackWidth,
		height: FallbackHeight,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.backend == nil {
		s.backend = newBackend()
	}
	s.out = bufio.NewWriter(s.backend)
	return s
}

// Acquire enters non-canonical/no-echo mode, queries the size, clears the
// screen and hides the cursor. Calling it again before Release is a no-op.
func (s *Session) Acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.acquired {
		return nil
	}

	if err := s.backend.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	w, h, ok := s.backend.Size()
	if !ok {
		w, h = FallbackWidth, FallbackHeight
		s.log.Debug("terminal size unavailable, using fallback", "width", w, "height", h)
	}
	s.width, s.height = w, h

	s.out.Write(csiClear)
	s.out.Write(csiCursorHide)
	s.flush()

	s.acquired = true
	s.log.Debug("terminal session acquired", "width", w, "height", h)
	return nil
}

// Release clears the screen, shows the cursor and restores the original mode.
// Safe to call multiple times and without a prior Acquire.
func (s *Session) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.acquired {
		return
	}

	s.out.Write(csiReset)
	s.out.Write(csiClear)
	s.out.Write(csiCursorShow)
	s.flush()

	s.backend.Fini()
	s.acquired = false
	s.log.Debug("terminal session released")
}

// Acquired reports whether the session currently holds the terminal
func (s *Session) Acquired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acquired
}

// Size returns the dimensions queried at Acquire (fallback before that)
func (s *Session) Size() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// SetCell writes one character at absolute 0-indexed coordinates.
// Sequence: cursor move, attributes, colors, character, reset.
// Positions outside the terminal emit nothing.
func (s *Session) SetCell(x, y int, ch rune, fg, bg Color, attr Attr) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.acquired || !s.inBounds(x, y) {
		return
	}

	writeCursorPos(s.out, x, y)
	writeAttrs(s.out, attr)
	writeColors(s.out, fg, bg)
	s.out.WriteRune(ch)
	s.out.Write(csiReset)
	s.flush()
}

// ClearRect blanks a rectangle with spaces, clipped to the terminal
func (s *Session) ClearRect(x, y, width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.acquired {
		return
	}

	x0, x1 := max(x, 0), min(x+width, s.width)
	if x0 >= x1 {
		return
	}
	for row := max(y, 0); row < min(y+height, s.height); row++ {
		writeCursorPos(s.out, x0, row)
		for col := x0; col < x1; col++ {
			s.out.WriteByte(' ')
		}
	}
	s.flush()
}

// SetCursorPosition moves the cursor (0-indexed)
func (s *Session) SetCursorPosition(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.acquired {
		return
	}
	writeCursorPos(s.out, x, y)
	s.flush()
}

// SetCursorVisible shows/hides cursor
func (s *Session) SetCursorVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.acquired {
		return
	}
	if visible {
		s.out.Write(csiCursorShow)
	} else {
		s.out.Write(csiCursorHide)
	}
	s.flush()
}

// WaitEvent blocks for input: negative timeout waits indefinitely, zero polls,
// positive waits up to the duration. Returns ErrTimeout when nothing arrived
// and ErrDecode when the read failed.
func (s *Session) WaitEvent(timeout time.Duration) (Event, error) {
	ready, err := s.backend.Poll(timeout)
	if err != nil {
		return Event{}, fmt.Errorf("%w: poll: %w", ErrDecode, err)
	}
	if !ready {
		return Event{}, ErrTimeout
	}

	var buf [maxEventBytes]byte
	n, err := s.backend.Read(buf[:])
	if err != nil {
		return Event{}, fmt.Errorf("%w: read: %w", ErrDecode, err)
	}
	if n <= 0 {
		return Decode(nil)
	}
	return Decode(buf[:n])
}

func (s *Session) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// flush pushes buffered output to the backend; write errors are logged, not returned
func (s *Session) flush() {
	if err := s.out.Flush(); err != nil {
		s.log.Warn("terminal write failed", "error", err)
		s.out.Reset(s.backend)
	}
}

// Scoped acquires the session, runs fn and releases on every exit path,
// including a panic inside fn (the panic continues after the terminal is restored)
func Scoped(s *Session, fn func(*Session) error) error {
	if err := s.Acquire(); err != nil {
		return err
	}
	defer s.Release()
	return fn(s)
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Release cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiReset)
	w.Write(csiCursorShow)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
