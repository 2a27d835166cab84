package terminal

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gtlib/terminal/terminaltest"
)

func newTestSession(t *testing.T, w, h int) (*Session, *terminaltest.Backend) {
	t.Helper()
	b := terminaltest.New(w, h)
	s := NewSession(WithBackend(b))
	require.NoError(t, s.Acquire())
	b.Reset()
	return s, b
}

func TestAcquireRelease(t *testing.T) {
	b := terminaltest.New(100, 40)
	s := NewSession(WithBackend(b))

	require.NoError(t, s.Acquire())
	assert.True(t, s.Acquired())
	assert.Equal(t, "\x1b[2J\x1b[H\x1b[?25l", b.Output())

	w, h := s.Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 40, h)

	// Second acquire is a no-op
	require.NoError(t, s.Acquire())
	assert.Equal(t, 1, b.InitCalls)

	b.Reset()
	s.Release()
	assert.False(t, s.Acquired())
	assert.Equal(t, 1, b.FiniCalls)
	assert.Equal(t, "\x1b[0m\x1b[2J\x1b[H\x1b[?25h", b.Output())

	// Release again is a no-op
	s.Release()
	assert.Equal(t, 1, b.FiniCalls)
}

func TestReleaseWithoutAcquire(t *testing.T) {
	b := terminaltest.New(80, 24)
	s := NewSession(WithBackend(b))
	s.Release()
	assert.Equal(t, 0, b.FiniCalls)
	assert.Empty(t, b.Output())
}

func TestAcquireFallbackSize(t *testing.T) {
	b := terminaltest.New(0, 0)
	s := NewSession(WithBackend(b))
	require.NoError(t, s.Acquire())
	defer s.Release()

	w, h := s.Size()
	assert.Equal(t, FallbackWidth, w)
	assert.Equal(t, FallbackHeight, h)
}

func TestAcquireInitError(t *testing.T) {
	b := terminaltest.New(80, 24)
	b.InitErr = errors.New("not a tty")
	s := NewSession(WithBackend(b))

	err := s.Acquire()
	require.Error(t, err)
	assert.ErrorIs(t, err, b.InitErr)
	assert.False(t, s.Acquired())

	s.Release()
	assert.Equal(t, 0, b.FiniCalls)
}

func TestScopedReleasesOnError(t *testing.T) {
	b := terminaltest.New(80, 24)
	s := NewSession(WithBackend(b))
	boom := errors.New("boom")

	err := Scoped(s, func(*Session) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, s.Acquired())
	assert.Equal(t, 1, b.FiniCalls)
}

func TestScopedReleasesOnPanic(t *testing.T) {
	b := terminaltest.New(80, 24)
	s := NewSession(WithBackend(b))

	assert.Panics(t, func() {
		_ = Scoped(s, func(*Session) error { panic("crash") })
	})
	assert.False(t, s.Acquired())
	assert.Equal(t, 1, b.FiniCalls)
}

func TestSetCellSequences(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		ch     rune
		fg, bg Color
		attr   Attr
		want   string
	}{
		{"Default colors", 0, 0, 'a', ColorDefault, ColorDefault, AttrNone, "\x1b[1;1Ha\x1b[0m"},
		{"Foreground only", 4, 2, 'b', ColorRed, ColorDefault, AttrNone, "\x1b[3;5H\x1b[31mb\x1b[0m"},
		{"Both colors", 9, 9, 'c', ColorYellow, ColorBlue, AttrNone, "\x1b[10;10H\x1b[33m\x1b[44mc\x1b[0m"},
		{"Black background", 1, 0, 'd', ColorDefault, ColorBlack, AttrNone, "\x1b[1;2H\x1b[40md\x1b[0m"},
		{"Bold", 0, 1, 'e', ColorDefault, ColorDefault, AttrBold, "\x1b[2;1H\x1b[1me\x1b[0m"},
		{
			"All attributes combine",
			2, 3, 'f', ColorWhite, ColorCyan, AttrBold | AttrUnderline | AttrReverse,
			"\x1b[4;3H\x1b[1m\x1b[4m\x1b[7m\x1b[37m\x1b[46mf\x1b[0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, b := newTestSession(t, 80, 24)
			defer s.Release()

			s.SetCell(tt.x, tt.y, tt.ch, tt.fg, tt.bg, tt.attr)
			assert.Equal(t, tt.want, b.Output())
		})
	}
}

func TestSetCellOutOfBounds(t *testing.T) {
	s, b := newTestSession(t, 10, 5)
	defer s.Release()

	s.SetCell(10, 0, 'x', ColorRed, ColorDefault, AttrNone)
	s.SetCell(0, 5, 'x', ColorRed, ColorDefault, AttrNone)
	s.SetCell(-1, 0, 'x', ColorRed, ColorDefault, AttrNone)
	assert.Empty(t, b.Output())
}

func TestSetCellBeforeAcquire(t *testing.T) {
	b := terminaltest.New(80, 24)
	s := NewSession(WithBackend(b))
	s.SetCell(0, 0, 'x', ColorDefault, ColorDefault, AttrNone)
	assert.Empty(t, b.Output())
}

func TestClearRectClips(t *testing.T) {
	s, b := newTestSession(t, 6, 3)
	defer s.Release()

	s.ClearRect(4, 1, 5, 5)
	assert.Equal(t, "\x1b[2;5H  \x1b[3;5H  ", b.Output())

	b.Reset()
	s.ClearRect(10, 0, 3, 1)
	assert.Empty(t, b.Output())
}

func TestCursorControl(t *testing.T) {
	s, b := newTestSession(t, 80, 24)
	defer s.Release()

	s.SetCursorPosition(7, 3)
	s.SetCursorVisible(true)
	s.SetCursorVisible(false)
	assert.Equal(t, "\x1b[4;8H\x1b[?25h\x1b[?25l", b.Output())
}

func TestWaitEvent(t *testing.T) {
	t.Run("Arrow key", func(t *testing.T) {
		s, b := newTestSession(t, 80, 24)
		defer s.Release()
		b.QueueBytes([]byte{0x1b, '[', 'A'})

		ev, err := s.WaitEvent(100 * time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, KeyUp, ev.Key)
		assert.Equal(t, 100*time.Millisecond, b.LastPoll)
	})

	t.Run("Plain key", func(t *testing.T) {
		s, b := newTestSession(t, 80, 24)
		defer s.Release()
		b.QueueBytes([]byte{'a'})

		ev, err := s.WaitEvent(0)
		require.NoError(t, err)
		assert.Equal(t, Key('a'), ev.Key)
	})

	t.Run("Timeout", func(t *testing.T) {
		s, _ := newTestSession(t, 80, 24)
		defer s.Release()

		_, err := s.WaitEvent(0)
		assert.ErrorIs(t, err, ErrTimeout)
		assert.NotErrorIs(t, err, ErrDecode)
	})

	t.Run("Zero byte read", func(t *testing.T) {
		s, b := newTestSession(t, 80, 24)
		defer s.Release()
		b.QueueBytes([]byte{})

		_, err := s.WaitEvent(10 * time.Millisecond)
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("Read error", func(t *testing.T) {
		s, b := newTestSession(t, 80, 24)
		defer s.Release()
		readErr := errors.New("eio")
		b.Queue(terminaltest.Read{Err: readErr})

		_, err := s.WaitEvent(10 * time.Millisecond)
		assert.ErrorIs(t, err, ErrDecode)
		assert.ErrorIs(t, err, readErr)
	})

	t.Run("Poll error", func(t *testing.T) {
		s, b := newTestSession(t, 80, 24)
		defer s.Release()
		b.PollErr = errors.New("ebadf")

		_, err := s.WaitEvent(-1)
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("Long read is unknown", func(t *testing.T) {
		s, b := newTestSession(t, 80, 24)
		defer s.Release()
		b.QueueBytes([]byte("hi"))

		ev, err := s.WaitEvent(-1)
		require.NoError(t, err)
		assert.Equal(t, KeyUnknown, ev.Key)
	})
}

func TestColorNames(t *testing.T) {
	assert.Equal(t, "magenta", ColorMagenta.String())
	assert.Equal(t, "default", ColorDefault.String())
	assert.Equal(t, "invalid", Color(42).String())

	c, ok := ParseColor("cyan")
	assert.True(t, ok)
	assert.Equal(t, ColorCyan, c)

	c, ok = ParseColor("chartreuse")
	assert.False(t, ok)
	assert.Equal(t, ColorDefault, c)
}
