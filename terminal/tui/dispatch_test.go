package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gtlib/terminal"
)

func keyEvent(k terminal.Key) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: k}
}

func TestDispatchNavigation(t *testing.T) {
	win := newFocusWindow(t)
	a := win.NewButton(0, 0, 10, 3, "A", nil, nil)
	b := win.NewButton(0, 4, 10, 3, "B", nil, nil)
	require.Same(t, a, win.Focused())

	tests := []struct {
		name string
		key  terminal.Key
		want *Widget
	}{
		{"Tab", terminal.KeyTab, b},
		{"Down", terminal.KeyDown, a},
		{"Right", terminal.KeyRight, b},
		{"Up", terminal.KeyUp, a},
		{"Left", terminal.KeyLeft, b},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Dispatch(win, keyEvent(tt.key)))
			assert.Same(t, tt.want, win.Focused())
		})
	}
}

func TestDispatchEnterActivates(t *testing.T) {
	for _, k := range []terminal.Key{terminal.KeyEnter, terminal.KeyNewline} {
		win := newFocusWindow(t)
		clicks := 0
		win.NewButton(0, 0, 10, 3, "Go", func(*Widget, any) { clicks++ }, nil)

		assert.True(t, Dispatch(win, keyEvent(k)))
		assert.Equal(t, 1, clicks, "key %v", k)
	}
}

func TestDispatchTextboxEditing(t *testing.T) {
	win := newFocusWindow(t)
	tb := win.NewTextbox(0, 0, 10, 3, "", 3)
	require.Same(t, tb, win.Focused())

	for _, k := range []terminal.Key{'a', 'b', 'c'} {
		assert.True(t, Dispatch(win, keyEvent(k)))
	}
	assert.Equal(t, "abc", tb.Text())

	assert.False(t, Dispatch(win, keyEvent('d')), "limit reached")
	assert.Equal(t, "abc", tb.Text())

	assert.True(t, Dispatch(win, keyEvent(terminal.KeyBackspace)))
	assert.True(t, Dispatch(win, keyEvent(terminal.KeyDelete)))
	assert.Equal(t, "a", tb.Text())
	assert.True(t, Dispatch(win, keyEvent(terminal.KeyDelete)))
	assert.False(t, Dispatch(win, keyEvent(terminal.KeyDelete)), "already empty")
}

func TestDispatchIgnored(t *testing.T) {
	win := newFocusWindow(t)
	assert.False(t, Dispatch(nil, keyEvent(terminal.KeyTab)))
	assert.False(t, Dispatch(win, keyEvent('x')), "no focus")

	btn := win.NewButton(0, 0, 10, 3, "B", nil, nil)
	require.Same(t, btn, win.Focused())
	assert.False(t, Dispatch(win, keyEvent('x')), "buttons take no text")
	assert.False(t, Dispatch(win, keyEvent(terminal.KeyEscape)))
	assert.False(t, Dispatch(win, keyEvent(terminal.KeyF1)))
	assert.Equal(t, "B", btn.Text())
}
