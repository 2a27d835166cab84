package network

import (
	"context"
	"sync/atomic"

	"github.com/lixenwraith/gtlib/terminal"
)

// RemoteCanvas draws by sending messages to the window manager instead of
// writing escape sequences. Cells outside the configured size are dropped.
// Send failures are counted, not returned, matching the local draw path.
type RemoteCanvas struct {
	client   *Client
	windowID uint32
	width    int
	height   int
	timeout  func() (context.Context, context.CancelFunc)

	failures atomic.Uint64
}

// NewRemoteCanvas binds a canvas to one window-manager window
func NewRemoteCanvas(c *Client, windowID uint32, cfg *Config) *RemoteCanvas {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	timeout := cfg.RequestTimeout
	return &RemoteCanvas{
		client:   c,
		windowID: windowID,
		width:    cfg.Width,
		height:   cfg.Height,
		timeout: func() (context.Context, context.CancelFunc) {
			if timeout <= 0 {
				return context.WithCancel(context.Background())
			}
			return context.WithTimeout(context.Background(), timeout)
		},
	}
}

func (rc *RemoteCanvas) Size() (int, int) {
	return rc.width, rc.height
}

// SetCell sends one MsgDrawChar
func (rc *RemoteCanvas) SetCell(x, y int, ch rune, fg, bg terminal.Color, attr terminal.Attr) {
	if x < 0 || x >= rc.width || y < 0 || y >= rc.height {
		return
	}
	data, _ := Cell{X: int32(x), Y: int32(y), Ch: ch, Fg: fg, Bg: bg, Attr: attr}.MarshalBinary()
	rc.send(MsgDrawChar, data)
}

// ClearRect sends one MsgClearWindow carrying the area
func (rc *RemoteCanvas) ClearRect(x, y, width, height int) {
	data, _ := Area{X: int32(x), Y: int32(y), Width: int32(width), Height: int32(height)}.MarshalBinary()
	rc.send(MsgClearWindow, data)
}

// Refresh asks the window manager to present the window
func (rc *RemoteCanvas) Refresh() {
	rc.send(MsgRefreshWindow, nil)
}

// Failures returns the number of sends that failed
func (rc *RemoteCanvas) Failures() uint64 {
	return rc.failures.Load()
}

func (rc *RemoteCanvas) send(t MessageType, data []byte) {
	ctx, cancel := rc.timeout()
	defer cancel()
	if err := rc.client.SendMsg(ctx, t, rc.windowID, data); err != nil {
		rc.failures.Add(1)
	}
}
