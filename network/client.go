package network

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Client talks to the window manager over a Transport.
// Connect resolves the service once; SendMsg then frames and delivers
// messages to the resolved handle. Safe for concurrent use.
type Client struct {
	transport Transport
	service   string
	feedback  bool
	log       *slog.Logger
	id        uuid.UUID

	mu sync.RWMutex
	wm Handle
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithService overrides the service name resolved by Connect
func WithService(name string) ClientOption {
	return func(c *Client) { c.service = name }
}

// WithFeedback makes every send wait for delivery confirmation
func WithFeedback(on bool) ClientOption {
	return func(c *Client) { c.feedback = on }
}

// WithClientLogger sets the logger for connection and send failures
func WithClientLogger(l *slog.Logger) ClientOption {
	return func(c *Client) { c.log = l }
}

// NewClient creates a disconnected client
func NewClient(t Transport, opts ...ClientOption) *Client {
	c := &Client{
		transport: t,
		service:   DefaultService,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		id:        uuid.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "wm_client", "client_id", c.id.String())
	return c
}

// ID returns the client identity used in log records
func (c *Client) ID() uuid.UUID {
	return c.id
}

// Connect resolves the window manager. A failed lookup leaves the client disconnected.
func (c *Client) Connect(ctx context.Context) error {
	h, err := c.transport.Lookup(ctx, c.service)
	if err == nil && h == 0 {
		err = fmt.Errorf("%w: %q", ErrServiceNotFound, c.service)
	}
	if err != nil {
		c.log.Warn("window manager lookup failed", "service", c.service, "error", err)
		c.mu.Lock()
		c.wm = 0
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.wm = h
	c.mu.Unlock()
	c.log.Debug("connected to window manager", "service", c.service, "handle", uint32(h))
	return nil
}

// Disconnect forgets the resolved handle
func (c *Client) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.wm = 0
}

// Connected reports whether Connect succeeded and Disconnect has not run since
func (c *Client) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.wm != 0
}

// SendMsg frames data as [type][window id][data] and delivers it.
// The transport tag is the message type.
func (c *Client) SendMsg(ctx context.Context, t MessageType, windowID uint32, data []byte) error {
	c.mu.RLock()
	wm := c.wm
	c.mu.RUnlock()
	if wm == 0 {
		return ErrNotConnected
	}

	payload, err := NewMessage(t, windowID, data).Bytes()
	if err != nil {
		return err
	}

	if err := c.transport.Send(ctx, wm, uint16(t), payload, c.feedback); err != nil {
		c.log.Debug("send failed", "type", t.String(), "window", windowID, "error", err)
		return fmt.Errorf("send %s: %w", t, err)
	}
	return nil
}

// RecvMsg is not supported: the window manager never pushes to clients
func (c *Client) RecvMsg(ctx context.Context, timeout time.Duration) (*Message, error) {
	return nil, ErrUnsupported
}
