package network

import (
	"context"
	"fmt"
	"sync"
)

// Handle addresses a registered service; zero means "not found"
type Handle uint32

// Locator resolves service names to handles
type Locator interface {
	Lookup(ctx context.Context, name string) (Handle, error)
}

// Sender delivers one tagged payload to a service. With feedback set, the
// sender waits for the receiver to confirm delivery.
type Sender interface {
	Send(ctx context.Context, dst Handle, tag uint16, payload []byte, feedback bool) error
}

// Transport is both halves of the window-manager link
type Transport interface {
	Locator
	Sender
}

// Delivery is one message recorded by MemoryTransport
type Delivery struct {
	Dst      Handle
	Tag      uint16
	Payload  []byte
	Feedback bool
}

// MemoryTransport is an in-process Transport. Services are registered by
// name; every successful Send is recorded. Safe for concurrent use.
type MemoryTransport struct {
	mu         sync.Mutex
	services   map[string]Handle
	nextHandle Handle
	deliveries []Delivery

	// SendErr, when set, fails every Send after recording nothing
	SendErr error
}

// NewMemoryTransport creates an empty registry
func NewMemoryTransport() *MemoryTransport {
	return &MemoryTransport{
		services: make(map[string]Handle),
	}
}

// Register adds a service and returns its handle; re-registering keeps the handle
func (t *MemoryTransport) Register(name string) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	if h, ok := t.services[name]; ok {
		return h
	}
	t.nextHandle++
	t.services[name] = t.nextHandle
	return t.nextHandle
}

// Unregister removes a service; later sends to its handle fail as unavailable
func (t *MemoryTransport) Unregister(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.services, name)
}

func (t *MemoryTransport) Lookup(ctx context.Context, name string) (Handle, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	h, ok := t.services[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrServiceNotFound, name)
	}
	return h, nil
}

func (t *MemoryTransport) Send(ctx context.Context, dst Handle, tag uint16, payload []byte, feedback bool) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	if len(payload) > MaxPayload {
		return fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(payload))
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.SendErr != nil {
		return t.SendErr
	}
	if !t.registered(dst) {
		return fmt.Errorf("%w: handle %d", ErrServiceUnavailable, dst)
	}

	t.deliveries = append(t.deliveries, Delivery{
		Dst:      dst,
		Tag:      tag,
		Payload:  append([]byte(nil), payload...),
		Feedback: feedback,
	})
	return nil
}

// Deliveries returns a copy of everything sent so far
func (t *MemoryTransport) Deliveries() []Delivery {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Delivery(nil), t.deliveries...)
}

// Reset discards recorded deliveries
func (t *MemoryTransport) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.deliveries = nil
}

func (t *MemoryTransport) registered(h Handle) bool {
	for _, v := range t.services {
		if v == h {
			return true
		}
	}
	return false
}
