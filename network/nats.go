package network

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// Message headers set on every NATS send
const (
	HeaderTag    = "Gt-Tag"
	HeaderSender = "Gt-Sender"
	HeaderError  = "Gt-Error"
)

// Values a receiver may put in HeaderError on a feedback reply
const (
	replyErrUnavailable = "unavailable"
	replyErrPermission  = "permission"
	replyErrTooLarge    = "too_large"
)

// NATSTransport resolves services through a registry subject and delivers
// messages on per-handle subjects. Safe for concurrent use.
type NATSTransport struct {
	conn   *nats.Conn
	config *Config
	id     string
	owned  bool
	closed atomic.Bool
}

// DialNATS connects to cfg.URL and owns the connection
func DialNATS(cfg *Config) (*NATSTransport, error) {
	id := uuid.NewString()
	opts := []nats.Option{
		nats.Name("gtlib-" + id),
		nats.Timeout(cfg.ConnectTimeout),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.MaxReconnects(-1),
	}

	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: nats connect: %w", ErrServiceUnavailable, err)
	}

	t := NewNATSTransport(conn, cfg)
	t.id = id
	t.owned = true
	return t, nil
}

// NewNATSTransport wraps an existing connection; Close leaves it open
func NewNATSTransport(conn *nats.Conn, cfg *Config) *NATSTransport {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &NATSTransport{
		conn:   conn,
		config: cfg,
		id:     uuid.NewString(),
	}
}

// ID returns the sender identity carried in HeaderSender
func (t *NATSTransport) ID() string {
	return t.id
}

// Lookup requests the handle for name from the registry.
// The reply is a 4-byte little-endian handle; zero means not registered.
func (t *NATSTransport) Lookup(ctx context.Context, name string) (Handle, error) {
	if t.closed.Load() {
		return 0, ErrServiceUnavailable
	}

	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	msg, err := t.conn.RequestWithContext(ctx, t.config.RegistrySubject, []byte(name))
	if err != nil {
		return 0, mapNATSError(err)
	}

	h, err := parseHandle(msg.Data)
	if err != nil {
		return 0, err
	}
	if h == 0 {
		return 0, fmt.Errorf("%w: %q", ErrServiceNotFound, name)
	}
	return h, nil
}

// Send publishes payload on the handle's subject. With feedback it waits
// for the receiver's reply and reports the error category it carries.
func (t *NATSTransport) Send(ctx context.Context, dst Handle, tag uint16, payload []byte, feedback bool) error {
	if t.closed.Load() {
		return ErrServiceUnavailable
	}
	if len(payload) > MaxPayload {
		return fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(payload))
	}

	msg := nats.NewMsg(t.subject(dst))
	msg.Data = payload
	msg.Header.Set(HeaderTag, strconv.FormatUint(uint64(tag), 10))
	msg.Header.Set(HeaderSender, t.id)

	if !feedback {
		return mapNATSError(t.conn.PublishMsg(msg))
	}

	ctx, cancel := t.withTimeout(ctx)
	defer cancel()

	reply, err := t.conn.RequestMsgWithContext(ctx, msg)
	if err != nil {
		return mapNATSError(err)
	}
	return replyError(reply)
}

// Close drains an owned connection. Later calls fail as unavailable.
func (t *NATSTransport) Close() error {
	if t.closed.Swap(true) {
		return nil
	}
	if t.owned {
		return t.conn.Drain()
	}
	return nil
}

func (t *NATSTransport) subject(h Handle) string {
	return t.config.SubjectPrefix + "." + strconv.FormatUint(uint64(h), 10)
}

func (t *NATSTransport) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || t.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, t.config.RequestTimeout)
}

// EncodeHandle builds a registry reply
func EncodeHandle(h Handle) []byte {
	return binary.LittleEndian.AppendUint32(nil, uint32(h))
}

func parseHandle(p []byte) (Handle, error) {
	if len(p) != 4 {
		return 0, fmt.Errorf("%w: registry reply of %d bytes", ErrUnknown, len(p))
	}
	return Handle(binary.LittleEndian.Uint32(p)), nil
}

func replyError(reply *nats.Msg) error {
	if reply == nil || reply.Header == nil {
		return nil
	}
	switch v := reply.Header.Get(HeaderError); v {
	case "":
		return nil
	case replyErrUnavailable:
		return ErrServiceUnavailable
	case replyErrPermission:
		return ErrPermissionDenied
	case replyErrTooLarge:
		return ErrPayloadTooLarge
	default:
		return fmt.Errorf("%w: %s", ErrUnknown, v)
	}
}

// mapNATSError folds client errors into the network error categories
func mapNATSError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, nats.ErrNoResponders), errors.Is(err, nats.ErrConnectionClosed):
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	case errors.Is(err, nats.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case errors.Is(err, nats.ErrAuthorization),
		strings.Contains(strings.ToLower(err.Error()), nats.PERMISSIONS_ERR):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	case errors.Is(err, nats.ErrMaxPayload):
		return fmt.Errorf("%w: %w", ErrPayloadTooLarge, err)
	default:
		return fmt.Errorf("%w: %w", ErrUnknown, err)
	}
}
