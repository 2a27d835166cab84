package network

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapNATSError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"No responders", nats.ErrNoResponders, ErrServiceUnavailable},
		{"Closed", nats.ErrConnectionClosed, ErrServiceUnavailable},
		{"Timeout", nats.ErrTimeout, ErrTimeout},
		{"Deadline", context.DeadlineExceeded, ErrTimeout},
		{"Wrapped deadline", fmt.Errorf("request: %w", context.DeadlineExceeded), ErrTimeout},
		{"Authorization", nats.ErrAuthorization, ErrPermissionDenied},
		{"Permissions violation", errors.New(`nats: permissions violation for publish to "gtlib.svc.3"`), ErrPermissionDenied},
		{"Max payload", nats.ErrMaxPayload, ErrPayloadTooLarge},
		{"Other", errors.New("boom"), ErrUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapNATSError(tt.in)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, tt.in, "cause is preserved")
		})
	}
	assert.NoError(t, mapNATSError(nil))
}

func TestReplyError(t *testing.T) {
	tests := []struct {
		value string
		want  error
	}{
		{replyErrUnavailable, ErrServiceUnavailable},
		{replyErrPermission, ErrPermissionDenied},
		{replyErrTooLarge, ErrPayloadTooLarge},
		{"weird", ErrUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			msg := nats.NewMsg("reply")
			msg.Header.Set(HeaderError, tt.value)
			assert.ErrorIs(t, replyError(msg), tt.want)
		})
	}

	assert.NoError(t, replyError(nats.NewMsg("reply")))
	assert.NoError(t, replyError(&nats.Msg{}))
	assert.NoError(t, replyError(nil))
}

func TestHandleCodec(t *testing.T) {
	h, err := parseHandle(EncodeHandle(0xBEEF))
	require.NoError(t, err)
	assert.Equal(t, Handle(0xBEEF), h)

	_, err = parseHandle([]byte{1, 2})
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestNATSSubject(t *testing.T) {
	cfg := DefaultConfig()
	tr := NewNATSTransport(nil, cfg)
	assert.Equal(t, "gtlib.svc.17", tr.subject(17))
	assert.NotEmpty(t, tr.ID())
}

func TestNATSTransportClosed(t *testing.T) {
	tr := NewNATSTransport(nil, nil)
	require.NoError(t, tr.Close())

	_, err := tr.Lookup(context.Background(), DefaultService)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.ErrorIs(t, tr.Send(context.Background(), 1, 0, nil, false), ErrServiceUnavailable)
	assert.NoError(t, tr.Close())
}

// Live round trip; runs only when GTLIB_TEST_NATS_URL points at a server
func TestNATSRoundTrip(t *testing.T) {
	url := os.Getenv("GTLIB_TEST_NATS_URL")
	if url == "" {
		t.Skip("GTLIB_TEST_NATS_URL not set")
	}

	cfg := DefaultConfig()
	cfg.URL = url
	cfg.RegistrySubject = "gtlib.test.registry." + t.Name()
	cfg.SubjectPrefix = "gtlib.test.svc"

	conn, err := nats.Connect(url)
	require.NoError(t, err)
	defer conn.Close()

	const wm Handle = 7
	_, err = conn.Subscribe(cfg.RegistrySubject, func(m *nats.Msg) {
		if string(m.Data) == DefaultService {
			_ = m.Respond(EncodeHandle(wm))
			return
		}
		_ = m.Respond(EncodeHandle(0))
	})
	require.NoError(t, err)

	got := make(chan *nats.Msg, 1)
	_, err = conn.Subscribe(fmt.Sprintf("%s.%d", cfg.SubjectPrefix, wm), func(m *nats.Msg) {
		got <- m
		if m.Reply != "" {
			_ = m.Respond(nil)
		}
	})
	require.NoError(t, err)
	require.NoError(t, conn.Flush())

	tr, err := DialNATS(cfg)
	require.NoError(t, err)
	defer tr.Close()

	c := NewClient(tr, WithFeedback(true))
	require.NoError(t, c.Connect(context.Background()))
	require.NoError(t, c.SendMsg(context.Background(), MsgDrawChar, 5, []byte{1, 2}))

	select {
	case m := <-got:
		assert.Equal(t, "2", m.Header.Get(HeaderTag))
		assert.Equal(t, tr.ID(), m.Header.Get(HeaderSender))
		parsed, err := ParseMessage(m.Data)
		require.NoError(t, err)
		assert.Equal(t, uint32(5), parsed.WindowID)
	case <-time.After(2 * time.Second):
		t.Fatal("message not delivered")
	}

	missing := NewClient(tr, WithService("nobody"))
	assert.ErrorIs(t, missing.Connect(context.Background()), ErrServiceNotFound)
}
