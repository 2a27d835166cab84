package network

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/lixenwraith/gtlib/terminal"
)

// MessageType identifies the semantic meaning of a window-manager message
type MessageType uint32

const (
	// Window lifecycle
	MsgCreateWindow MessageType = iota
	MsgDestroyWindow

	// Drawing
	MsgDrawChar
	MsgDrawString
	MsgDrawBorder
	MsgClearWindow
	MsgRefreshWindow

	// Input, window manager to client
	MsgEventKey
	MsgEventMouse
)

var messageTypeNames = [...]string{
	MsgCreateWindow:  "create_window",
	MsgDestroyWindow: "destroy_window",
	MsgDrawChar:      "draw_char",
	MsgDrawString:    "draw_string",
	MsgDrawBorder:    "draw_border",
	MsgClearWindow:   "clear_window",
	MsgRefreshWindow: "refresh_window",
	MsgEventKey:      "event_key",
	MsgEventMouse:    "event_mouse",
}

func (t MessageType) String() string {
	if int(t) < len(messageTypeNames) {
		return messageTypeNames[t]
	}
	return fmt.Sprintf("message_type(%d)", uint32(t))
}

// HeaderSize precedes every payload: [Type:4][WindowID:4], little endian
const HeaderSize = 8

// MaxPayload bounds a full encoded message, header included
const MaxPayload = 64 * 1024

// Message is one window-manager message
type Message struct {
	Type     MessageType
	WindowID uint32
	Data     []byte
}

// NewMessage creates a message for the given window
func NewMessage(t MessageType, windowID uint32, data []byte) *Message {
	return &Message{
		Type:     t,
		WindowID: windowID,
		Data:     data,
	}
}

// Size returns the encoded length
func (m *Message) Size() int {
	return HeaderSize + len(m.Data)
}

// Bytes returns the encoded message
func (m *Message) Bytes() ([]byte, error) {
	if m.Size() > MaxPayload {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, m.Size())
	}
	buf := make([]byte, HeaderSize, m.Size())
	binary.LittleEndian.PutUint32(buf[0:4], uint32(m.Type))
	binary.LittleEndian.PutUint32(buf[4:8], m.WindowID)
	return append(buf, m.Data...), nil
}

// Encode writes the message to w. The transport frames it; no length prefix is written.
func (m *Message) Encode(w io.Writer) error {
	buf, err := m.Bytes()
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// ParseMessage decodes one framed message. Data aliases p.
func ParseMessage(p []byte) (*Message, error) {
	if len(p) < HeaderSize {
		return nil, fmt.Errorf("%w: %d byte message", ErrShortMessage, len(p))
	}
	m := &Message{
		Type:     MessageType(binary.LittleEndian.Uint32(p[0:4])),
		WindowID: binary.LittleEndian.Uint32(p[4:8]),
	}
	if len(p) > HeaderSize {
		m.Data = p[HeaderSize:]
	}
	return m, nil
}

// Cell is the MsgDrawChar payload in absolute coordinates
// Wire: [X:4][Y:4][Rune:4][Fg:1][Bg:1][Attr:1]
type Cell struct {
	X, Y int32
	Ch   rune
	Fg   terminal.Color
	Bg   terminal.Color
	Attr terminal.Attr
}

const cellSize = 15

// MarshalBinary encodes the cell payload
func (c Cell) MarshalBinary() ([]byte, error) {
	buf := make([]byte, cellSize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(c.X))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(c.Y))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(c.Ch))
	buf[12] = byte(c.Fg)
	buf[13] = byte(c.Bg)
	buf[14] = byte(c.Attr)
	return buf, nil
}

// UnmarshalBinary decodes a cell payload
func (c *Cell) UnmarshalBinary(p []byte) error {
	if len(p) < cellSize {
		return fmt.Errorf("%w: cell needs %d bytes, got %d", ErrShortMessage, cellSize, len(p))
	}
	c.X = int32(binary.LittleEndian.Uint32(p[0:4]))
	c.Y = int32(binary.LittleEndian.Uint32(p[4:8]))
	c.Ch = rune(binary.LittleEndian.Uint32(p[8:12]))
	c.Fg = terminal.Color(p[12])
	c.Bg = terminal.Color(p[13])
	c.Attr = terminal.Attr(p[14])
	return nil
}

// Area is the MsgClearWindow payload: [X:4][Y:4][W:4][H:4]
type Area struct {
	X, Y          int32
	Width, Height int32
}

const areaSize = 16

func (a Area) MarshalBinary() ([]byte, error) {
	buf := make([]byte, areaSize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(a.X))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(a.Y))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(a.Width))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(a.Height))
	return buf, nil
}

func (a *Area) UnmarshalBinary(p []byte) error {
	if len(p) < areaSize {
		return fmt.Errorf("%w: area needs %d bytes, got %d", ErrShortMessage, areaSize, len(p))
	}
	a.X = int32(binary.LittleEndian.Uint32(p[0:4]))
	a.Y = int32(binary.LittleEndian.Uint32(p[4:8]))
	a.Width = int32(binary.LittleEndian.Uint32(p[8:12]))
	a.Height = int32(binary.LittleEndian.Uint32(p[12:16]))
	return nil
}
