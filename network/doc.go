// Package network connects gtlib clients to an external window manager.
//
// The window manager is found by name through a Locator and addressed by
// Handle through a Sender. Every message is framed as
// [Type:4][WindowID:4][Data...], little endian. NATSTransport carries
// messages over NATS subjects; MemoryTransport keeps everything in process.
// RemoteCanvas lets the tui renderer draw into a window-manager window.
package network
