package network

import "errors"

// Service lookup and delivery failures, categorized the way the window
// manager's message service reports them
var (
	ErrServiceNotFound    = errors.New("network: service not found")
	ErrServiceUnavailable = errors.New("network: message service unavailable")
	ErrPermissionDenied   = errors.New("network: permission denied")
	ErrTimeout            = errors.New("network: timeout")
	ErrPayloadTooLarge    = errors.New("network: payload too large")
	ErrUnknown            = errors.New("network: unknown failure")
)

// Client state failures
var (
	ErrNotConnected = errors.New("network: not connected to window manager")
	ErrUnsupported  = errors.New("network: operation not supported")
	ErrShortMessage = errors.New("network: short message")
)
