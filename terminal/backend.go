package terminal

import "time"

// Backend abstracts platform-specific terminal operations.
// Session owns one Backend and drives it from a single goroutine.
type Backend interface {
	// Lifecycle
	// Init captures the current mode and switches input to non-canonical, no-echo.
	Init() error
	// Fini restores the mode captured by Init.
	Fini()

	// Capabilities
	// Size reports columns and rows; ok is false when the device cannot be queried.
	Size() (width, height int, ok bool)

	// I/O
	// Write writes raw bytes to the terminal output.
	Write(p []byte) (int, error)

	// Poll waits until input is readable. Negative timeout waits indefinitely,
	// zero returns immediately. Returns false when the timeout expired.
	Poll(timeout time.Duration) (bool, error)

	// Read performs a single read of whatever input is pending, up to len(p).
	Read(p []byte) (int, error)
}
