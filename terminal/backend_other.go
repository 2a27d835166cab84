//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

import (
	"errors"
	"time"
)

var errUnsupportedPlatform = errors.New("terminal: raw mode not supported on this platform")

type unsupportedBackend struct{}

func newBackend() Backend {
	return unsupportedBackend{}
}

func (unsupportedBackend) Init() error                      { return errUnsupportedPlatform }
func (unsupportedBackend) Fini()                            {}
func (unsupportedBackend) Size() (int, int, bool)           { return 0, 0, false }
func (unsupportedBackend) Write(p []byte) (int, error)      { return 0, errUnsupportedPlatform }
func (unsupportedBackend) Poll(time.Duration) (bool, error) { return false, errUnsupportedPlatform }
func (unsupportedBackend) Read(p []byte) (int, error)       { return 0, errUnsupportedPlatform }

func resetTerminalMode() {}
