// Package terminaltest provides an in-memory terminal.Backend for tests.
package terminaltest

import (
	"bytes"
	"errors"
	"sync"
	"time"
)

// Read is one scripted input chunk; Err, when set, is returned instead of data
type Read struct {
	Data []byte
	Err  error
}

// Backend records output and replays scripted input.
// Poll reports ready while scripted reads remain; otherwise it times out
// (a negative timeout with no input returns ErrNoInput rather than blocking).
type Backend struct {
	mu sync.Mutex

	Width, Height int // Reported size; zero means "unavailable"
	InitErr       error
	PollErr       error

	InitCalls int
	FiniCalls int
	LastPoll  time.Duration

	out   bytes.Buffer
	reads []Read
}

// ErrNoInput is returned by Poll when asked to wait forever with nothing scripted
var ErrNoInput = errors.New("terminaltest: no scripted input")

// New returns a backend reporting the given size
func New(width, height int) *Backend {
	return &Backend{Width: width, Height: height}
}

// Queue appends scripted reads
func (b *Backend) Queue(reads ...Read) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reads = append(b.reads, reads...)
}

// QueueBytes appends one read per argument
func (b *Backend) QueueBytes(chunks ...[]byte) {
	for _, c := range chunks {
		b.Queue(Read{Data: c})
	}
}

// Output returns everything written so far
func (b *Backend) Output() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.out.String()
}

// Reset discards recorded output
func (b *Backend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.out.Reset()
}

func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.InitCalls++
	return b.InitErr
}

func (b *Backend) Fini() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.FiniCalls++
}

func (b *Backend) Size() (int, int, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Width <= 0 || b.Height <= 0 {
		return 0, 0, false
	}
	return b.Width, b.Height, true
}

func (b *Backend) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.out.Write(p)
}

func (b *Backend) Poll(timeout time.Duration) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.LastPoll = timeout
	if b.PollErr != nil {
		return false, b.PollErr
	}
	if len(b.reads) > 0 {
		return true, nil
	}
	if timeout < 0 {
		return false, ErrNoInput
	}
	return false, nil
}

func (b *Backend) Read(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.reads) == 0 {
		return 0, nil
	}
	r := b.reads[0]
	b.reads = b.reads[1:]
	if r.Err != nil {
		return 0, r.Err
	}
	return copy(p, r.Data), nil
}
