package network

import "time"

// DefaultService is the name the window manager registers under
const DefaultService = "window_manager"

// Config holds window-manager connection configuration
type Config struct {
	// Server URL for the NATS transport
	URL string

	// Service name resolved by Client.Connect
	Service string

	// Subjects: lookups go to RegistrySubject, messages to SubjectPrefix.<handle>
	RegistrySubject string
	SubjectPrefix   string

	// Timing
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
	ReconnectWait  time.Duration

	// Remote canvas size reported to the renderer
	Width, Height int
}

// DefaultConfig returns defaults for a local server
func DefaultConfig() *Config {
	return &Config{
		URL:             "nats://127.0.0.1:4222",
		Service:         DefaultService,
		RegistrySubject: "gtlib.registry.lookup",
		SubjectPrefix:   "gtlib.svc",
		ConnectTimeout:  5 * time.Second,
		RequestTimeout:  2 * time.Second,
		ReconnectWait:   time.Second,
		Width:           80,
		Height:          24,
	}
}
