package network

import (
	"time"
)

// Config holds event stream configuration
type Config struct {
	// Address to bind, empty disables the stream
	Address string

	// Path the websocket endpoint is mounted on
	Path string

	// Connection limits
	MaxPeers int

	// Timing
	WriteTimeout    time.Duration
	PongTimeout     time.Duration
	PingInterval    time.Duration
	ShutdownTimeout time.Duration

	// Buffer sizes
	ReadLimit       int64
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int
}

// DefaultConfig returns production-safe defaults
func DefaultConfig() *Config {
	return &Config{
		Address:         "",
		Path:            "/events",
		MaxPeers:        16,
		WriteTimeout:    10 * time.Second,
		PongTimeout:     60 * time.Second,
		PingInterval:    54 * time.Second, // Must be less than PongTimeout
		ShutdownTimeout: 2 * time.Second,
		ReadLimit:       512,
		ReadBufferSize:  1024,
		WriteBufferSize: 16 * 1024,
		SendQueueSize:   256,
	}
}
