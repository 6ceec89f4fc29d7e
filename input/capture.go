package input

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/facefall/game"
)

// TerminalFrame describes the terminal at the time it was sampled
type TerminalFrame struct {
	Seq    uint64
	Width  int
	Height int
}

// TerminalCapture stands in for a camera, the terminal itself is the capture device
type TerminalCapture struct {
	screen tcell.Screen

	mu   sync.Mutex
	held *terminalStream
}

// NewTerminalCapture creates a capture provider over a screen, nil reports no device
func NewTerminalCapture(screen tcell.Screen) *TerminalCapture {
	return &TerminalCapture{screen: screen}
}

// Acquire implements game.CaptureProvider
func (c *TerminalCapture) Acquire(ctx context.Context) (game.Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.screen == nil {
		return nil, fmt.Errorf("terminal capture: %w", game.ErrDeviceNotFound)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.held == nil {
		c.held = &terminalStream{screen: c.screen}
		log.Printf("[input] terminal capture acquired")
	}
	return c.held, nil
}

// Release implements game.CaptureProvider, idempotent
func (c *TerminalCapture) Release() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.held != nil {
		log.Printf("[input] terminal capture released after %d frames", c.held.seq.Load())
		c.held = nil
	}
	return nil
}

// Held reports whether a stream is outstanding
func (c *TerminalCapture) Held() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.held != nil
}

type terminalStream struct {
	screen tcell.Screen
	seq    atomic.Uint64
}

// CurrentFrame implements game.Stream
func (s *terminalStream) CurrentFrame() game.Frame {
	w, h := s.screen.Size()
	return TerminalFrame{Seq: s.seq.Add(1), Width: w, Height: h}
}
