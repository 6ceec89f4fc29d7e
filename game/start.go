package game

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/facefall/engine"
	"github.com/lixenwraith/facefall/engine/fsm"
)

// Start runs a new session from Idle through asset preload, model load and
// capture acquisition into Countdown; Playing follows on the timer cadence
// Any failure moves the session to Error, releases what was acquired and returns the wrapped cause
func (g *Game) Start(ctx context.Context) error {
	ctx, cancel := startTimeout(ctx)
	defer cancel()

	g.mu.Lock()
	if st := g.world.State(); st != fsm.StateIdle {
		g.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrSessionActive, fsm.SessionStateName(st))
	}
	if err := g.transition(fsm.StateInitializing); err != nil {
		g.mu.Unlock()
		return err
	}
	session := g.world.Session
	g.flushLocked()

	// Initializing: optional asset preload
	if g.opts.Assets != nil {
		if err := g.opts.Assets.Preload(ctx); err != nil {
			return g.fail(session, fmt.Errorf("%w: %w", ErrAssetLoad, err))
		}
	}

	if err := g.advanceStart(session, fsm.StateInitializing, fsm.StateLoadingModel); err != nil {
		return err
	}

	// LoadingModel: skipped when the detector is already warm
	if !g.opts.Detector.IsModelReady() {
		if err := g.opts.Detector.LoadModel(ctx); err != nil {
			return g.fail(session, fmt.Errorf("%w: %w", ErrModelLoad, err))
		}
	}

	if err := g.advanceStart(session, fsm.StateLoadingModel, fsm.StateAcquiringCapture); err != nil {
		return err
	}

	// AcquiringCapture
	stream, err := g.opts.Capture.Acquire(ctx)
	if err != nil {
		return g.fail(session, classifyCapture(err))
	}

	g.mu.Lock()
	if g.world.Session != session || g.world.State() != fsm.StateAcquiringCapture {
		g.mu.Unlock()
		if err := g.opts.Capture.Release(); err != nil {
			log.Printf("[game] release capture after close: %v", err)
		}
		return ErrSessionClosed
	}
	g.stream = stream
	g.captureHeld = true
	err = g.transition(fsm.StateCountdown)
	g.flushLocked()
	return err
}

// advanceStart re-takes the lock after a blocking step and moves on if the session survived
func (g *Game) advanceStart(session *engine.GameSession, from, to fsm.StateID) error {
	g.mu.Lock()
	if g.world.Session != session || g.world.State() != from {
		g.mu.Unlock()
		return ErrSessionClosed
	}
	err := g.transition(to)
	g.flushLocked()
	return err
}

// fail moves a still-current session to Error and returns cause
func (g *Game) fail(session *engine.GameSession, cause error) error {
	g.mu.Lock()
	if g.world.Session != session {
		g.mu.Unlock()
		return ErrSessionClosed
	}
	g.lastErr = cause
	if err := g.transition(fsm.StateError); err != nil {
		g.mu.Unlock()
		return errors.Join(cause, err)
	}
	g.flushLocked()
	return cause
}

// flushLocked drains events, unlocks and dispatches
func (g *Game) flushLocked() {
	b := g.drain()
	g.mu.Unlock()
	g.dispatch(b)
}

// classifyCapture maps provider errors onto the capture failure kinds
func classifyCapture(err error) error {
	switch {
	case errors.Is(err, ErrPermissionDenied),
		errors.Is(err, ErrDeviceNotFound),
		errors.Is(err, ErrUnsupported),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return fmt.Errorf("acquire capture: %w", err)
	}
	return fmt.Errorf("acquire capture: %w: %w", ErrUnsupported, err)
}
