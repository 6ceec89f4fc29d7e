package parameter

import "time"

// Host Loop & Engine Timing
const (
	// FrameUpdateInterval is the host frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// SessionTimerInterval is the cadence of the countdown and play timer
	SessionTimerInterval = time.Second

	// MaxTickDelta caps the delta applied to motion after a host stall
	MaxTickDelta = 250 * time.Millisecond

	// AcquireTimeout bounds model load and capture acquisition during initialization
	AcquireTimeout = 15 * time.Second

	// DetectFailureLogInterval rate-limits transient detection failure logs
	DetectFailureLogInterval = time.Second
)

// Event Limits
const (
	// EventQueueCapacity is the initial capacity of the per-tick event queue
	EventQueueCapacity = 64

	// EventSubscriberLimit is the maximum number of presentation subscribers
	EventSubscriberLimit = 32
)

// Play Field (logical units, matches a 640x480 capture)
const (
	FieldWidth  = 640.0
	FieldHeight = 480.0
)
