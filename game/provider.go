package game

import (
	"context"
	"errors"

	"github.com/lixenwraith/facefall/component"
)

// Initialization failures; Start wraps the provider error with one of these
var (
	ErrPermissionDenied = errors.New("capture permission denied")
	ErrDeviceNotFound   = errors.New("capture device not found")
	ErrUnsupported      = errors.New("capture unsupported")
	ErrModelLoad        = errors.New("detector model load failed")
	ErrAssetLoad        = errors.New("asset preload failed")
)

// Lifecycle misuse
var (
	ErrSessionActive = errors.New("session already active")
	ErrSessionClosed = errors.New("session closed during start")
)

// Frame is an opaque capture frame passed from the stream to the detector
type Frame any

// Stream yields the most recent capture frame
type Stream interface {
	CurrentFrame() Frame
}

// CaptureProvider owns the capture device
// Acquire fails with ErrPermissionDenied, ErrDeviceNotFound or ErrUnsupported (possibly wrapped)
type CaptureProvider interface {
	Acquire(ctx context.Context) (Stream, error)
	Release() error
}

// RegionDetector finds body regions in a frame
// A Detect error or nil slice means no regions this tick
type RegionDetector interface {
	IsModelReady() bool
	LoadModel(ctx context.Context) error
	Detect(frame Frame) ([]component.Region, error)
}

// AssetLoader preloads presentation assets during Initializing
type AssetLoader interface {
	Preload(ctx context.Context) error
}
