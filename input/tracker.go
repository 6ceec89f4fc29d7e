package input

import (
	"context"
	"log"
	"sync"

	"github.com/lixenwraith/facefall/component"
	"github.com/lixenwraith/facefall/config"
	"github.com/lixenwraith/facefall/game"
	"github.com/lixenwraith/facefall/parameter"
)

// KeyboardTracker is a region detector whose single face box is steered by the player
// Safe for concurrent use by the input loop and the engine tick
type KeyboardTracker struct {
	mu    sync.Mutex
	field config.Field
	box   component.Region
	ready bool
}

// NewKeyboardTracker creates a tracker with the box centered near the bottom of the field
func NewKeyboardTracker(field config.Field) *KeyboardTracker {
	w := min(parameter.TrackerWidth, field.Width)
	h := min(parameter.TrackerHeight, field.Height)
	return &KeyboardTracker{
		field: field,
		box: component.Region{
			X:      (field.Width - w) / 2,
			Y:      field.Height - h,
			Width:  w,
			Height: h,
		},
	}
}

// IsModelReady implements game.RegionDetector
func (t *KeyboardTracker) IsModelReady() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ready
}

// LoadModel implements game.RegionDetector, there is nothing to load beyond honoring ctx
func (t *KeyboardTracker) LoadModel(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	t.ready = true
	t.mu.Unlock()
	log.Printf("[input] keyboard tracker ready")
	return nil
}

// Detect implements game.RegionDetector
// The frame is ignored, the box is wherever the player left it
func (t *KeyboardTracker) Detect(game.Frame) ([]component.Region, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return []component.Region{t.box}, nil
}

// Box returns the current face box
func (t *KeyboardTracker) Box() component.Region {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.box
}

// Move shifts the box by whole steps, clamped to the field
func (t *KeyboardTracker) Move(dx, dy int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.box.X += float64(dx) * parameter.TrackerStep
	t.box.Y += float64(dy) * parameter.TrackerStep
	t.clamp()
}

// CenterOn moves the box center to a field point, clamped to the field
func (t *KeyboardTracker) CenterOn(x, y float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.box.X = x - t.box.Width/2
	t.box.Y = y - t.box.Height/2
	t.clamp()
}

// Resize grows (positive) or shrinks (negative) the box around its center by whole steps
func (t *KeyboardTracker) Resize(steps int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cx := t.box.X + t.box.Width/2
	cy := t.box.Y + t.box.Height/2
	d := float64(steps) * parameter.TrackerResizeStep

	t.box.Width = clampSize(t.box.Width+d, t.field.Width)
	t.box.Height = clampSize(t.box.Height+d, t.field.Height)
	t.box.X = cx - t.box.Width/2
	t.box.Y = cy - t.box.Height/2
	t.clamp()
}

// Apply executes a tracker intent, returning false for intents it does not handle
func (t *KeyboardTracker) Apply(in *Intent) bool {
	switch in.Type {
	case IntentMove:
		t.Move(in.DX, in.DY)
	case IntentGrow:
		t.Resize(1)
	case IntentShrink:
		t.Resize(-1)
	default:
		return false
	}
	return true
}

func (t *KeyboardTracker) clamp() {
	t.box.X = max(0, min(t.box.X, t.field.Width-t.box.Width))
	t.box.Y = max(0, min(t.box.Y, t.field.Height-t.box.Height))
}

func clampSize(v, limit float64) float64 {
	return max(parameter.TrackerMinSize, min(v, parameter.TrackerMaxSize, limit))
}
