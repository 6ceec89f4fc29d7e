package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/facefall/component"
	"github.com/lixenwraith/facefall/engine"
	"github.com/lixenwraith/facefall/event"
	"github.com/lixenwraith/facefall/parameter"
)

// MotionSystem moves items down by speed times delta and retires those leaving the field
type MotionSystem struct {
	world *engine.World

	statEscaped *atomic.Int64
}

// NewMotionSystem creates the entity update loop
func NewMotionSystem(world *engine.World) *MotionSystem {
	return &MotionSystem{
		world:       world,
		statEscaped: world.Status.Ints.Get("motion.escaped"),
	}
}

func (s *MotionSystem) Name() string { return "motion" }

// Priority returns the system's priority (after spawn, before collision)
func (s *MotionSystem) Priority() int {
	return parameter.PriorityMotion
}

func (s *MotionSystem) Init() {}

// Update advances every live item and prunes retired ones before collision runs
func (s *MotionSystem) Update(_ time.Time, dt time.Duration) {
	fieldHeight := s.world.Config.Field.Height

	for _, it := range s.world.Items {
		if !Advance(it, dt, fieldHeight) {
			continue
		}
		if !it.Active {
			s.statEscaped.Add(1)
			s.world.Emit(event.EventItemEscaped, &event.ItemPayload{
				ID: it.ID, Type: it.Type, X: it.X, Y: it.Y, Speed: it.Speed,
			})
		}
	}

	s.world.PruneInactive()
}

// Advance moves one item and reports whether it was live before the move
// Inactive items are never moved or revived
func Advance(it *component.Item, dt time.Duration, fieldHeight float64) bool {
	if !it.Active {
		return false
	}
	it.Y += it.Speed * dt.Seconds()
	if it.Y+it.Height > fieldHeight {
		it.Active = false
	}
	return true
}
