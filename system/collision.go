package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/facefall/component"
	"github.com/lixenwraith/facefall/engine"
	"github.com/lixenwraith/facefall/event"
	"github.com/lixenwraith/facefall/parameter"
)

// CollisionSystem retires items overlapping detected regions and dispatches their effects
type CollisionSystem struct {
	world *engine.World
	score *ScoreController

	statCaught [component.ItemTypeCount]*atomic.Int64
}

// NewCollisionSystem creates the collision resolver
func NewCollisionSystem(world *engine.World, score *ScoreController) *CollisionSystem {
	s := &CollisionSystem{world: world, score: score}
	for t := component.ItemType(0); t < component.ItemTypeCount; t++ {
		s.statCaught[t] = world.Status.Ints.Get("collision." + t.String())
	}
	return s
}

func (s *CollisionSystem) Name() string { return "collision" }

// Priority returns the system's priority (after motion)
func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionSystem) Init() {}

// Update tests every region against every live item
// An item retired by one region is not seen by the next
func (s *CollisionSystem) Update(_ time.Time, _ time.Duration) {
	defer s.world.PruneInactive()

	for _, r := range s.world.Regions {
		area := r.Area()
		for _, it := range s.world.Items {
			if !it.Active {
				continue
			}
			inset := s.world.Config.Profile(it.Type).HitInset
			if !it.HitArea(inset).Overlaps(area) {
				continue
			}

			it.Active = false
			s.statCaught[it.Type].Add(1)
			s.world.Emit(event.EventItemCaught, &event.ItemPayload{
				ID: it.ID, Type: it.Type, X: it.X, Y: it.Y, Speed: it.Speed,
			})
			s.score.Apply(it)

			if !s.world.Playing() {
				return
			}
		}
	}
}
