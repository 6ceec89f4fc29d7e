package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/facefall/component"
	"github.com/lixenwraith/facefall/engine"
	"github.com/lixenwraith/facefall/event"
	"github.com/lixenwraith/facefall/parameter"
)

// SpawnSystem creates items on the weighted draw schedule and rolls for the rare bonus
type SpawnSystem struct {
	world      *engine.World
	difficulty *Difficulty

	// Cached metric pointers
	statCreated *atomic.Int64
	statMiss    *atomic.Int64
	statRare    *atomic.Int64
}

// NewSpawnSystem creates the spawn controller
func NewSpawnSystem(world *engine.World, difficulty *Difficulty) *SpawnSystem {
	return &SpawnSystem{
		world:       world,
		difficulty:  difficulty,
		statCreated: world.Status.Ints.Get("spawn.created"),
		statMiss:    world.Status.Ints.Get("spawn.miss"),
		statRare:    world.Status.Ints.Get("spawn.rare"),
	}
}

func (s *SpawnSystem) Name() string { return "spawn" }

// Priority returns the system's priority (first stage of the tick)
func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

// Init draws the first spawn time within the initial interval bounds
func (s *SpawnSystem) Init() {
	session := s.world.Session
	if session == nil {
		return
	}
	lo, hi := s.difficulty.IntervalBounds(0)
	session.NextSpawn = session.PlayStart.Add(s.uniformDuration(lo, hi))
}

// Update runs the regular draw when due and the independent rare roll every tick
func (s *SpawnSystem) Update(now time.Time, dt time.Duration) {
	session := s.world.Session

	if !now.Before(session.NextSpawn) {
		s.spawnRegular(now)
	}
	s.spawnRare(dt)
}

// Select returns the item type of the first band whose upper bound exceeds r
func (s *SpawnSystem) Select(r float64) component.ItemType {
	for _, b := range s.world.Config.Bands {
		if r < b.Upper {
			return b.Type
		}
	}
	return component.ItemNone
}

func (s *SpawnSystem) spawnRegular(now time.Time) {
	session := s.world.Session
	elapsed := session.Elapsed

	t := s.Select(s.world.Rand.Float64())
	if !t.Valid() || s.world.LiveCount(t) >= session.Caps[t] {
		s.statMiss.Add(1)
		session.NextSpawn = now.Add(s.world.Config.Spawn.RetryDelay)
		return
	}

	s.create(t, elapsed)
	lo, hi := s.difficulty.IntervalBounds(elapsed)
	session.NextSpawn = now.Add(s.uniformDuration(lo, hi))
}

func (s *SpawnSystem) spawnRare(dt time.Duration) {
	session := s.world.Session
	tbl := s.world.Config

	if session.RareUsed >= session.RareQuota(tbl) {
		return
	}
	if s.world.LiveCount(component.ItemRareBonus) > 0 || session.Caps[component.ItemRareBonus] <= 0 {
		return
	}
	if s.world.Rand.Float64() >= tbl.Spawn.RareChancePerSecond*dt.Seconds() {
		return
	}

	session.RareUsed++
	s.statRare.Add(1)
	s.create(component.ItemRareBonus, session.Elapsed)
}

// create places an item above the field at a random x inside the type's margin
func (s *SpawnSystem) create(t component.ItemType, elapsed float64) *component.Item {
	profile := s.world.Config.Profile(t)
	width := s.world.Config.Field.Width

	lo := profile.SpawnMargin * width
	hi := (1-profile.SpawnMargin)*width - profile.Size
	x := lo
	if hi > lo {
		x = lo + s.world.Rand.Float64()*(hi-lo)
	}

	it := s.world.SpawnItem(&component.Item{
		Type:   t,
		X:      x,
		Y:      -profile.Size,
		Width:  profile.Size,
		Height: profile.Size,
		Speed:  s.difficulty.Speed(t, elapsed),
	})
	s.statCreated.Add(1)

	s.world.Emit(event.EventItemSpawned, &event.ItemPayload{
		ID: it.ID, Type: it.Type, X: it.X, Y: it.Y, Speed: it.Speed,
	})
	return it
}

func (s *SpawnSystem) uniformDuration(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(s.world.Rand.Int64N(int64(hi-lo)+1))
}
