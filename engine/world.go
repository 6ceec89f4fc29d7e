package engine

import (
	"log"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/lixenwraith/facefall/component"
	"github.com/lixenwraith/facefall/config"
	"github.com/lixenwraith/facefall/engine/fsm"
	"github.com/lixenwraith/facefall/event"
	"github.com/lixenwraith/facefall/status"
)

// System is one stage of the Playing tick
type System interface {
	Name() string
	// Priority orders systems, lower runs first
	Priority() int
	// Init resets per-session state, called on every Playing entry
	Init()
	// Update runs one tick with a clamped, non-negative delta
	Update(now time.Time, dt time.Duration)
}

// World owns the session aggregate and the live item set
// All access happens on the engine goroutine
type World struct {
	Config  *config.Table
	Session *GameSession
	Machine *fsm.Machine[*World]

	Items   []*component.Item
	Regions []component.Region

	Events *event.EventQueue
	Status *status.Registry
	Rand   *rand.Rand

	Tick       int64
	nextItemID uint64

	systems []System
}

// NewWorld creates a world in Idle with no session
func NewWorld(tbl *config.Table, reg *status.Registry, rng *rand.Rand) *World {
	return &World{
		Config:     tbl,
		Machine:    fsm.NewSessionMachine[*World](),
		Events:     event.NewEventQueue(),
		Status:     reg,
		Rand:       rng,
		nextItemID: 1,
	}
}

// AddSystem registers a system and keeps the list sorted by priority
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	slices.SortStableFunc(w.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
}

// Systems returns the registered systems in execution order
func (w *World) Systems() []System {
	return w.systems
}

// InitSystems resets every system for a new Playing entry
func (w *World) InitSystems() {
	for _, s := range w.systems {
		s.Init()
	}
}

// Update runs systems in order, stopping as soon as the session leaves Playing
func (w *World) Update(now time.Time, dt time.Duration) {
	w.Tick++
	for _, s := range w.systems {
		if !w.Playing() {
			return
		}
		s.Update(now, dt)
	}
}

// State returns the active session state
func (w *World) State() fsm.StateID {
	return w.Machine.State()
}

// Playing reports whether the session is in the Playing state
func (w *World) Playing() bool {
	return w.Session != nil && w.Machine.State() == fsm.StatePlaying
}

// Emit queues an event for the end-of-tick flush
func (w *World) Emit(et event.EventType, payload any) {
	w.Events.Push(event.GameEvent{Type: et, Payload: payload, Tick: w.Tick})
}

// EndSession records the reason and moves Playing to GameOver
// No-op outside Playing, the first reason wins
func (w *World) EndSession(reason string) {
	if !w.Playing() {
		return
	}
	w.Session.EndReason = reason
	if err := w.Machine.Transition(w, fsm.StateGameOver); err != nil {
		log.Printf("[world] end session: %v", err)
	}
}

// SpawnItem assigns an id and adds the item to the live set
func (w *World) SpawnItem(it *component.Item) *component.Item {
	it.ID = w.nextItemID
	w.nextItemID++
	it.Active = true
	w.Items = append(w.Items, it)
	return it
}

// LiveCount returns the number of active items of a type
func (w *World) LiveCount(t component.ItemType) int {
	n := 0
	for _, it := range w.Items {
		if it.Active && it.Type == t {
			n++
		}
	}
	return n
}

// PruneInactive removes retired items from the live set
func (w *World) PruneInactive() {
	w.Items = slices.DeleteFunc(w.Items, func(it *component.Item) bool {
		return !it.Active
	})
}

// ClearItems drops every item
func (w *World) ClearItems() {
	clear(w.Items)
	w.Items = w.Items[:0]
}

// SetRegions replaces the per-tick region list
func (w *World) SetRegions(regions []component.Region) {
	w.Regions = append(w.Regions[:0], regions...)
}
