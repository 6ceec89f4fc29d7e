package event

import (
	"github.com/lixenwraith/facefall/parameter"
)

// EventQueue buffers events produced during one tick
// Single goroutine: the engine pushes during a tick and consumes at the flush point
// Events are never dropped; the buffer grows past its initial capacity
type EventQueue struct {
	events []GameEvent
	spare  []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]GameEvent, 0, parameter.EventQueueCapacity),
		spare:  make([]GameEvent, 0, parameter.EventQueueCapacity),
	}
}

// Push appends an event
func (eq *EventQueue) Push(ev GameEvent) {
	eq.events = append(eq.events, ev)
}

// Consume returns pending events in FIFO order and empties the queue
// The returned slice is valid until the next Consume
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	out := eq.events
	eq.events = eq.spare[:0]
	eq.spare = out
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	return len(eq.events)
}

// Clear drops pending events
func (eq *EventQueue) Clear() {
	eq.events = eq.events[:0]
}
