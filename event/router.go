package event

import (
	"errors"
	"log"

	"github.com/lixenwraith/facefall/parameter"
)

// ErrSubscriberLimit is returned when the router is full
var ErrSubscriberLimit = errors.New("event subscriber limit reached")

// Handler processes routed events
// An empty EventTypes subscribes to every event
type Handler interface {
	HandleEvent(ev GameEvent)
	EventTypes() []EventType
}

// HandlerFunc adapts a function into a Handler receiving every event
type HandlerFunc func(ev GameEvent)

func (f HandlerFunc) HandleEvent(ev GameEvent) { f(ev) }
func (f HandlerFunc) EventTypes() []EventType  { return nil }

type subscription struct {
	id      int
	handler Handler
	types   map[EventType]bool // nil = all
}

// Router dispatches flushed events to subscribers
//
// Architecture:
//   - Single-threaded dispatch on the engine goroutine
//   - Handlers are invoked in registration order
//   - A panicking handler is logged and skipped, the remaining handlers still run
type Router struct {
	subs   []subscription
	nextID int
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{}
}

// Register adds a handler and returns a function removing it
func (r *Router) Register(h Handler) (func(), error) {
	if len(r.subs) >= parameter.EventSubscriberLimit {
		return nil, ErrSubscriberLimit
	}

	sub := subscription{id: r.nextID, handler: h}
	r.nextID++
	if types := h.EventTypes(); len(types) > 0 {
		sub.types = make(map[EventType]bool, len(types))
		for _, t := range types {
			sub.types[t] = true
		}
	}
	r.subs = append(r.subs, sub)

	id := sub.id
	return func() { r.remove(id) }, nil
}

func (r *Router) remove(id int) {
	for i, s := range r.subs {
		if s.id == id {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			return
		}
	}
}

// Dispatch routes events in FIFO order, all handlers per event before the next event
func (r *Router) Dispatch(events []GameEvent) {
	for _, ev := range events {
		for _, s := range r.subs {
			if s.types != nil && !s.types[ev.Type] {
				continue
			}
			r.deliver(s.handler, ev)
		}
	}
}

func (r *Router) deliver(h Handler, ev GameEvent) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[event] handler panic on %s: %v", ev.Type, rec)
		}
	}()
	h.HandleEvent(ev)
}

// HandlerCount returns the number of registered handlers
func (r *Router) HandlerCount() int {
	return len(r.subs)
}
