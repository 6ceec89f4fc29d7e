package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/facefall/status"
)

type handleKind uint8

const (
	kindInterval handleKind = iota
	kindFrame
)

// Handle is a cancellable scheduled callback
// Ids are never reused, a cancelled handle never runs again
type Handle struct {
	id        uint64
	kind      handleKind
	interval  time.Duration
	next      time.Time
	onTick    func(due time.Time)
	onFrame   func(now time.Time, dt time.Duration)
	cancelled bool
}

// ID returns the handle's unique identity
func (h *Handle) ID() uint64 {
	return h.id
}

// Cancel stops future invocations, safe to call repeatedly and from inside the callback
func (h *Handle) Cancel() {
	if h != nil {
		h.cancelled = true
	}
}

// Active reports whether the handle may still run
func (h *Handle) Active() bool {
	return h != nil && !h.cancelled
}

// Scheduler drives interval and per-frame callbacks from an externally supplied clock
// Single goroutine: the host calls Advance once per frame
//
// Order per Advance:
//  1. Due interval callbacks, earliest due first, repeated until none are due (catch-up)
//  2. Frame callbacks in registration order, with the delta since the previous Advance
type Scheduler struct {
	handles []*Handle
	nextID  uint64

	last    time.Time
	started bool

	statAdvances *atomic.Int64
	statCatchUp  *atomic.Int64
}

// NewScheduler creates a scheduler reporting to the metrics registry
func NewScheduler(reg *status.Registry) *Scheduler {
	return &Scheduler{
		nextID:       1,
		statAdvances: reg.Ints.Get("scheduler.advances"),
		statCatchUp:  reg.Ints.Get("scheduler.catchup"),
	}
}

func (s *Scheduler) add(h *Handle) *Handle {
	h.id = s.nextID
	s.nextID++
	s.handles = append(s.handles, h)
	return h
}

// Every schedules fn at start+interval, start+2*interval, ...
// fn receives the due time, not the time Advance was called with
func (s *Scheduler) Every(start time.Time, interval time.Duration, fn func(due time.Time)) *Handle {
	if interval <= 0 {
		panic("scheduler: non-positive interval")
	}
	return s.add(&Handle{
		kind:     kindInterval,
		interval: interval,
		next:     start.Add(interval),
		onTick:   fn,
	})
}

// Frame schedules fn on every Advance
func (s *Scheduler) Frame(fn func(now time.Time, dt time.Duration)) *Handle {
	return s.add(&Handle{kind: kindFrame, onFrame: fn})
}

// Advance runs everything due at now
func (s *Scheduler) Advance(now time.Time) {
	s.statAdvances.Add(1)

	var dt time.Duration
	if s.started {
		dt = now.Sub(s.last)
	}
	s.last = now
	s.started = true

	// Frame handles added by callbacks during this pass start on the next Advance
	frames := len(s.handles)

	fired := 0
	for {
		h := s.nextDue(now)
		if h == nil {
			break
		}
		due := h.next
		h.next = h.next.Add(h.interval)
		h.onTick(due)
		fired++
	}
	if fired > 1 {
		s.statCatchUp.Add(int64(fired - 1))
	}

	for i := 0; i < frames; i++ {
		h := s.handles[i]
		if h.kind != kindFrame || h.cancelled {
			continue
		}
		h.onFrame(now, dt)
	}

	s.compact()
}

func (s *Scheduler) nextDue(now time.Time) *Handle {
	var best *Handle
	for _, h := range s.handles {
		if h.kind != kindInterval || h.cancelled || h.next.After(now) {
			continue
		}
		if best == nil || h.next.Before(best.next) {
			best = h
		}
	}
	return best
}

func (s *Scheduler) compact() {
	live := s.handles[:0]
	for _, h := range s.handles {
		if !h.cancelled {
			live = append(live, h)
		}
	}
	for i := len(live); i < len(s.handles); i++ {
		s.handles[i] = nil
	}
	s.handles = live
}

// CancelAll cancels every handle
func (s *Scheduler) CancelAll() {
	for _, h := range s.handles {
		h.cancelled = true
	}
	s.compact()
}

// Len returns the number of live handles
func (s *Scheduler) Len() int {
	n := 0
	for _, h := range s.handles {
		if !h.cancelled {
			n++
		}
	}
	return n
}
