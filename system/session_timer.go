package system

import (
	"time"

	"github.com/lixenwraith/facefall/component"
	"github.com/lixenwraith/facefall/engine"
	"github.com/lixenwraith/facefall/event"
	"github.com/lixenwraith/facefall/parameter"
	"github.com/lixenwraith/facefall/status"
)

// SessionTimer runs on the one-second cadence
// Countdown: displays N..1 then 0 (start); the call after 0 reports play may begin
// Playing: decrements remaining time and raises caps at each milestone
type SessionTimer struct {
	world *engine.World

	statElapsed *status.AtomicFloat
}

// NewSessionTimer creates the countdown and play timer
func NewSessionTimer(world *engine.World) *SessionTimer {
	return &SessionTimer{
		world:       world,
		statElapsed: world.Status.Floats.Get("session.elapsed"),
	}
}

// BeginCountdown shows the first countdown value
func (t *SessionTimer) BeginCountdown() {
	s := t.world.Session
	s.Countdown = t.world.Config.Session.CountdownSeconds
	t.world.Emit(event.EventCountdownTick, &event.CountdownTickPayload{Value: s.Countdown})
}

// CountdownTick advances the countdown and reports true once start has been shown for a full tick
func (t *SessionTimer) CountdownTick() bool {
	s := t.world.Session
	if s.Countdown <= 0 {
		return true
	}
	s.Countdown--
	t.world.Emit(event.EventCountdownTick, &event.CountdownTickPayload{Value: s.Countdown})
	return false
}

// Tick is one second of play time, due is the scheduled time of this tick
func (t *SessionTimer) Tick(due time.Time) {
	if !t.world.Playing() {
		return
	}
	s := t.world.Session

	if s.Remaining > 0 {
		s.Remaining--
	}
	t.world.Emit(event.EventTimeRemainingChanged, &event.TimeRemainingPayload{Remaining: s.Remaining})
	if s.Remaining == 0 {
		t.world.EndSession(parameter.ReasonTimeExpired)
		return
	}

	elapsed := due.Sub(s.PlayStart).Seconds()
	if elapsed > s.Elapsed {
		s.Elapsed = elapsed
	}
	t.statElapsed.Set(s.Elapsed)
	t.checkMilestone()
}

// checkMilestone raises every cap by the growth amount, bounded by its ceiling
func (t *SessionTimer) checkMilestone() {
	s := t.world.Session
	tbl := t.world.Config
	interval := tbl.Caps.Interval.Seconds()
	if interval <= 0 {
		return
	}

	for s.Elapsed >= s.NextMilestone {
		for i := component.ItemType(0); i < component.ItemTypeCount; i++ {
			s.Caps[i] = min(s.Caps[i]+tbl.Caps.Amount, tbl.Items[i].CapCeiling)
		}
		s.NextMilestone += interval
		t.world.Emit(event.EventCapsIncreased, &event.CapsIncreasedPayload{Caps: s.Caps})
	}
}
