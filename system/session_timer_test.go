package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/facefall/component"
	"github.com/lixenwraith/facefall/engine/fsm"
	"github.com/lixenwraith/facefall/event"
	"github.com/lixenwraith/facefall/parameter"
)

func TestTimerLastSecondEndsSession(t *testing.T) {
	w := newPlayingWorld(t, nil)
	timer := NewSessionTimer(w)
	w.Session.Remaining = 1

	timer.Tick(testStart.Add(time.Second))

	if w.Session.Remaining != 0 {
		t.Errorf("Expected remaining 0, got %d", w.Session.Remaining)
	}
	if w.State() != fsm.StateGameOver {
		t.Fatalf("Expected game over, got %s", w.Machine.StateName())
	}
	if w.Session.EndReason != parameter.ReasonTimeExpired {
		t.Errorf("Expected %q, got %q", parameter.ReasonTimeExpired, w.Session.EndReason)
	}

	// Further ticks are ignored
	timer.Tick(testStart.Add(2 * time.Second))
	if w.Session.Remaining != 0 {
		t.Errorf("Expected remaining to stay 0, got %d", w.Session.Remaining)
	}
}

func TestTimerCountsDownFullSession(t *testing.T) {
	w := newPlayingWorld(t, nil)
	timer := NewSessionTimer(w)

	prev := w.Session.Remaining
	if prev != 30 {
		t.Fatalf("Expected beginner 30s, got %d", prev)
	}
	for i := 1; w.Playing(); i++ {
		timer.Tick(testStart.Add(time.Duration(i) * time.Second))
		if w.Session.Remaining > prev {
			t.Fatalf("Remaining increased at tick %d", i)
		}
		prev = w.Session.Remaining
		if i > 30 {
			t.Fatal("Expected session to end by the 30th tick")
		}
	}
	if w.Session.EndReason != parameter.ReasonTimeExpired {
		t.Errorf("Expected time expired, got %q", w.Session.EndReason)
	}
}

func TestTimerCapMilestones(t *testing.T) {
	w := newPlayingWorld(t, nil)
	w.Session.Remaining = 1000
	timer := NewSessionTimer(w)

	base := w.Session.Caps
	for i := 1; i <= 9; i++ {
		timer.Tick(testStart.Add(time.Duration(i) * time.Second))
	}
	if w.Session.Caps != base {
		t.Fatalf("Expected caps unchanged before first milestone, got %v", w.Session.Caps)
	}

	timer.Tick(testStart.Add(10 * time.Second))
	if got := w.Session.Caps[component.ItemHazard]; got != base[component.ItemHazard]+1 {
		t.Errorf("Expected hazard cap +1, got %d", got)
	}
	if w.Session.NextMilestone != 20 {
		t.Errorf("Expected next milestone 20, got %v", w.Session.NextMilestone)
	}

	var capsEvents int
	for _, ev := range w.Events.Consume() {
		if ev.Type == event.EventCapsIncreased {
			capsEvents++
		}
	}
	if capsEvents != 1 {
		t.Errorf("Expected 1 caps event, got %d", capsEvents)
	}

	// Far past the last milestone every cap sits at its ceiling
	for i := 11; i <= 300; i++ {
		timer.Tick(testStart.Add(time.Duration(i) * time.Second))
	}
	for it := component.ItemType(0); it < component.ItemTypeCount; it++ {
		if got, want := w.Session.Caps[it], w.Config.Profile(it).CapCeiling; got != want {
			t.Errorf("%s: expected cap at ceiling %d, got %d", it, want, got)
		}
	}
}

func TestCountdownSequence(t *testing.T) {
	w := newPlayingWorld(t, nil)
	timer := NewSessionTimer(w)

	timer.BeginCountdown()
	var values []int
	for i := 0; i < 10; i++ {
		if timer.CountdownTick() {
			break
		}
	}
	for _, ev := range w.Events.Consume() {
		if p, ok := ev.Payload.(*event.CountdownTickPayload); ok {
			values = append(values, p.Value)
		}
	}

	want := []int{3, 2, 1, 0}
	if len(values) != len(want) {
		t.Fatalf("Expected %v, got %v", want, values)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("Tick %d: expected %d, got %d", i, want[i], values[i])
		}
	}
}
