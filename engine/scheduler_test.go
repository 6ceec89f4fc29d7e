package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/facefall/status"
)

func TestSchedulerIntervalAndFrameOrder(t *testing.T) {
	clock := NewMockTimeProvider(time.Unix(1000, 0))
	s := NewScheduler(status.NewRegistry())

	var order []string
	s.Every(clock.Now(), time.Second, func(time.Time) { order = append(order, "timer") })
	s.Frame(func(time.Time, time.Duration) { order = append(order, "frame") })

	s.Advance(clock.Advance(500 * time.Millisecond))
	s.Advance(clock.Advance(500 * time.Millisecond))

	want := []string{"frame", "timer", "frame"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Step %d: expected %s, got %s", i, want[i], order[i])
		}
	}
}

func TestSchedulerCatchUpPassesDueTimes(t *testing.T) {
	start := time.Unix(0, 0)
	clock := NewMockTimeProvider(start)
	reg := status.NewRegistry()
	s := NewScheduler(reg)

	var dues []time.Time
	s.Every(start, time.Second, func(due time.Time) { dues = append(dues, due) })

	s.Advance(clock.Advance(3500 * time.Millisecond))

	if len(dues) != 3 {
		t.Fatalf("Expected 3 catch-up ticks, got %d", len(dues))
	}
	for i, d := range dues {
		want := start.Add(time.Duration(i+1) * time.Second)
		if !d.Equal(want) {
			t.Errorf("Tick %d: expected due %v, got %v", i, want, d)
		}
	}
	if got := reg.Ints.Get("scheduler.catchup").Load(); got != 2 {
		t.Errorf("Expected 2 catch-up ticks recorded, got %d", got)
	}
}

func TestSchedulerFrameDelta(t *testing.T) {
	clock := NewMockTimeProvider(time.Unix(0, 0))
	s := NewScheduler(status.NewRegistry())

	var deltas []time.Duration
	s.Frame(func(_ time.Time, dt time.Duration) { deltas = append(deltas, dt) })

	s.Advance(clock.Now())
	s.Advance(clock.Advance(16 * time.Millisecond))
	s.Advance(clock.Advance(40 * time.Millisecond))

	want := []time.Duration{0, 16 * time.Millisecond, 40 * time.Millisecond}
	for i := range want {
		if deltas[i] != want[i] {
			t.Errorf("Frame %d: expected dt %v, got %v", i, want[i], deltas[i])
		}
	}
}

func TestSchedulerCancelInsideCallback(t *testing.T) {
	clock := NewMockTimeProvider(time.Unix(0, 0))
	s := NewScheduler(status.NewRegistry())

	frames := 0
	var frame *Handle
	timer := s.Every(clock.Now(), time.Second, func(time.Time) {
		// Timer ending the session cancels the frame handle before it runs
		frame.Cancel()
	})
	frame = s.Frame(func(time.Time, time.Duration) { frames++ })

	s.Advance(clock.Advance(time.Second))
	if frames != 0 {
		t.Errorf("Expected cancelled frame callback to be skipped, ran %d", frames)
	}

	ticks := 0
	timer.Cancel()
	s.Every(clock.Now(), time.Second, func(time.Time) { ticks++ })
	s.Advance(clock.Advance(5 * time.Second))
	if ticks != 5 {
		t.Errorf("Expected 5 ticks on new handle, got %d", ticks)
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 live handle, got %d", s.Len())
	}
}

func TestSchedulerHandlesNeverShareIdentity(t *testing.T) {
	s := NewScheduler(status.NewRegistry())
	a := s.Frame(func(time.Time, time.Duration) {})
	a.Cancel()
	s.CancelAll()
	b := s.Frame(func(time.Time, time.Duration) {})

	if a.ID() == b.ID() {
		t.Errorf("Expected distinct ids, both %d", a.ID())
	}
	if a.Active() {
		t.Error("Expected old handle to stay cancelled")
	}
	if !b.Active() {
		t.Error("Expected new handle active")
	}
}

func TestSchedulerCancelAll(t *testing.T) {
	clock := NewMockTimeProvider(time.Unix(0, 0))
	s := NewScheduler(status.NewRegistry())

	ran := false
	s.Every(clock.Now(), time.Second, func(time.Time) { ran = true })
	s.Frame(func(time.Time, time.Duration) { ran = true })
	s.CancelAll()

	s.Advance(clock.Advance(2 * time.Second))
	if ran {
		t.Error("Expected no callbacks after CancelAll")
	}
	if s.Len() != 0 {
		t.Errorf("Expected 0 handles, got %d", s.Len())
	}
}
