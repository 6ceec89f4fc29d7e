package fsm

import (
	"errors"
	"testing"
)

type recorder struct {
	log []string
}

func TestSessionHappyPath(t *testing.T) {
	m := NewSessionMachine[*recorder]()
	r := &recorder{}

	path := []StateID{StateInitializing, StateLoadingModel, StateAcquiringCapture, StateCountdown, StatePlaying, StateGameOver}
	for _, s := range path {
		if err := m.Transition(r, s); err != nil {
			t.Fatalf("Transition to %s failed: %v", SessionStateName(s), err)
		}
	}
	if m.State() != StateGameOver {
		t.Errorf("Expected game_over, got %s", m.StateName())
	}
	if m.TransitionCount() != uint64(len(path)) {
		t.Errorf("Expected %d transitions, got %d", len(path), m.TransitionCount())
	}
}

func TestSessionInvalidTransitions(t *testing.T) {
	tests := []struct {
		name  string
		setup []StateID
		to    StateID
	}{
		{"idle to playing", nil, StatePlaying},
		{"skip loading", []StateID{StateInitializing}, StateCountdown},
		{"countdown to error", []StateID{StateInitializing, StateLoadingModel, StateAcquiringCapture, StateCountdown}, StateError},
		{"playing to error", []StateID{StateInitializing, StateLoadingModel, StateAcquiringCapture, StateCountdown, StatePlaying}, StateError},
		{"game over to playing", []StateID{StateInitializing, StateLoadingModel, StateAcquiringCapture, StateCountdown, StatePlaying, StateGameOver}, StatePlaying},
		{"error to idle", []StateID{StateError}, StateIdle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewSessionMachine[*recorder]()
			r := &recorder{}
			for _, s := range tt.setup {
				if err := m.Transition(r, s); err != nil {
					t.Fatalf("Setup transition failed: %v", err)
				}
			}
			before := m.State()
			err := m.Transition(r, tt.to)
			if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("Expected ErrInvalidTransition, got %v", err)
			}
			if m.State() != before {
				t.Errorf("Expected state unchanged at %s, got %s", SessionStateName(before), m.StateName())
			}
		})
	}
}

func TestErrorReachableFromEarlyStates(t *testing.T) {
	for _, depth := range []int{0, 1, 2, 3} {
		m := NewSessionMachine[*recorder]()
		r := &recorder{}
		chain := []StateID{StateInitializing, StateLoadingModel, StateAcquiringCapture}
		for _, s := range chain[:depth] {
			m.Transition(r, s)
		}
		if err := m.Transition(r, StateError); err != nil {
			t.Errorf("Expected error reachable at depth %d, got %v", depth, err)
		}
	}
}

func TestActionsOrder(t *testing.T) {
	m := NewSessionMachine[*recorder]()
	r := &recorder{}

	m.OnExit(StateIdle, func(r *recorder) { r.log = append(r.log, "exit idle") })
	m.OnEnter(StateInitializing, func(r *recorder) { r.log = append(r.log, "enter init") })
	m.OnChange(func(r *recorder, from, to StateID) {
		r.log = append(r.log, "change "+SessionStateName(from)+">"+SessionStateName(to))
	})

	if err := m.Transition(r, StateInitializing); err != nil {
		t.Fatal(err)
	}
	want := []string{"exit idle", "enter init", "change idle>initializing"}
	if len(r.log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, r.log)
	}
	for i := range want {
		if r.log[i] != want[i] {
			t.Errorf("Step %d: expected %q, got %q", i, want[i], r.log[i])
		}
	}
}

func TestNestedTransitionFromEntry(t *testing.T) {
	m := NewSessionMachine[*recorder]()
	r := &recorder{}

	m.OnEnter(StateInitializing, func(r *recorder) {
		if err := m.Transition(r, StateError); err != nil {
			t.Errorf("Nested transition failed: %v", err)
		}
	})
	var changes []StateID
	m.OnChange(func(_ *recorder, _, to StateID) { changes = append(changes, to) })

	m.Transition(r, StateInitializing)
	if m.State() != StateError {
		t.Errorf("Expected error after nested transition, got %s", m.StateName())
	}
	if len(changes) != 1 || changes[0] != StateError {
		t.Errorf("Expected a single change notification for error, got %v", changes)
	}
}

func TestForceFromTerminalStates(t *testing.T) {
	m := NewSessionMachine[*recorder]()
	r := &recorder{}
	m.Transition(r, StateError)

	exited := false
	m.OnExit(StateError, func(*recorder) { exited = true })
	m.Force(r, StateIdle)

	if m.State() != StateIdle {
		t.Errorf("Expected idle after force, got %s", m.StateName())
	}
	if !exited {
		t.Error("Expected exit action on forced transition")
	}
}

func TestUnknownState(t *testing.T) {
	m := NewSessionMachine[*recorder]()
	if err := m.Transition(&recorder{}, StateID(99)); !errors.Is(err, ErrUnknownState) {
		t.Errorf("Expected ErrUnknownState, got %v", err)
	}
}
