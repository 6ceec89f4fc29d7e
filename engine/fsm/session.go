package fsm

// Session lifecycle states
const (
	StateIdle StateID = iota
	StateInitializing
	StateLoadingModel
	StateAcquiringCapture
	StateCountdown
	StatePlaying
	StateGameOver
	StateError
)

var sessionStateNames = map[StateID]string{
	StateIdle:             "idle",
	StateInitializing:     "initializing",
	StateLoadingModel:     "loading_model",
	StateAcquiringCapture: "acquiring_capture",
	StateCountdown:        "countdown",
	StatePlaying:          "playing",
	StateGameOver:         "game_over",
	StateError:            "error",
}

// SessionStateName returns the wire name of a session state
func SessionStateName(id StateID) string {
	if n, ok := sessionStateNames[id]; ok {
		return n
	}
	return "unknown"
}

// NewSessionMachine builds the session lifecycle graph starting in Idle
// GameOver and Error have no outgoing edges; leaving them is a forced teardown to Idle
func NewSessionMachine[T any]() *Machine[T] {
	m := NewMachine[T](StateIdle)
	for id, name := range sessionStateNames {
		m.AddState(id, name)
	}

	m.AddTransition(StateIdle, StateInitializing)
	m.AddTransition(StateInitializing, StateLoadingModel)
	m.AddTransition(StateLoadingModel, StateAcquiringCapture)
	m.AddTransition(StateAcquiringCapture, StateCountdown)
	m.AddTransition(StateCountdown, StatePlaying)
	m.AddTransition(StatePlaying, StateGameOver)

	for _, s := range []StateID{StateIdle, StateInitializing, StateLoadingModel, StateAcquiringCapture} {
		m.AddTransition(s, StateError)
	}
	return m
}
