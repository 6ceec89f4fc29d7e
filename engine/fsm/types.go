package fsm

import "errors"

// StateID is a unique identifier for a node
type StateID int

const StateNone StateID = -1

// ErrInvalidTransition is returned for edges absent from the graph, state is left unchanged
var ErrInvalidTransition = errors.New("invalid state transition")

// ErrUnknownState is returned when a transition targets a node never added
var ErrUnknownState = errors.New("unknown state")

// Machine is a flat finite state machine runtime
// T is the context type passed to actions (e.g., *engine.World)
// Not safe for concurrent use; the owner serializes all calls
type Machine[T any] struct {
	// Graph data, immutable after construction
	nodes map[StateID]*Node[T]
	edges map[StateID]map[StateID]bool

	InitialStateID StateID

	activeStateID StateID
	transitions   uint64 // Completed transitions, debugging aid

	onChange []ChangeFunc[T]
}

// Node represents one state and its lifecycle actions
type Node[T any] struct {
	ID   StateID
	Name string

	OnEnter []ActionFunc[T]
	OnExit  []ActionFunc[T]
}

// ActionFunc executes a side effect on entry or exit
type ActionFunc[T any] func(ctx T)

// ChangeFunc observes a completed transition, after entry actions ran
type ChangeFunc[T any] func(ctx T, from, to StateID)
