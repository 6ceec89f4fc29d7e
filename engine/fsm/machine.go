package fsm

import (
	"fmt"
	"log"
)

// NewMachine creates an empty machine starting in initial once states are added
func NewMachine[T any](initial StateID) *Machine[T] {
	return &Machine[T]{
		nodes:          make(map[StateID]*Node[T]),
		edges:          make(map[StateID]map[StateID]bool),
		InitialStateID: initial,
		activeStateID:  initial,
	}
}

// AddState adds a node, replacing any node with the same id
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{ID: id, Name: name}
	m.nodes[id] = node
	return node
}

// AddTransition permits the edge from -> to
func (m *Machine[T]) AddTransition(from, to StateID) {
	if m.edges[from] == nil {
		m.edges[from] = make(map[StateID]bool)
	}
	m.edges[from][to] = true
}

// OnEnter appends an entry action to a state
// Panics on unknown state, wiring errors surface at startup
func (m *Machine[T]) OnEnter(id StateID, fn ActionFunc[T]) {
	node := m.mustNode(id)
	node.OnEnter = append(node.OnEnter, fn)
}

// OnExit appends an exit action to a state
func (m *Machine[T]) OnExit(id StateID, fn ActionFunc[T]) {
	node := m.mustNode(id)
	node.OnExit = append(node.OnExit, fn)
}

// OnChange registers an observer of completed transitions
func (m *Machine[T]) OnChange(fn ChangeFunc[T]) {
	m.onChange = append(m.onChange, fn)
}

func (m *Machine[T]) mustNode(id StateID) *Node[T] {
	node, ok := m.nodes[id]
	if !ok {
		panic(fmt.Sprintf("FSM: unknown state ID %d", id))
	}
	return node
}

// State returns the active state
func (m *Machine[T]) State() StateID {
	return m.activeStateID
}

// StateName returns the active state's name
func (m *Machine[T]) StateName() string {
	return m.Name(m.activeStateID)
}

// Name returns a state's name, empty for unknown ids
func (m *Machine[T]) Name(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return ""
}

// CanTransition reports whether the edge from the active state to target exists
func (m *Machine[T]) CanTransition(target StateID) bool {
	return m.edges[m.activeStateID][target]
}

// TransitionCount returns the number of completed transitions
func (m *Machine[T]) TransitionCount() uint64 {
	return m.transitions
}

// Transition moves along a permitted edge, running exit then entry actions
// The active state is switched before entry actions so an action may transition again
func (m *Machine[T]) Transition(ctx T, target StateID) error {
	if _, ok := m.nodes[target]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownState, target)
	}
	if !m.CanTransition(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.StateName(), m.Name(target))
	}
	m.move(ctx, target)
	return nil
}

// Force moves to target regardless of edges
// Used for caller-initiated teardown, which is legal from every state
func (m *Machine[T]) Force(ctx T, target StateID) {
	if _, ok := m.nodes[target]; !ok {
		panic(fmt.Sprintf("FSM: forced transition to unknown state ID %d", target))
	}
	m.move(ctx, target)
}

func (m *Machine[T]) move(ctx T, target StateID) {
	from := m.activeStateID

	if node, ok := m.nodes[from]; ok {
		for _, fn := range node.OnExit {
			fn(ctx)
		}
	}

	m.activeStateID = target
	m.transitions++
	log.Printf("[fsm] %s -> %s", m.Name(from), m.Name(target))

	for _, fn := range m.nodes[target].OnEnter {
		fn(ctx)
		if m.activeStateID != target {
			// Entry action moved on, the nested transition already notified observers
			return
		}
	}

	for _, fn := range m.onChange {
		fn(ctx, from, target)
	}
}
