package event

// EventType represents the type of session event
type EventType int

const (
	// EventNone is the zero value and never emitted
	EventNone EventType = iota

	// === Session Lifecycle ===

	// EventStateChanged signals a session state transition
	// Trigger: State machine after OnEnter actions of the new state
	// Consumer: Renderer, audio, network | Payload: *StateChangedPayload
	EventStateChanged

	// EventCountdownTick signals one countdown second, Value 0 means start
	// Trigger: Session timer while Countdown
	// Consumer: Renderer, audio | Payload: *CountdownTickPayload
	EventCountdownTick

	// EventTimeRemainingChanged signals the play timer decremented
	// Trigger: Session timer while Playing
	// Consumer: Renderer | Payload: *TimeRemainingPayload
	EventTimeRemainingChanged

	// EventGameOver signals the session ended with a final score
	// Trigger: Session timer (time expired) or score controller (health depleted)
	// Consumer: Renderer, audio, score history | Payload: *GameOverPayload
	EventGameOver

	// EventSessionError signals a terminal initialization failure
	// Trigger: Game.Start on unrecoverable error
	// Consumer: Renderer | Payload: *SessionErrorPayload
	EventSessionError

	// === Scoring ===

	// EventScoreChanged signals the score changed
	// Trigger: Score controller award
	// Consumer: Renderer | Payload: *ScoreChangedPayload
	EventScoreChanged

	// EventHealthChanged signals health changed
	// Trigger: Score controller penalty or recovery
	// Consumer: Renderer, audio | Payload: *HealthChangedPayload
	EventHealthChanged

	// EventComboChanged signals the combo multiplier changed, anchored at the catch position
	// Trigger: Score controller combo step or reset
	// Consumer: Renderer (floating text) | Payload: *ComboChangedPayload
	EventComboChanged

	// === Items ===

	// EventItemSpawned signals a new item entered the field
	// Trigger: Spawn controller
	// Consumer: Network | Payload: *ItemPayload
	EventItemSpawned

	// EventItemCaught signals an item collided with a region and was retired
	// Trigger: Collision resolver
	// Consumer: Audio | Payload: *ItemPayload
	EventItemCaught

	// EventItemEscaped signals an item left the field bottom uncaught
	// Trigger: Motion system
	// Consumer: Network | Payload: *ItemPayload
	EventItemEscaped

	// EventCapsIncreased signals a cap milestone raised population caps
	// Trigger: Session timer milestone
	// Consumer: Renderer, network | Payload: *CapsIncreasedPayload
	EventCapsIncreased
)
