package event

import (
	"github.com/lixenwraith/facefall/component"
)

// GameEvent is one queued event with its tick stamp
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    int64
}

// StateChangedPayload carries state names as reported by the state machine
type StateChangedPayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// CountdownTickPayload carries the displayed countdown value
type CountdownTickPayload struct {
	Value int `json:"value"` // 0 = start
}

// TimeRemainingPayload carries whole seconds left in play
type TimeRemainingPayload struct {
	Remaining int `json:"remaining"`
}

// GameOverPayload reports why and with what score the session ended
type GameOverPayload struct {
	SessionID string  `json:"session_id"`
	Reason    string  `json:"reason"`
	Score     int     `json:"score"`
	Limit     string  `json:"limit"`
	Elapsed   float64 `json:"elapsed"` // seconds of play
}

// SessionErrorPayload carries the single terminal error message
type SessionErrorPayload struct {
	Message string `json:"message"`
}

// ScoreChangedPayload carries the new total and the applied delta
type ScoreChangedPayload struct {
	Score int `json:"score"`
	Delta int `json:"delta"`
}

// HealthChangedPayload carries new health in [0,1] and the applied delta
type HealthChangedPayload struct {
	Health float64 `json:"health"`
	Delta  float64 `json:"delta"`
}

// ComboChangedPayload carries the multiplier and the catch anchor
type ComboChangedPayload struct {
	Combo float64 `json:"combo"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Reset bool    `json:"reset"`
}

// ItemPayload identifies one item and its position at the time of the event
type ItemPayload struct {
	ID    uint64             `json:"id"`
	Type  component.ItemType `json:"type"`
	X     float64            `json:"x"`
	Y     float64            `json:"y"`
	Speed float64            `json:"speed"`
}

// CapsIncreasedPayload carries the caps after growth, indexed by item type
type CapsIncreasedPayload struct {
	Caps [component.ItemTypeCount]int `json:"caps"`
}
