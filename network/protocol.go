package network

import (
	"encoding/json"
	"fmt"

	"github.com/lixenwraith/facefall/event"
)

// Message is the JSON frame sent to spectators for every game event
type Message struct {
	Type    string `json:"type"`
	Tick    int64  `json:"tick"`
	Payload any    `json:"payload,omitempty"`
}

// Encode converts a game event into a wire frame
func Encode(ev event.GameEvent) ([]byte, error) {
	msg := Message{
		Type:    event.GetEventName(ev.Type),
		Tick:    ev.Tick,
		Payload: ev.Payload,
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", msg.Type, err)
	}
	return data, nil
}

// Decode parses a wire frame, resolving the payload into its registered struct
func Decode(data []byte) (event.GameEvent, error) {
	var raw struct {
		Type    string          `json:"type"`
		Tick    int64           `json:"tick"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return event.GameEvent{}, fmt.Errorf("decode frame: %w", err)
	}

	et, ok := event.GetEventType(raw.Type)
	if !ok {
		return event.GameEvent{}, fmt.Errorf("decode frame: unknown event %q", raw.Type)
	}

	ev := event.GameEvent{Type: et, Tick: raw.Tick}
	if p := event.NewPayloadStruct(et); p != nil && len(raw.Payload) > 0 {
		if err := json.Unmarshal(raw.Payload, p); err != nil {
			return event.GameEvent{}, fmt.Errorf("decode %s payload: %w", raw.Type, err)
		}
		ev.Payload = p
	}
	return ev, nil
}
