package event

import (
	"reflect"
	"sync"
)

var (
	nameToType    = make(map[string]EventType)
	typeToName    = make(map[EventType]string)
	typeToPayload = make(map[EventType]reflect.Type)
	registryOnce  sync.Once
)

// RegisterType maps a string name to an EventType and its payload struct type
// payloadInstance should be a pointer to the payload struct (e.g., &ItemPayload{})
// Pass nil if the event has no payload
func RegisterType(name string, et EventType, payloadInstance any) {
	nameToType[name] = et
	typeToName[et] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		typeToPayload[et] = t
	}
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	InitRegistry()
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the wire name for an EventType
func GetEventName(et EventType) string {
	InitRegistry()
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "unknown"
}

// NewPayloadStruct returns a new pointer to a zero-value payload struct for the event type
// Returns nil if no payload is registered
func NewPayloadStruct(et EventType) any {
	InitRegistry()
	t, ok := typeToPayload[et]
	if !ok {
		return nil
	}
	return reflect.New(t).Interface()
}

// InitRegistry populates the registry with all session events, idempotent
func InitRegistry() {
	registryOnce.Do(func() {
		RegisterType("state_changed", EventStateChanged, &StateChangedPayload{})
		RegisterType("countdown_tick", EventCountdownTick, &CountdownTickPayload{})
		RegisterType("time_remaining", EventTimeRemainingChanged, &TimeRemainingPayload{})
		RegisterType("game_over", EventGameOver, &GameOverPayload{})
		RegisterType("session_error", EventSessionError, &SessionErrorPayload{})

		RegisterType("score_changed", EventScoreChanged, &ScoreChangedPayload{})
		RegisterType("health_changed", EventHealthChanged, &HealthChangedPayload{})
		RegisterType("combo_changed", EventComboChanged, &ComboChangedPayload{})

		RegisterType("item_spawned", EventItemSpawned, &ItemPayload{})
		RegisterType("item_caught", EventItemCaught, &ItemPayload{})
		RegisterType("item_escaped", EventItemEscaped, &ItemPayload{})
		RegisterType("caps_increased", EventCapsIncreased, &CapsIncreasedPayload{})
	})
}

func (et EventType) String() string {
	return GetEventName(et)
}
