package engine

import (
	"slices"

	"github.com/lixenwraith/facefall/component"
	"github.com/lixenwraith/facefall/config"
	"github.com/lixenwraith/facefall/engine/fsm"
)

// Snapshot is a copy of everything a renderer draws, safe to retain
type Snapshot struct {
	State     fsm.StateID
	StateName string
	SessionID string
	Limit     string
	Field     config.Field

	Items   []component.Item
	Regions []component.Region

	Score     int
	Health    float64
	Combo     float64
	Countdown int
	Remaining int
	Elapsed   float64
	Caps      [component.ItemTypeCount]int
	EndReason string
}

// Snapshot copies the current presentation state
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		State:     w.Machine.State(),
		StateName: w.Machine.StateName(),
		Field:     w.Config.Field,
		Regions:   slices.Clone(w.Regions),
	}

	snap.Items = make([]component.Item, 0, len(w.Items))
	for _, it := range w.Items {
		if it.Active {
			snap.Items = append(snap.Items, *it)
		}
	}

	if s := w.Session; s != nil {
		snap.SessionID = s.ID
		snap.Limit = s.Limit.String()
		snap.Score = s.Score
		snap.Health = s.Health
		snap.Combo = s.Combo
		snap.Countdown = s.Countdown
		snap.Remaining = s.Remaining
		snap.Elapsed = s.Elapsed
		snap.Caps = s.Caps
		snap.EndReason = s.EndReason
	}
	return snap
}
