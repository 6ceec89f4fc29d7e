package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/facefall/component"
	"github.com/lixenwraith/facefall/config"
)

// GameSession is the mutable state of one run from Initializing until teardown
type GameSession struct {
	ID    string
	Limit config.TimeLimit

	Score  int
	Health float64 // [0, Health.Max]
	Combo  float64 // >= Combo.Base

	Countdown int // Countdown value currently displayed, 0 = start
	Remaining int // Whole seconds of play left

	PlayStart time.Time
	Elapsed   float64 // Seconds since PlayStart, monotonic while Playing
	LastTick  time.Time

	Caps          [component.ItemTypeCount]int
	NextSpawn     time.Time
	NextMilestone float64 // Elapsed seconds of the next cap increase
	RareUsed      int

	EndReason string
}

// NewGameSession creates a session with fresh stats for the given limit
func NewGameSession(limit config.TimeLimit, tbl *config.Table) *GameSession {
	if !limit.Valid() {
		limit = config.LimitBeginner
	}
	s := &GameSession{
		ID:    uuid.NewString(),
		Limit: limit,
	}
	s.ResetStats(tbl)
	return s
}

// ResetStats restores score, health, combo and caps to their starting values
func (s *GameSession) ResetStats(tbl *config.Table) {
	s.Score = 0
	s.Health = tbl.Health.Max
	s.Combo = tbl.Combo.Base
	for i := range s.Caps {
		s.Caps[i] = tbl.Items[i].BaseCap
	}
	s.RareUsed = 0
	s.EndReason = ""
	s.Countdown = tbl.Session.CountdownSeconds
	s.Remaining = int(tbl.Limit(s.Limit).Duration / time.Second)
}

// BeginPlay sets the play timer origin
// Spawn timing is seeded separately by the spawn system
func (s *GameSession) BeginPlay(now time.Time, tbl *config.Table) {
	s.Remaining = int(tbl.Limit(s.Limit).Duration / time.Second)
	s.PlayStart = now
	s.LastTick = now
	s.Elapsed = 0
	s.NextMilestone = tbl.Caps.Interval.Seconds()
	s.NextSpawn = now
}

// RareQuota returns the rare bonus quota for the session's limit
func (s *GameSession) RareQuota(tbl *config.Table) int {
	return tbl.Limit(s.Limit).RareQuota
}
