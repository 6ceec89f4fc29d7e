package audio

import (
	"sync/atomic"

	"github.com/lixenwraith/facefall/component"
	"github.com/lixenwraith/facefall/event"
)

// Player plays a cue
type Player interface {
	Play(s SoundType)
}

// CuePlayer maps game events to sound cues
type CuePlayer struct {
	player Player
	muted  atomic.Bool
}

// NewCuePlayer creates an event handler feeding the given player
func NewCuePlayer(p Player, muted bool) *CuePlayer {
	c := &CuePlayer{player: p}
	c.muted.Store(muted)
	return c
}

// SetMuted toggles cue output
func (c *CuePlayer) SetMuted(muted bool) {
	c.muted.Store(muted)
}

// Muted reports the mute state
func (c *CuePlayer) Muted() bool {
	return c.muted.Load()
}

// EventTypes implements event.Handler
func (c *CuePlayer) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventItemCaught,
		event.EventCountdownTick,
		event.EventGameOver,
	}
}

// HandleEvent implements event.Handler
func (c *CuePlayer) HandleEvent(ev event.GameEvent) {
	if c.muted.Load() {
		return
	}
	if s, ok := CueFor(ev); ok {
		c.player.Play(s)
	}
}

// CueFor returns the cue for an event, false when the event is silent
func CueFor(ev event.GameEvent) (SoundType, bool) {
	switch ev.Type {
	case event.EventItemCaught:
		p, ok := ev.Payload.(*event.ItemPayload)
		if !ok {
			return 0, false
		}
		switch p.Type {
		case component.ItemHazard:
			return SoundBuzz, true
		case component.ItemBonusA, component.ItemBonusB:
			return SoundChime, true
		case component.ItemRecovery:
			return SoundRise, true
		case component.ItemRareBonus:
			return SoundCoin, true
		}
	case event.EventCountdownTick:
		p, ok := ev.Payload.(*event.CountdownTickPayload)
		if !ok {
			return 0, false
		}
		if p.Value == 0 {
			return SoundStart, true
		}
		return SoundBeep, true
	case event.EventGameOver:
		return SoundFall, true
	}
	return 0, false
}
