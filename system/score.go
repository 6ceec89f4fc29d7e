package system

import (
	"math"

	"github.com/lixenwraith/facefall/component"
	"github.com/lixenwraith/facefall/engine"
	"github.com/lixenwraith/facefall/event"
	"github.com/lixenwraith/facefall/parameter"
)

// ScoreController owns score, health and combo mutations
// Every operation is a no-op outside Playing
type ScoreController struct {
	world *engine.World

	// Anchor of the catch being resolved, reported with combo changes
	anchorX, anchorY float64
}

// NewScoreController creates the scoring and health controller
func NewScoreController(world *engine.World) *ScoreController {
	return &ScoreController{world: world}
}

// Apply dispatches exactly one effect for a caught item
func (c *ScoreController) Apply(it *component.Item) {
	c.anchorX = it.X + it.Width/2
	c.anchorY = it.Y + it.Height/2

	profile := c.world.Config.Profile(it.Type)
	switch profile.Effect {
	case component.EffectPenalty:
		c.ApplyPenalty()
	case component.EffectAward:
		c.AwardScore(profile.Score)
		c.IncrementCombo()
	case component.EffectRecovery:
		c.ApplyRecovery()
		c.IncrementCombo()
	}
}

// AwardScore adds round(base * combo)
func (c *ScoreController) AwardScore(base int) {
	if !c.world.Playing() {
		return
	}
	s := c.world.Session
	delta := int(math.Round(float64(base) * s.Combo))
	if delta == 0 {
		return
	}
	s.Score += delta
	c.world.Emit(event.EventScoreChanged, &event.ScoreChangedPayload{Score: s.Score, Delta: delta})
}

// ApplyPenalty removes health, resets the combo and checks for game over
func (c *ScoreController) ApplyPenalty() {
	if !c.world.Playing() {
		return
	}
	s := c.world.Session
	tbl := c.world.Config

	before := s.Health
	s.Health = round9(max(0, s.Health-tbl.Health.Penalty))
	c.world.Emit(event.EventHealthChanged, &event.HealthChangedPayload{Health: s.Health, Delta: s.Health - before})

	s.Combo = tbl.Combo.Base
	c.world.Emit(event.EventComboChanged, &event.ComboChangedPayload{
		Combo: s.Combo, X: c.anchorX, Y: c.anchorY, Reset: true,
	})

	c.checkGameOver()
}

// ApplyRecovery heals, or awards the recovery bonus when health is already full
func (c *ScoreController) ApplyRecovery() {
	if !c.world.Playing() {
		return
	}
	s := c.world.Session
	tbl := c.world.Config

	if s.Health >= tbl.Health.Max {
		c.AwardScore(tbl.Combo.RecoveryBonusScore)
		return
	}

	before := s.Health
	s.Health = round9(min(tbl.Health.Max, s.Health+tbl.Health.Recovery))
	c.world.Emit(event.EventHealthChanged, &event.HealthChangedPayload{Health: s.Health, Delta: s.Health - before})
}

// IncrementCombo raises the multiplier by one step
func (c *ScoreController) IncrementCombo() {
	if !c.world.Playing() {
		return
	}
	s := c.world.Session
	s.Combo = round9(s.Combo + c.world.Config.Combo.Step)
	c.world.Emit(event.EventComboChanged, &event.ComboChangedPayload{
		Combo: s.Combo, X: c.anchorX, Y: c.anchorY,
	})
}

func (c *ScoreController) checkGameOver() {
	if c.world.Session.Health <= c.world.Config.Health.GameOverThreshold {
		c.world.EndSession(parameter.ReasonHealthDepleted)
	}
}

// round9 drops float noise below 1e-9 so repeated steps land on exact decimals
func round9(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}
