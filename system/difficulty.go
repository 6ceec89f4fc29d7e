package system

import (
	"log"
	"time"

	"github.com/lixenwraith/facefall/component"
	"github.com/lixenwraith/facefall/config"
)

// Difficulty interpolates speeds and spawn intervals over the ramp
// Results depend only on elapsed seconds; the warned flag only rate-limits logging
type Difficulty struct {
	tbl    *config.Table
	warned bool
}

// NewDifficulty creates a difficulty scheduler over the table
func NewDifficulty(tbl *config.Table) *Difficulty {
	return &Difficulty{tbl: tbl}
}

// Progress returns clamp(elapsed/ramp, 0, 1)
// A non-positive ramp is a configuration error and yields 1
func (d *Difficulty) Progress(elapsed float64) float64 {
	ramp := d.tbl.Spawn.RampDuration.Seconds()
	if ramp <= 0 {
		if !d.warned {
			d.warned = true
			log.Printf("[difficulty] ramp duration %v is not positive, using final values", d.tbl.Spawn.RampDuration)
		}
		return 1
	}
	return clamp01(elapsed / ramp)
}

// Speed returns the current fall speed of an item type in units per second
func (d *Difficulty) Speed(t component.ItemType, elapsed float64) float64 {
	p := d.tbl.Profile(t)
	return lerp(p.SpeedInitial, p.SpeedFinal, d.Progress(elapsed))
}

// IntervalBounds returns the current spawn interval range
func (d *Difficulty) IntervalBounds(elapsed float64) (lo, hi time.Duration) {
	s := d.tbl.Spawn
	progress := d.Progress(elapsed)
	lo = lerpDuration(s.IntervalMinInitial, s.IntervalMinFinal, progress)
	hi = lerpDuration(s.IntervalMaxInitial, s.IntervalMaxFinal, progress)
	return lo, hi
}

func clamp01(v float64) float64 {
	switch {
	case v < 0 || v != v:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// lerp returns a exactly at t=0 and b exactly at t=1
func lerp(a, b, t float64) float64 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a + (b-a)*t
}

func lerpDuration(a, b time.Duration, t float64) time.Duration {
	return time.Duration(lerp(float64(a), float64(b), t))
}
