package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/facefall/component"
	"github.com/lixenwraith/facefall/parameter"
)

// ErrInvalidTable is wrapped by every Validate failure
var ErrInvalidTable = errors.New("invalid configuration table")

// Band is one slice of the cumulative weighted spawn draw
// A draw r selects the first band with r < Upper
type Band struct {
	Upper float64            `toml:"upper"`
	Type  component.ItemType `toml:"type"`
}

// Field is the logical play field
type Field struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Spawn holds the spawn cadence and difficulty ramp
type Spawn struct {
	IntervalMinInitial time.Duration `toml:"interval_min_initial"`
	IntervalMaxInitial time.Duration `toml:"interval_max_initial"`
	IntervalMinFinal   time.Duration `toml:"interval_min_final"`
	IntervalMaxFinal   time.Duration `toml:"interval_max_final"`
	RetryDelay         time.Duration `toml:"retry_delay"`
	RampDuration       time.Duration `toml:"ramp_duration"`

	RareChancePerSecond float64 `toml:"rare_chance_per_second"`
}

// CapGrowth raises every population cap on a fixed cadence
type CapGrowth struct {
	Interval time.Duration `toml:"interval"`
	Amount   int           `toml:"amount"`
}

// Health controls damage, healing and the game over threshold
type Health struct {
	Max               float64 `toml:"max"`
	Penalty           float64 `toml:"penalty"`
	Recovery          float64 `toml:"recovery"`
	GameOverThreshold float64 `toml:"game_over_threshold"`
}

// Combo controls the score multiplier
type Combo struct {
	Base               float64 `toml:"base"`
	Step               float64 `toml:"step"`
	RecoveryBonusScore int     `toml:"recovery_bonus_score"`
}

// Session holds countdown and tick clamping
type Session struct {
	CountdownSeconds int           `toml:"countdown_seconds"`
	MaxTickDelta     time.Duration `toml:"max_tick_delta"`
}

// Limit is the duration and rare bonus quota of one time limit
type Limit struct {
	Duration  time.Duration `toml:"duration"`
	RareQuota int           `toml:"rare_quota"`
}

// Table is the static configuration consumed by the engine
// Items is indexed by component.ItemType
type Table struct {
	Field   Field
	Items   [component.ItemTypeCount]component.ItemProfile
	Bands   []Band
	Spawn   Spawn
	Caps    CapGrowth
	Health  Health
	Combo   Combo
	Session Session
	Limits  [TimeLimitCount]Limit
}

// Default builds the table from compiled parameters
func Default() *Table {
	t := &Table{
		Field: Field{Width: parameter.FieldWidth, Height: parameter.FieldHeight},
		Bands: []Band{
			{Upper: parameter.HazardThreshold, Type: component.ItemHazard},
			{Upper: parameter.BonusAThreshold, Type: component.ItemBonusA},
			{Upper: parameter.BonusBThreshold, Type: component.ItemBonusB},
			{Upper: parameter.RecoveryThreshold, Type: component.ItemRecovery},
		},
		Spawn: Spawn{
			IntervalMinInitial:  parameter.SpawnIntervalMinInitial,
			IntervalMaxInitial:  parameter.SpawnIntervalMaxInitial,
			IntervalMinFinal:    parameter.SpawnIntervalMinFinal,
			IntervalMaxFinal:    parameter.SpawnIntervalMaxFinal,
			RetryDelay:          parameter.SpawnRetryDelay,
			RampDuration:        parameter.DifficultyRampDuration,
			RareChancePerSecond: parameter.RareChancePerSecond,
		},
		Caps: CapGrowth{Interval: parameter.CapIncreaseInterval, Amount: parameter.CapIncreaseAmount},
		Health: Health{
			Max:               parameter.HealthMax,
			Penalty:           parameter.HealthPenalty,
			Recovery:          parameter.HealthRecovery,
			GameOverThreshold: parameter.HealthGameOverThreshold,
		},
		Combo: Combo{
			Base:               parameter.ComboBase,
			Step:               parameter.ComboStep,
			RecoveryBonusScore: parameter.RecoveryBonusScore,
		},
		Session: Session{
			CountdownSeconds: parameter.CountdownSeconds,
			MaxTickDelta:     parameter.MaxTickDelta,
		},
	}

	t.Items[component.ItemHazard] = component.ItemProfile{
		Effect:       component.EffectPenalty,
		Size:         parameter.HazardSize,
		SpeedInitial: parameter.HazardSpeedInitial,
		SpeedFinal:   parameter.HazardSpeedFinal,
		SpawnMargin:  parameter.HazardSpawnMargin,
		BaseCap:      parameter.HazardBaseCap,
		CapCeiling:   parameter.HazardCapCeiling,
	}
	t.Items[component.ItemBonusA] = component.ItemProfile{
		Effect:       component.EffectAward,
		Size:         parameter.BonusASize,
		SpeedInitial: parameter.BonusASpeedInitial,
		SpeedFinal:   parameter.BonusASpeedFinal,
		SpawnMargin:  parameter.BonusASpawnMargin,
		Score:        parameter.BonusAScore,
		BaseCap:      parameter.BonusABaseCap,
		CapCeiling:   parameter.BonusACapCeiling,
	}
	t.Items[component.ItemBonusB] = component.ItemProfile{
		Effect:       component.EffectAward,
		Size:         parameter.BonusBSize,
		SpeedInitial: parameter.BonusBSpeedInitial,
		SpeedFinal:   parameter.BonusBSpeedFinal,
		SpawnMargin:  parameter.BonusBSpawnMargin,
		Score:        parameter.BonusBScore,
		BaseCap:      parameter.BonusBBaseCap,
		CapCeiling:   parameter.BonusBCapCeiling,
	}
	t.Items[component.ItemRecovery] = component.ItemProfile{
		Effect:       component.EffectRecovery,
		Size:         parameter.RecoverySize,
		SpeedInitial: parameter.RecoverySpeedInitial,
		SpeedFinal:   parameter.RecoverySpeedFinal,
		SpawnMargin:  parameter.RecoverySpawnMargin,
		HitInset:     parameter.RecoveryCollisionInset,
		BaseCap:      parameter.RecoveryBaseCap,
		CapCeiling:   parameter.RecoveryCapCeiling,
	}
	t.Items[component.ItemRareBonus] = component.ItemProfile{
		Effect:       component.EffectAward,
		Size:         parameter.RareBonusSize,
		SpeedInitial: parameter.RareBonusSpeed,
		SpeedFinal:   parameter.RareBonusSpeed,
		SpawnMargin:  parameter.RareBonusSpawnMargin,
		Score:        parameter.RareBonusScore,
		BaseCap:      parameter.RareBonusCap,
		CapCeiling:   parameter.RareBonusCap,
	}

	t.Limits[LimitBeginner] = Limit{Duration: parameter.TimeLimitBeginner, RareQuota: parameter.RareQuotaBeginner}
	t.Limits[LimitIntermediate] = Limit{Duration: parameter.TimeLimitIntermediate, RareQuota: parameter.RareQuotaIntermediate}
	t.Limits[LimitAdvanced] = Limit{Duration: parameter.TimeLimitAdvanced, RareQuota: parameter.RareQuotaAdvanced}

	return t
}

// Profile returns the behavior row for an item type
func (t *Table) Profile(it component.ItemType) *component.ItemProfile {
	return &t.Items[it]
}

// Limit returns the time limit row, falling back to beginner for out of range values
func (t *Table) Limit(l TimeLimit) Limit {
	if !l.Valid() {
		l = LimitBeginner
	}
	return t.Limits[l]
}

// Clone returns a deep copy safe to mutate
func (t *Table) Clone() *Table {
	c := *t
	c.Bands = append([]Band(nil), t.Bands...)
	return &c
}

// Validate checks structural constraints the engine relies on
func (t *Table) Validate() error {
	if t.Field.Width <= 0 || t.Field.Height <= 0 {
		return fmt.Errorf("%w: field %vx%v", ErrInvalidTable, t.Field.Width, t.Field.Height)
	}

	if len(t.Bands) == 0 {
		return fmt.Errorf("%w: no spawn bands", ErrInvalidTable)
	}
	prev := 0.0
	for i, b := range t.Bands {
		if b.Upper <= prev || b.Upper > 1.0 {
			return fmt.Errorf("%w: band %d upper %v not strictly increasing within (0,1]", ErrInvalidTable, i, b.Upper)
		}
		if b.Type != component.ItemNone && !b.Type.Valid() {
			return fmt.Errorf("%w: band %d type %v", ErrInvalidTable, i, b.Type)
		}
		if b.Type == component.ItemRareBonus {
			return fmt.Errorf("%w: band %d: rare bonus is drawn independently", ErrInvalidTable, i)
		}
		prev = b.Upper
	}
	if prev != 1.0 {
		return fmt.Errorf("%w: bands end at %v, want 1.0", ErrInvalidTable, prev)
	}

	for i := range t.Items {
		p := &t.Items[i]
		name := component.ItemType(i)
		if p.Size <= 0 {
			return fmt.Errorf("%w: %s size %v", ErrInvalidTable, name, p.Size)
		}
		if p.SpeedInitial < 0 || p.SpeedFinal < 0 {
			return fmt.Errorf("%w: %s negative speed", ErrInvalidTable, name)
		}
		if p.SpawnMargin < 0 || p.SpawnMargin >= 0.5 {
			return fmt.Errorf("%w: %s spawn margin %v outside [0,0.5)", ErrInvalidTable, name, p.SpawnMargin)
		}
		if p.HitInset < 0 {
			return fmt.Errorf("%w: %s negative hit inset", ErrInvalidTable, name)
		}
		if p.BaseCap < 0 || p.CapCeiling < p.BaseCap {
			return fmt.Errorf("%w: %s cap %d ceiling %d", ErrInvalidTable, name, p.BaseCap, p.CapCeiling)
		}
	}

	s := t.Spawn
	if s.IntervalMinInitial <= 0 || s.IntervalMaxInitial < s.IntervalMinInitial {
		return fmt.Errorf("%w: initial interval [%v,%v]", ErrInvalidTable, s.IntervalMinInitial, s.IntervalMaxInitial)
	}
	if s.IntervalMinFinal <= 0 || s.IntervalMaxFinal < s.IntervalMinFinal {
		return fmt.Errorf("%w: final interval [%v,%v]", ErrInvalidTable, s.IntervalMinFinal, s.IntervalMaxFinal)
	}
	if s.RetryDelay <= 0 || s.RetryDelay >= min(s.IntervalMinInitial, s.IntervalMinFinal) {
		return fmt.Errorf("%w: retry delay %v must be positive and shorter than every interval", ErrInvalidTable, s.RetryDelay)
	}
	// A non-positive ramp is accepted; difficulty clamps it to final values and logs
	if s.RareChancePerSecond < 0 {
		return fmt.Errorf("%w: rare chance %v", ErrInvalidTable, s.RareChancePerSecond)
	}

	if t.Caps.Interval <= 0 || t.Caps.Amount < 0 {
		return fmt.Errorf("%w: cap growth every %v by %d", ErrInvalidTable, t.Caps.Interval, t.Caps.Amount)
	}

	h := t.Health
	if h.Max <= 0 || h.Penalty < 0 || h.Recovery < 0 || h.GameOverThreshold < 0 || h.GameOverThreshold >= h.Max {
		return fmt.Errorf("%w: health %+v", ErrInvalidTable, h)
	}

	if t.Combo.Base < 1 || t.Combo.Step < 0 {
		return fmt.Errorf("%w: combo base %v step %v", ErrInvalidTable, t.Combo.Base, t.Combo.Step)
	}

	if t.Session.CountdownSeconds < 0 || t.Session.MaxTickDelta <= 0 {
		return fmt.Errorf("%w: session %+v", ErrInvalidTable, t.Session)
	}

	for i, l := range t.Limits {
		if l.Duration < time.Second || l.RareQuota < 0 {
			return fmt.Errorf("%w: limit %s %+v", ErrInvalidTable, TimeLimit(i), l)
		}
	}
	return nil
}
