package component

// EffectKind selects the scoring behavior dispatched on a catch
type EffectKind uint8

const (
	EffectPenalty  EffectKind = iota // Health loss, combo reset
	EffectAward                      // Base score times combo, combo step
	EffectRecovery                   // Health gain or bonus score at full health, combo step
)

// ItemProfile is the per-type behavior row of the static configuration table
// One profile replaces one bespoke item implementation
type ItemProfile struct {
	Effect EffectKind `toml:"-"`

	Size         float64 `toml:"size"`
	SpeedInitial float64 `toml:"speed_initial"` // Units per second at elapsed 0
	SpeedFinal   float64 `toml:"speed_final"`   // Units per second at the end of the ramp
	SpawnMargin  float64 `toml:"spawn_margin"`  // Fraction of field width kept clear on each side
	HitInset     float64 `toml:"hit_inset"`     // Inward inset of the collision box
	Score        int     `toml:"score"`         // Base score for award effects

	BaseCap    int `toml:"base_cap"`    // Population cap at session start
	CapCeiling int `toml:"cap_ceiling"` // Population cap never grows past this
}
