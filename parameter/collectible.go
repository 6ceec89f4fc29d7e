package parameter

import "time"

// Hazard Item
const (
	HazardSize         = 50.0
	HazardSpeedInitial = 420.0 // units per second
	HazardSpeedFinal   = 900.0
	HazardSpawnMargin  = 0.05 // fraction of field width kept clear on each side
	HazardBaseCap      = 2
	HazardCapCeiling   = 7
)

// Bonus A Item (regular fruit)
const (
	BonusASize         = 40.0
	BonusASpeedInitial = 360.0
	BonusASpeedFinal   = 780.0
	BonusASpawnMargin  = 0.05
	BonusAScore        = 200
	BonusABaseCap      = 4
	BonusACapCeiling   = 12
)

// Bonus B Item (special high-value fruit)
const (
	BonusBSize         = 40.0
	BonusBSpeedInitial = 480.0
	BonusBSpeedFinal   = 960.0
	BonusBSpawnMargin  = 0.15
	BonusBScore        = 500
	BonusBBaseCap      = 1
	BonusBCapCeiling   = 3
)

// Recovery Item
const (
	RecoverySize           = 60.0
	RecoverySpeedInitial   = 300.0
	RecoverySpeedFinal     = 660.0
	RecoverySpawnMargin    = 0.05
	RecoveryCollisionInset = 10.0
	RecoveryBaseCap        = 1
	RecoveryCapCeiling     = 5
)

// Rare Bonus Item
// Spawned outside the weighted draw, speed is fixed for the whole session
const (
	RareBonusSize        = 50.0
	RareBonusSpeed       = 240.0
	RareBonusSpawnMargin = 0.10
	RareBonusScore       = 1000
	RareBonusCap         = 1

	// RareChancePerSecond is the spawn probability density, scaled by tick delta
	RareChancePerSecond = 0.05
)

// Spawn Bands
// Upper bounds of the cumulative weighted draw, strictly increasing and ending at 1.0
const (
	HazardThreshold   = 0.55
	BonusAThreshold   = 0.80
	BonusBThreshold   = 0.85
	RecoveryThreshold = 1.0
)

// Spawn Timing
const (
	SpawnIntervalMinInitial = 700 * time.Millisecond
	SpawnIntervalMaxInitial = 2200 * time.Millisecond
	SpawnIntervalMinFinal   = 150 * time.Millisecond
	SpawnIntervalMaxFinal   = 600 * time.Millisecond

	// SpawnRetryDelay is applied after a capped or empty draw, shorter than any interval
	SpawnRetryDelay = 100 * time.Millisecond

	// DifficultyRampDuration is the time to reach final speeds and intervals
	DifficultyRampDuration = 60 * time.Second
)

// Population Cap Growth
const (
	CapIncreaseInterval = 10 * time.Second
	CapIncreaseAmount   = 1
)
