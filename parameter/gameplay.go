package parameter

import "time"

// Health ("integrity")
const (
	// HealthMax is full health
	HealthMax = 1.0

	// HealthPenalty is subtracted on every hazard hit
	HealthPenalty = 0.2

	// HealthRecovery is added on a recovery catch below full health
	HealthRecovery = 0.2

	// HealthGameOverThreshold ends the session when health falls to or below it
	HealthGameOverThreshold = 0.5
)

// Combo & Score
const (
	// ComboBase is the multiplier after a reset
	ComboBase = 1.0

	// ComboStep is added on every non-hazard catch
	ComboStep = 0.1

	// RecoveryBonusScore is awarded instead of healing at full health
	RecoveryBonusScore = 100
)

// Session
const (
	// CountdownSeconds is the number of countdown ticks before play, followed by a start tick
	CountdownSeconds = 3

	TimeLimitBeginner     = 30 * time.Second
	TimeLimitIntermediate = 60 * time.Second
	TimeLimitAdvanced     = 90 * time.Second

	// Rare bonus quota per session for each time limit
	RareQuotaBeginner     = 1
	RareQuotaIntermediate = 2
	RareQuotaAdvanced     = 3
)

// Game over reasons reported to the presentation layer
const (
	ReasonTimeExpired    = "time expired"
	ReasonHealthDepleted = "health depleted"
)
