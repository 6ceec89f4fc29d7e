package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default master gain in [0, 1]
	AudioMasterVolume = 0.5
)

// Catch Chime (bonus A and bonus B)
const (
	ChimeSoundDuration         = 400 * time.Millisecond
	ChimeSoundAttack           = 5 * time.Millisecond
	ChimeSoundFundamentalDecay = 350 * time.Millisecond
	ChimeSoundOvertoneDecay    = 150 * time.Millisecond
)

// Hazard Buzz
const (
	BuzzSoundDuration = 180 * time.Millisecond
	BuzzSoundAttack   = 5 * time.Millisecond
	BuzzSoundRelease  = 60 * time.Millisecond
)

// Recovery Rise (two ascending notes)
const (
	RiseSoundNoteDuration = 120 * time.Millisecond
	RiseSoundAttack       = 5 * time.Millisecond
	RiseSoundRelease      = 60 * time.Millisecond
)

// Rare Coin
const (
	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 280 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 40 * time.Millisecond
	CoinSoundNote2Release  = 200 * time.Millisecond
)

// Countdown Beep
// The final tick (value 0) plays a higher, longer start tone
const (
	BeepSoundDuration   = 90 * time.Millisecond
	StartSoundDuration  = 300 * time.Millisecond
	BeepSoundAttack     = 3 * time.Millisecond
	BeepSoundRelease    = 30 * time.Millisecond
	BeepSoundFrequency  = 660.0
	StartSoundFrequency = 1320.0
)

// Game Over Fall (three descending notes)
const (
	FallSoundNoteDuration = 180 * time.Millisecond
	FallSoundAttack       = 5 * time.Millisecond
	FallSoundRelease      = 90 * time.Millisecond
)
