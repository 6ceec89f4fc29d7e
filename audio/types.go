package audio

// SoundType represents different sound cues
type SoundType int

const (
	SoundChime     SoundType = iota // Bonus catch
	SoundBuzz                       // Hazard hit
	SoundRise                       // Recovery catch
	SoundCoin                       // Rare bonus catch
	SoundBeep                       // Countdown tick
	SoundStart                      // Countdown reached zero
	SoundFall                       // Game over
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundChime: "chime",
	SoundBuzz:  "buzz",
	SoundRise:  "rise",
	SoundCoin:  "coin",
	SoundBeep:  "beep",
	SoundStart: "start",
	SoundFall:  "fall",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
