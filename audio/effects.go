package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/facefall/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a stream with a linear gain
// math.Log2(0) is -Inf, so zero gain is expressed as silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a single enveloped note
func tone(freq float64, duration, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, duration, wave, rate)
	return NewEnvelope(osc, duration, attack, release, rate)
}

// CreateChimeSound generates a bell-like ding for bonus catches
func CreateChimeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (A5) with an octave overtone
	fund := tone(880.0, parameter.ChimeSoundDuration, parameter.ChimeSoundAttack, parameter.ChimeSoundFundamentalDecay, WaveSine, rate)
	over := tone(1760.0, parameter.ChimeSoundDuration, parameter.ChimeSoundAttack, parameter.ChimeSoundOvertoneDecay, WaveSine, rate)

	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)
	return newVolume(mixed, cfg.Volume(SoundChime))
}

// CreateBuzzSound generates a harsh low buzz for hazard hits
func CreateBuzzSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	saw := tone(90.0, parameter.BuzzSoundDuration, parameter.BuzzSoundAttack, parameter.BuzzSoundRelease, WaveSaw, rate)
	grit := tone(0, parameter.BuzzSoundDuration, parameter.BuzzSoundAttack, parameter.BuzzSoundRelease, WaveNoise, rate)

	mixed := beep.Mix(
		newVolume(saw, 0.8),
		newVolume(grit, 0.2),
	)
	return newVolume(mixed, cfg.Volume(SoundBuzz))
}

// CreateRiseSound generates two ascending notes for recovery catches
func CreateRiseSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// C5 then G5
	n1 := tone(523.25, parameter.RiseSoundNoteDuration, parameter.RiseSoundAttack, parameter.RiseSoundRelease, WaveSine, rate)
	n2 := tone(783.99, parameter.RiseSoundNoteDuration, parameter.RiseSoundAttack, parameter.RiseSoundRelease, WaveSine, rate)

	return newVolume(beep.Seq(n1, n2), cfg.Volume(SoundRise))
}

// CreateCoinSound generates a two-note square chime for the rare bonus
func CreateCoinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5 then E6
	n1 := tone(987.77, parameter.CoinSoundNote1Duration, parameter.CoinSoundAttack, parameter.CoinSoundNote1Release, WaveSquare, rate)
	n2 := tone(1318.51, parameter.CoinSoundNote2Duration, parameter.CoinSoundAttack, parameter.CoinSoundNote2Release, WaveSquare, rate)

	return newVolume(beep.Seq(n1, n2), cfg.Volume(SoundCoin))
}

// CreateBeepSound generates the countdown tick
func CreateBeepSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(parameter.BeepSoundFrequency, parameter.BeepSoundDuration, parameter.BeepSoundAttack, parameter.BeepSoundRelease, WaveSquare, rate)
	return newVolume(s, cfg.Volume(SoundBeep))
}

// CreateStartSound generates the tone played when the countdown reaches zero
func CreateStartSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(parameter.StartSoundFrequency, parameter.StartSoundDuration, parameter.BeepSoundAttack, parameter.BeepSoundRelease, WaveSquare, rate)
	return newVolume(s, cfg.Volume(SoundStart))
}

// CreateFallSound generates three descending notes for game over
func CreateFallSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// G4, E4, C4
	notes := []float64{392.0, 329.63, 261.63}
	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		seq = append(seq, tone(f, parameter.FallSoundNoteDuration, parameter.FallSoundAttack, parameter.FallSoundRelease, WaveSaw, rate))
	}
	return newVolume(beep.Seq(seq...), cfg.Volume(SoundFall))
}

// GetSoundEffect returns the streamer for the given cue, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundChime:
		return CreateChimeSound(cfg)
	case SoundBuzz:
		return CreateBuzzSound(cfg)
	case SoundRise:
		return CreateRiseSound(cfg)
	case SoundCoin:
		return CreateCoinSound(cfg)
	case SoundBeep:
		return CreateBeepSound(cfg)
	case SoundStart:
		return CreateStartSound(cfg)
	case SoundFall:
		return CreateFallSound(cfg)
	default:
		return nil
	}
}
