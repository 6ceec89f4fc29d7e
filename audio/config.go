package audio

import (
	"github.com/lixenwraith/facefall/parameter"
)

// AudioConfig holds synthesis and mixing settings
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the default cue mix
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.AudioMasterVolume,
	}
	cfg.EffectVolumes[SoundChime] = 0.6
	cfg.EffectVolumes[SoundBuzz] = 0.5
	cfg.EffectVolumes[SoundRise] = 0.6
	cfg.EffectVolumes[SoundCoin] = 0.7
	cfg.EffectVolumes[SoundBeep] = 0.4
	cfg.EffectVolumes[SoundStart] = 0.5
	cfg.EffectVolumes[SoundFall] = 0.6
	return cfg
}

// Volume returns the effective gain of a cue, clamped to [0, 1]
func (c *AudioConfig) Volume(s SoundType) float64 {
	if s < 0 || s >= soundTypeCount {
		return 0
	}
	v := c.EffectVolumes[s] * c.MasterVolume
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
