package audio

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/facefall/parameter"
)

// SoundManager owns the speaker and mixes one-shot cues
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	cache       *soundCache
	initialized bool
	played      int
}

// NewSoundManager creates a sound manager, nil config selects defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		cache: newSoundCache(cfg),
	}
}

// Initialize opens the speaker and starts the mixer
// Disabled configs succeed without touching the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("[audio] speaker ready at %d Hz", sm.cfg.SampleRate)
	return nil
}

// Cleanup clears pending cues and stops the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	sm.initialized = false
}

// Play queues a cue on the mixer, a no-op before Initialize
func (sm *SoundManager) Play(s SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	buf := sm.cache.get(s, sm.cfg)
	if buf == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
	sm.played++
}

// Preload renders every cue ahead of play, satisfying game.AssetLoader
func (sm *SoundManager) Preload(ctx context.Context) error {
	if !sm.cfg.Enabled {
		return nil
	}
	if err := sm.cache.preload(ctx, sm.cfg); err != nil {
		return fmt.Errorf("preload cues: %w", err)
	}
	log.Printf("[audio] %d cues rendered", sm.cache.ready())
	return nil
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Played returns the number of cues queued since creation
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}
