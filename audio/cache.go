package audio

import (
	"context"
	"sync"

	"github.com/gopxl/beep"
)

// soundCache stores rendered cue buffers so playback skips synthesis
type soundCache struct {
	mu     sync.RWMutex
	format beep.Format
	store  [soundTypeCount]*beep.Buffer
}

func newSoundCache(cfg *AudioConfig) *soundCache {
	return &soundCache{
		format: beep.Format{
			SampleRate:  beep.SampleRate(cfg.SampleRate),
			NumChannels: 2,
			Precision:   2,
		},
	}
}

// get returns the cached buffer or renders it on demand
func (c *soundCache) get(st SoundType, cfg *AudioConfig) *beep.Buffer {
	if st < 0 || st >= soundTypeCount {
		return nil
	}

	c.mu.RLock()
	buf := c.store[st]
	c.mu.RUnlock()
	if buf != nil {
		return buf
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.store[st] != nil {
		return c.store[st]
	}

	s := GetSoundEffect(st, cfg)
	if s == nil {
		return nil
	}
	buf = beep.NewBuffer(c.format)
	buf.Append(s)
	c.store[st] = buf
	return buf
}

// preload renders every cue, stopping early when ctx ends
func (c *soundCache) preload(ctx context.Context, cfg *AudioConfig) error {
	for st := SoundType(0); st < soundTypeCount; st++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.get(st, cfg)
	}
	return nil
}

// ready reports how many cues are rendered
func (c *soundCache) ready() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, b := range c.store {
		if b != nil {
			n++
		}
	}
	return n
}
