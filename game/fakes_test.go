package game

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/facefall/component"
	"github.com/lixenwraith/facefall/config"
	"github.com/lixenwraith/facefall/engine"
	"github.com/lixenwraith/facefall/event"
)

var testStart = time.Unix(1_700_000_000, 0)

type fakeStream struct{}

func (fakeStream) CurrentFrame() Frame { return "frame" }

type fakeCapture struct {
	mu       sync.Mutex
	err      error
	acquired int
	released int
	started  chan struct{} // closed when Acquire is entered, if set
	gate     chan struct{} // Acquire waits on it, if set
}

func (c *fakeCapture) Acquire(ctx context.Context) (Stream, error) {
	if c.started != nil {
		close(c.started)
	}
	if c.gate != nil {
		select {
		case <-c.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	c.acquired++
	return fakeStream{}, nil
}

func (c *fakeCapture) Release() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.released++
	return nil
}

func (c *fakeCapture) counts() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.acquired, c.released
}

type fakeDetector struct {
	ready     bool
	loadErr   error
	loads     int
	regions   []component.Region
	detectErr error
	detects   int
}

func (d *fakeDetector) IsModelReady() bool { return d.ready }

func (d *fakeDetector) LoadModel(context.Context) error {
	d.loads++
	if d.loadErr != nil {
		return d.loadErr
	}
	d.ready = true
	return nil
}

func (d *fakeDetector) Detect(Frame) ([]component.Region, error) {
	d.detects++
	if d.detectErr != nil {
		return nil, d.detectErr
	}
	return d.regions, nil
}

type fakeAssets struct {
	err error
}

func (a *fakeAssets) Preload(context.Context) error { return a.err }

// recorder collects every dispatched event
type recorder struct {
	mu     sync.Mutex
	events []event.GameEvent
}

func (r *recorder) HandleEvent(ev event.GameEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) EventTypes() []event.EventType { return nil }

func (r *recorder) ofType(et event.EventType) []event.GameEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []event.GameEvent
	for _, ev := range r.events {
		if ev.Type == et {
			out = append(out, ev)
		}
	}
	return out
}

type harness struct {
	game     *Game
	clock    *engine.MockTimeProvider
	capture  *fakeCapture
	detector *fakeDetector
	events   *recorder
}

func newHarness(t *testing.T, tbl *config.Table) *harness {
	t.Helper()
	h := &harness{
		clock:    engine.NewMockTimeProvider(testStart),
		capture:  &fakeCapture{},
		detector: &fakeDetector{},
		events:   &recorder{},
	}
	g, err := New(Options{
		Config:   tbl,
		Limit:    config.LimitBeginner,
		Capture:  h.capture,
		Detector: h.detector,
		Clock:    h.clock,
		Rand:     rand.New(rand.NewPCG(1, 1)),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := g.Subscribe(h.events); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	h.game = g
	return h
}

// step advances the mock clock and the game together
func (h *harness) step(d time.Duration) {
	h.game.Advance(h.clock.Advance(d))
}

// startPlaying runs Start and the countdown until Playing
func (h *harness) startPlaying(t *testing.T) {
	t.Helper()
	if err := h.game.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	for i := 0; i < 4; i++ {
		h.step(time.Second)
	}
}
