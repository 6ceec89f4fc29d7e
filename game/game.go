package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/facefall/component"
	"github.com/lixenwraith/facefall/config"
	"github.com/lixenwraith/facefall/engine"
	"github.com/lixenwraith/facefall/engine/fsm"
	"github.com/lixenwraith/facefall/event"
	"github.com/lixenwraith/facefall/parameter"
	"github.com/lixenwraith/facefall/status"
	"github.com/lixenwraith/facefall/system"
)

// Options configures a Game
// Capture and Detector are required, the rest default
type Options struct {
	Config   *config.Table
	Limit    config.TimeLimit
	Capture  CaptureProvider
	Detector RegionDetector
	Assets   AssetLoader
	Clock    engine.Clock
	Rand     *rand.Rand
	Status   *status.Registry
}

// Game orchestrates one session at a time over the engine
//
// Threading:
//   - Advance, State, Snapshot and Close may be called from any goroutine, calls are serialized
//   - Start blocks on providers without holding the lock, Close during Start aborts it
//   - Events are dispatched to subscribers after the lock is released, batches in drain order
type Game struct {
	mu sync.Mutex

	opts  Options
	clock engine.Clock

	world *engine.World
	sched *engine.Scheduler

	routerMu sync.Mutex
	router   *event.Router
	// batchSeq is issued under mu, dispatched and turn under routerMu
	batchSeq   uint64
	dispatched uint64
	turn       *sync.Cond

	difficulty *system.Difficulty
	score      *system.ScoreController
	timer      *system.SessionTimer

	stream      Stream
	captureHeld bool

	countdownHandle *engine.Handle
	timerHandle     *engine.Handle
	frameHandle     *engine.Handle

	// epoch invalidates callbacks scheduled for an earlier Playing entry
	epoch uint64
	// now is the time at which the current transition happens
	now     time.Time
	lastErr error

	lastDetectLog time.Time

	statState       *status.AtomicString
	statDetectFails *atomic.Int64
	statPeakDelta   *status.AtomicFloat
}

// New wires the engine, the systems and the session lifecycle actions
func New(opts Options) (*Game, error) {
	if opts.Capture == nil || opts.Detector == nil {
		return nil, errors.New("game: capture provider and region detector are required")
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if !opts.Limit.Valid() {
		log.Printf("[game] invalid time limit %d, using %s", opts.Limit, config.LimitBeginner)
		opts.Limit = config.LimitBeginner
	}
	if opts.Clock == nil {
		opts.Clock = engine.NewTimeProvider()
	}
	if opts.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}

	event.InitRegistry()

	g := &Game{
		opts:            opts,
		clock:           opts.Clock,
		world:           engine.NewWorld(opts.Config, opts.Status, opts.Rand),
		sched:           engine.NewScheduler(opts.Status),
		router:          event.NewRouter(),
		statState:       opts.Status.Strings.Get("session.state"),
		statDetectFails: opts.Status.Ints.Get("detect.failures"),
		statPeakDelta:   opts.Status.Floats.Get("tick.peak_delta_ms"),
	}

	g.turn = sync.NewCond(&g.routerMu)
	g.difficulty = system.NewDifficulty(opts.Config)
	g.score = system.NewScoreController(g.world)
	g.timer = system.NewSessionTimer(g.world)
	g.world.AddSystem(system.NewSpawnSystem(g.world, g.difficulty))
	g.world.AddSystem(system.NewMotionSystem(g.world))
	g.world.AddSystem(system.NewCollisionSystem(g.world, g.score))

	g.registerLifecycle()
	g.statState.Store(g.world.Machine.StateName())
	return g, nil
}

// registerLifecycle binds state entry and exit actions
func (g *Game) registerLifecycle() {
	m := g.world.Machine

	m.OnEnter(fsm.StateIdle, func(w *engine.World) {
		g.cancelHandles()
		g.releaseCapture()
		w.Session = nil
		w.ClearItems()
		w.SetRegions(nil)
	})

	m.OnEnter(fsm.StateInitializing, func(w *engine.World) {
		w.Session = engine.NewGameSession(g.opts.Limit, w.Config)
		w.ClearItems()
		w.Status.Reset()
		log.Printf("[game] session %s started, limit %s", w.Session.ID, w.Session.Limit)
	})

	m.OnEnter(fsm.StateCountdown, func(w *engine.World) {
		g.timer.BeginCountdown()
		g.countdownHandle = g.sched.Every(g.now, parameter.SessionTimerInterval, g.countdownTick)
	})
	m.OnExit(fsm.StateCountdown, func(*engine.World) {
		g.countdownHandle.Cancel()
		g.countdownHandle = nil
	})

	m.OnEnter(fsm.StatePlaying, func(w *engine.World) {
		w.Session.BeginPlay(g.now, w.Config)
		w.ClearItems()
		w.InitSystems()

		g.epoch++
		epoch := g.epoch
		g.timerHandle = g.sched.Every(g.now, parameter.SessionTimerInterval, func(due time.Time) {
			if g.epoch == epoch {
				g.timer.Tick(due)
			}
		})
		g.frameHandle = g.sched.Frame(func(now time.Time, _ time.Duration) {
			if g.epoch == epoch {
				g.tick(now)
			}
		})
	})
	m.OnExit(fsm.StatePlaying, func(*engine.World) {
		g.timerHandle.Cancel()
		g.frameHandle.Cancel()
		g.timerHandle, g.frameHandle = nil, nil
	})

	m.OnEnter(fsm.StateGameOver, func(w *engine.World) {
		s := w.Session
		log.Printf("[game] session %s over: %s, score %d", s.ID, s.EndReason, s.Score)
		w.Emit(event.EventGameOver, &event.GameOverPayload{
			SessionID: s.ID,
			Reason:    s.EndReason,
			Score:     s.Score,
			Limit:     s.Limit.String(),
			Elapsed:   s.Elapsed,
		})
	})

	m.OnEnter(fsm.StateError, func(w *engine.World) {
		g.cancelHandles()
		g.releaseCapture()
		msg := "initialization failed"
		if g.lastErr != nil {
			msg = g.lastErr.Error()
		}
		log.Printf("[game] session error: %s", msg)
		w.Emit(event.EventSessionError, &event.SessionErrorPayload{Message: msg})
	})

	m.OnChange(func(w *engine.World, from, to fsm.StateID) {
		g.statState.Store(fsm.SessionStateName(to))
		w.Emit(event.EventStateChanged, &event.StateChangedPayload{
			From: fsm.SessionStateName(from),
			To:   fsm.SessionStateName(to),
		})
	})
}

// Subscribe registers a presentation handler; the returned function unsubscribes
// Handlers run on the goroutine that drove the change and must not call Subscribe
func (g *Game) Subscribe(h event.Handler) (func(), error) {
	g.routerMu.Lock()
	defer g.routerMu.Unlock()
	cancel, err := g.router.Register(h)
	if err != nil {
		return nil, err
	}
	return func() {
		g.routerMu.Lock()
		defer g.routerMu.Unlock()
		cancel()
	}, nil
}

// State returns the current session state
func (g *Game) State() fsm.StateID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.world.State()
}

// Snapshot returns a copy of everything a renderer needs
func (g *Game) Snapshot() engine.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.world.Snapshot()
}

// Status returns the metrics registry
func (g *Game) Status() *status.Registry {
	return g.opts.Status
}

// Limit returns the configured time limit
func (g *Game) Limit() config.TimeLimit {
	return g.opts.Limit
}

// Advance runs due timers and the frame tick at now, then flushes events
func (g *Game) Advance(now time.Time) {
	g.mu.Lock()
	g.sched.Advance(now)
	b := g.drain()
	g.mu.Unlock()

	g.dispatch(b)
}

// Close tears down any session and returns to Idle, releasing capture
func (g *Game) Close() error {
	g.mu.Lock()
	var err error
	if g.captureHeld {
		err = g.releaseCaptureErr()
	}
	g.now = g.clock.Now()
	if g.world.State() != fsm.StateIdle {
		g.world.Machine.Force(g.world, fsm.StateIdle)
	}
	b := g.drain()
	g.mu.Unlock()

	g.dispatch(b)
	if err != nil {
		return fmt.Errorf("release capture: %w", err)
	}
	return nil
}

// transition moves the machine under the lock, stamping the transition time
func (g *Game) transition(target fsm.StateID) error {
	g.now = g.clock.Now()
	return g.world.Machine.Transition(g.world, target)
}

// countdownTick runs on the one-second cadence while Countdown
func (g *Game) countdownTick(due time.Time) {
	if g.world.State() != fsm.StateCountdown {
		return
	}
	if !g.timer.CountdownTick() {
		return
	}
	g.now = due
	if err := g.world.Machine.Transition(g.world, fsm.StatePlaying); err != nil {
		log.Printf("[game] countdown: %v", err)
	}
}

// tick is one Playing frame: regions, then spawn, motion and collision
func (g *Game) tick(now time.Time) {
	w := g.world
	if !w.Playing() {
		return
	}
	s := w.Session

	dt := now.Sub(s.LastTick)
	g.statPeakDelta.Max(float64(dt) / float64(time.Millisecond))
	switch {
	case dt < 0:
		log.Printf("[game] negative tick delta %v clamped to 0", dt)
		dt = 0
	case dt > w.Config.Session.MaxTickDelta:
		dt = w.Config.Session.MaxTickDelta
	}
	s.LastTick = now
	if elapsed := now.Sub(s.PlayStart).Seconds(); elapsed > s.Elapsed {
		s.Elapsed = elapsed
	}

	w.SetRegions(g.detect(now))
	w.Update(now, dt)
}

// detect returns this tick's regions; failures degrade to none
func (g *Game) detect(now time.Time) []component.Region {
	if g.stream == nil {
		return nil
	}
	found, err := g.opts.Detector.Detect(g.stream.CurrentFrame())
	if err != nil {
		g.statDetectFails.Add(1)
		if now.Sub(g.lastDetectLog) >= parameter.DetectFailureLogInterval {
			g.lastDetectLog = now
			log.Printf("[game] detection failed: %v", err)
		}
		return nil
	}
	return found
}

func (g *Game) cancelHandles() {
	for _, h := range []*engine.Handle{g.countdownHandle, g.timerHandle, g.frameHandle} {
		h.Cancel()
	}
	g.countdownHandle, g.timerHandle, g.frameHandle = nil, nil, nil
	g.epoch++
}

func (g *Game) releaseCapture() {
	if err := g.releaseCaptureErr(); err != nil {
		log.Printf("[game] release capture: %v", err)
	}
}

func (g *Game) releaseCaptureErr() error {
	if !g.captureHeld {
		return nil
	}
	g.captureHeld = false
	g.stream = nil
	return g.opts.Capture.Release()
}

// batch is one drained set of events with its place in the dispatch order
type batch struct {
	seq uint64
	evs []event.GameEvent
}

// drain takes pending events under the lock and stamps them with the next sequence
// An empty drain takes no sequence number
func (g *Game) drain() batch {
	evs := g.world.Events.Consume()
	if len(evs) == 0 {
		return batch{}
	}
	b := batch{seq: g.batchSeq, evs: slices.Clone(evs)}
	g.batchSeq++
	return b
}

// dispatch delivers a batch once every earlier batch has been delivered
func (g *Game) dispatch(b batch) {
	if len(b.evs) == 0 {
		return
	}
	g.routerMu.Lock()
	defer g.routerMu.Unlock()
	for g.dispatched != b.seq {
		g.turn.Wait()
	}
	defer func() {
		g.dispatched++
		g.turn.Broadcast()
	}()
	g.router.Dispatch(b.evs)
}

// startTimeout bounds the blocking part of Start
func startTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, parameter.AcquireTimeout)
}
