package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/facefall/audio"
	"github.com/lixenwraith/facefall/config"
	"github.com/lixenwraith/facefall/core"
	"github.com/lixenwraith/facefall/engine/fsm"
	"github.com/lixenwraith/facefall/game"
	"github.com/lixenwraith/facefall/input"
	"github.com/lixenwraith/facefall/persistence"
	"github.com/lixenwraith/facefall/render"
	"github.com/lixenwraith/facefall/status"
)

// statusKeys are the metrics shown on the status bar, in order
var statusKeys = []string{"spawn.created", "motion.escaped", "detect.failures"}

// app binds one game to the terminal, the tracker and the presentation subscribers
type app struct {
	ctx    context.Context
	screen tcell.Screen

	game     *game.Game
	limit    config.TimeLimit
	field    config.Field
	tracker  *input.KeyboardTracker
	machine  *input.Machine
	renderer *render.TerminalRenderer

	sound  *audio.SoundManager
	cues   *audio.CuePlayer
	keeper *persistence.ScoreKeeper // nil when scores are disabled

	starting atomic.Bool

	mu      sync.Mutex
	message string
}

// handleEvent applies one terminal event, returning false on quit
func (a *app) handleEvent(ev tcell.Event) bool {
	in := a.machine.Process(ev)
	if in == nil {
		return true
	}

	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentRestart:
		a.restart()
	case input.IntentToggleMute:
		a.toggleMute()
	case input.IntentResize:
		a.screen.Sync()
		a.renderer.Resize()
	case input.IntentPoint:
		if x, y, ok := a.renderer.CellToField(in.X, in.Y, a.field); ok {
			a.tracker.CenterOn(x, y)
		}
	default:
		a.tracker.Apply(in)
	}
	return true
}

// restart starts from Idle, or closes a finished session and starts again
// Requests during an active session are ignored
func (a *app) restart() {
	switch a.game.State() {
	case fsm.StateIdle:
	case fsm.StateGameOver, fsm.StateError:
		if err := a.game.Close(); err != nil {
			log.Printf("[host] close before restart: %v", err)
		}
	default:
		return
	}
	a.start()
}

// start runs game.Start off the frame loop, at most one at a time
func (a *app) start() {
	if !a.starting.CompareAndSwap(false, true) {
		return
	}
	a.setMessage("")

	core.Go(func() {
		defer a.starting.Store(false)
		if err := a.game.Start(a.ctx); err != nil {
			log.Printf("[host] start: %v", err)
			a.setMessage(err.Error())
		}
	})
}

func (a *app) toggleMute() {
	muted := !a.cues.Muted()
	a.cues.SetMuted(muted)
	if muted {
		return
	}
	if err := a.sound.Initialize(); err != nil {
		log.Printf("[host] audio unavailable: %v", err)
		a.setMessage(fmt.Sprintf("audio unavailable: %v", err))
	}
}

// frame advances the session to now and draws it
func (a *app) frame(now time.Time) {
	a.game.Advance(now)
	snap := a.game.Snapshot()

	hud := render.HUD{
		Status:  statusLine(a.game.Status()),
		Message: a.getMessage(),
		Muted:   a.cues.Muted(),
	}
	if a.keeper != nil {
		hud.Best = a.keeper.Best(a.limit.String())
	}
	a.renderer.RenderFrame(snap, hud)
}

func (a *app) setMessage(msg string) {
	a.mu.Lock()
	a.message = msg
	a.mu.Unlock()
}

func (a *app) getMessage() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.message
}

// statusLine formats the status bar metrics as "name value" pairs
func statusLine(reg *status.Registry) string {
	parts := make([]string, 0, len(statusKeys))
	for _, k := range statusKeys {
		if !reg.Ints.Has(k) {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %d", k, reg.Ints.Get(k).Load()))
	}
	return strings.Join(parts, "  ")
}
