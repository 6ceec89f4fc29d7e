package main

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/facefall/audio"
	"github.com/lixenwraith/facefall/config"
	"github.com/lixenwraith/facefall/core"
	"github.com/lixenwraith/facefall/game"
	"github.com/lixenwraith/facefall/input"
	"github.com/lixenwraith/facefall/network"
	"github.com/lixenwraith/facefall/parameter"
	"github.com/lixenwraith/facefall/persistence"
	"github.com/lixenwraith/facefall/render"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "facefall: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	env, err := config.LoadHost()
	if err != nil {
		return err
	}
	host, err := parseHost(os.Args[1:], env)
	if err != nil {
		return err
	}

	if logFile := setupLogging(host.Debug); logFile != nil {
		defer logFile.Close()
	}

	table, err := config.Load(host.ConfigPath)
	if err != nil {
		return err
	}
	limit := config.ParseTimeLimit(host.Limit)

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	core.SetCrashReset(screen.Fini)
	// Normal exit terminal cleanup
	defer screen.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sound := audio.NewSoundManager(nil)
	defer sound.Cleanup()
	if !host.Mute {
		if err := sound.Initialize(); err != nil {
			log.Printf("[host] audio unavailable: %v", err)
		}
	}

	tracker := input.NewKeyboardTracker(table.Field)
	capture := input.NewTerminalCapture(screen)

	opts := game.Options{
		Config:   table,
		Limit:    limit,
		Capture:  capture,
		Detector: tracker,
		Assets:   sound,
	}
	if host.Seed != 0 {
		seed := uint64(host.Seed)
		opts.Rand = rand.New(rand.NewPCG(seed, seed))
	}
	g, err := game.New(opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := g.Close(); err != nil {
			log.Printf("[host] close: %v", err)
		}
	}()

	cues := audio.NewCuePlayer(sound, host.Mute)
	if _, err := g.Subscribe(cues); err != nil {
		return fmt.Errorf("subscribe cues: %w", err)
	}

	var keeper *persistence.ScoreKeeper
	if host.DBPath != "" {
		store, err := persistence.Open(host.DBPath)
		if err != nil {
			log.Printf("[host] scores disabled: %v", err)
		} else {
			defer store.Close()
			keeper = persistence.NewScoreKeeper(store)
			if _, err := g.Subscribe(keeper); err != nil {
				log.Printf("[host] subscribe scores: %v", err)
				keeper = nil
			}
		}
	}

	if host.Listen != "" {
		cfg := network.DefaultConfig()
		cfg.Address = host.Listen
		hub := network.NewHub(cfg)
		srv, err := network.Listen(hub)
		if err != nil {
			return err
		}
		if _, err := g.Subscribe(hub); err != nil {
			return fmt.Errorf("subscribe spectators: %w", err)
		}
		core.Go(func() {
			if err := srv.Serve(ctx); err != nil {
				log.Printf("[host] spectator server: %v", err)
			}
		})
	}

	a := &app{
		ctx:      ctx,
		screen:   screen,
		game:     g,
		limit:    limit,
		field:    table.Field,
		tracker:  tracker,
		machine:  input.NewMachine(),
		renderer: render.NewTerminalRenderer(screen),
		sound:    sound,
		cues:     cues,
		keeper:   keeper,
	}

	log.Printf("[host] ready, limit %s", limit)
	return loop(ctx, a)
}

// loop polls terminal events and draws frames until quit
func loop(ctx context.Context, a *app) error {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	a.frame(time.Now())
	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			a.frame(now)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
