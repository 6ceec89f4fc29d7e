package system

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lixenwraith/facefall/component"
	"github.com/lixenwraith/facefall/config"
	"github.com/lixenwraith/facefall/engine"
	"github.com/lixenwraith/facefall/engine/fsm"
	"github.com/lixenwraith/facefall/status"
)

var testStart = time.Unix(1_700_000_000, 0)

// newPlayingWorld returns a world in Playing with a fresh session started at testStart
func newPlayingWorld(t *testing.T, tbl *config.Table) *engine.World {
	t.Helper()
	if tbl == nil {
		tbl = config.Default()
	}
	w := engine.NewWorld(tbl, status.NewRegistry(), rand.New(rand.NewPCG(7, 11)))
	w.Session = engine.NewGameSession(config.LimitBeginner, tbl)
	for _, s := range []fsm.StateID{fsm.StateInitializing, fsm.StateLoadingModel, fsm.StateAcquiringCapture, fsm.StateCountdown, fsm.StatePlaying} {
		if err := w.Machine.Transition(w, s); err != nil {
			t.Fatalf("Setup transition failed: %v", err)
		}
	}
	w.Session.BeginPlay(testStart, tbl)
	return w
}

// place adds a live item with the table's size for its type
func place(w *engine.World, t component.ItemType, x, y float64) *component.Item {
	size := w.Config.Profile(t).Size
	return w.SpawnItem(&component.Item{Type: t, X: x, Y: y, Width: size, Height: size, Speed: 100})
}
