package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/facefall/component"
	"github.com/lixenwraith/facefall/config"
	"github.com/lixenwraith/facefall/event"
)

func singleBandTable(t component.ItemType) *config.Table {
	tbl := config.Default().Clone()
	tbl.Bands = []config.Band{{Upper: 1.0, Type: t}}
	tbl.Spawn.RareChancePerSecond = 0
	return tbl
}

func TestSpawnSelectPartitionsUnitInterval(t *testing.T) {
	w := newPlayingWorld(t, nil)
	s := NewSpawnSystem(w, NewDifficulty(w.Config))

	cases := []struct {
		r    float64
		want component.ItemType
	}{
		{0, component.ItemHazard},
		{0.5499, component.ItemHazard},
		{0.55, component.ItemBonusA},
		{0.7999, component.ItemBonusA},
		{0.80, component.ItemBonusB},
		{0.85, component.ItemRecovery},
		{0.999999, component.ItemRecovery},
	}
	for _, c := range cases {
		if got := s.Select(c.r); got != c.want {
			t.Errorf("Select(%v): expected %s, got %s", c.r, c.want, got)
		}
	}

	// Every draw in [0,1) lands in exactly one band
	for i := 0; i < 10_000; i++ {
		if !s.Select(w.Rand.Float64()).Valid() {
			t.Fatal("Expected every draw to select a real type with default bands")
		}
	}
}

func TestSpawnInitWithinInitialBounds(t *testing.T) {
	w := newPlayingWorld(t, nil)
	s := NewSpawnSystem(w, NewDifficulty(w.Config))

	for i := 0; i < 100; i++ {
		s.Init()
		delay := w.Session.NextSpawn.Sub(testStart)
		if delay < w.Config.Spawn.IntervalMinInitial || delay > w.Config.Spawn.IntervalMaxInitial {
			t.Fatalf("Expected first spawn within initial bounds, got %v", delay)
		}
	}
}

func TestSpawnCreatesItemAboveField(t *testing.T) {
	tbl := singleBandTable(component.ItemBonusB)
	w := newPlayingWorld(t, tbl)
	d := NewDifficulty(tbl)
	s := NewSpawnSystem(w, d)

	now := testStart.Add(5 * time.Second)
	w.Session.Elapsed = 5
	w.Session.NextSpawn = now
	s.Update(now, 16*time.Millisecond)

	if len(w.Items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(w.Items))
	}
	it := w.Items[0]
	p := tbl.Profile(component.ItemBonusB)
	if it.Y != -p.Size || it.Width != p.Size || it.Height != p.Size {
		t.Errorf("Expected item just above field with size %v, got %+v", p.Size, it)
	}
	lo := p.SpawnMargin * tbl.Field.Width
	hi := (1-p.SpawnMargin)*tbl.Field.Width - p.Size
	if it.X < lo || it.X > hi {
		t.Errorf("Expected x in [%v,%v], got %v", lo, hi, it.X)
	}
	if it.Speed != d.Speed(component.ItemBonusB, 5) {
		t.Errorf("Expected speed %v, got %v", d.Speed(component.ItemBonusB, 5), it.Speed)
	}

	delay := w.Session.NextSpawn.Sub(now)
	bLo, bHi := d.IntervalBounds(5)
	if delay < bLo || delay > bHi {
		t.Errorf("Expected next spawn within [%v,%v], got %v", bLo, bHi, delay)
	}

	evs := w.Events.Consume()
	if len(evs) != 1 || evs[0].Type != event.EventItemSpawned {
		t.Errorf("Expected one spawn event, got %+v", evs)
	}
}

func TestSpawnNotDueDoesNothing(t *testing.T) {
	w := newPlayingWorld(t, singleBandTable(component.ItemHazard))
	s := NewSpawnSystem(w, NewDifficulty(w.Config))

	w.Session.NextSpawn = testStart.Add(time.Second)
	s.Update(testStart.Add(999*time.Millisecond), 16*time.Millisecond)
	if len(w.Items) != 0 {
		t.Errorf("Expected no spawn before due time, got %d", len(w.Items))
	}
}

func TestSpawnCapReachedUsesRetryDelay(t *testing.T) {
	tbl := singleBandTable(component.ItemHazard)
	w := newPlayingWorld(t, tbl)
	s := NewSpawnSystem(w, NewDifficulty(tbl))

	w.Session.Caps[component.ItemHazard] = 2
	place(w, component.ItemHazard, 100, 0)
	place(w, component.ItemHazard, 300, 0)

	now := testStart.Add(2 * time.Second)
	w.Session.NextSpawn = now
	s.Update(now, 16*time.Millisecond)

	if got := w.LiveCount(component.ItemHazard); got != 2 {
		t.Errorf("Expected hazard count to stay 2, got %d", got)
	}
	if want := now.Add(tbl.Spawn.RetryDelay); !w.Session.NextSpawn.Equal(want) {
		t.Errorf("Expected retry at %v, got %v", want, w.Session.NextSpawn)
	}
	if got := w.Status.Ints.Get("spawn.miss").Load(); got != 1 {
		t.Errorf("Expected 1 miss, got %d", got)
	}
}

func TestSpawnNoneBandIsMiss(t *testing.T) {
	tbl := singleBandTable(component.ItemNone)
	w := newPlayingWorld(t, tbl)
	s := NewSpawnSystem(w, NewDifficulty(tbl))

	w.Session.NextSpawn = testStart
	s.Update(testStart, 0)
	if len(w.Items) != 0 {
		t.Errorf("Expected no item from empty band, got %d", len(w.Items))
	}
	if !w.Session.NextSpawn.Equal(testStart.Add(tbl.Spawn.RetryDelay)) {
		t.Errorf("Expected retry delay after empty band, got %v", w.Session.NextSpawn.Sub(testStart))
	}
}

func TestSpawnMarginCollapse(t *testing.T) {
	tbl := singleBandTable(component.ItemHazard)
	tbl.Field.Width = 50 // narrower than margins plus item size
	w := newPlayingWorld(t, tbl)
	s := NewSpawnSystem(w, NewDifficulty(tbl))

	w.Session.NextSpawn = testStart
	s.Update(testStart, 0)
	if len(w.Items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(w.Items))
	}
	if want := tbl.Profile(component.ItemHazard).SpawnMargin * 50; w.Items[0].X != want {
		t.Errorf("Expected collapsed x %v, got %v", want, w.Items[0].X)
	}
}

func TestSpawnRareQuotaAndExclusivity(t *testing.T) {
	tbl := singleBandTable(component.ItemHazard)
	tbl.Spawn.RareChancePerSecond = 1e9 // every roll succeeds
	w := newPlayingWorld(t, tbl)
	s := NewSpawnSystem(w, NewDifficulty(tbl))

	far := testStart.Add(time.Hour)
	w.Session.NextSpawn = far

	s.Update(testStart, 16*time.Millisecond)
	if got := w.LiveCount(component.ItemRareBonus); got != 1 {
		t.Fatalf("Expected 1 rare bonus, got %d", got)
	}
	if !w.Session.NextSpawn.Equal(far) {
		t.Error("Expected rare spawn to leave regular timing untouched")
	}

	// One live at a time
	s.Update(testStart, 16*time.Millisecond)
	if got := w.LiveCount(component.ItemRareBonus); got != 1 {
		t.Errorf("Expected still 1 rare bonus while one is live, got %d", got)
	}

	rare := w.Items[0]
	if rare.Speed != tbl.Profile(component.ItemRareBonus).SpeedInitial {
		t.Errorf("Expected fixed rare speed, got %v", rare.Speed)
	}

	// Beginner quota is 1
	rare.Active = false
	w.PruneInactive()
	s.Update(testStart, 16*time.Millisecond)
	if got := w.LiveCount(component.ItemRareBonus); got != 0 {
		t.Errorf("Expected quota exhausted, got %d rare", got)
	}
	if w.Session.RareUsed != 1 {
		t.Errorf("Expected 1 rare used, got %d", w.Session.RareUsed)
	}
}

func TestSpawnRareNeedsPositiveDelta(t *testing.T) {
	tbl := singleBandTable(component.ItemHazard)
	tbl.Spawn.RareChancePerSecond = 1e9
	w := newPlayingWorld(t, tbl)
	s := NewSpawnSystem(w, NewDifficulty(tbl))
	w.Session.NextSpawn = testStart.Add(time.Hour)

	s.Update(testStart, 0)
	if got := w.LiveCount(component.ItemRareBonus); got != 0 {
		t.Errorf("Expected no rare roll success at zero delta, got %d", got)
	}
}
