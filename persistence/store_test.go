package persistence

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/facefall/event"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Error("Expected error for empty path")
	}
}

func TestRecordAndBest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, ok, err := s.Best(ctx, "beginner"); err != nil || ok {
		t.Fatalf("Expected no best on empty store, got ok=%v err=%v", ok, err)
	}

	results := []Result{
		{SessionID: "a", Limit: "beginner", Score: 1200, Reason: "time expired"},
		{SessionID: "b", Limit: "beginner", Score: 3400, Reason: "health depleted"},
		{SessionID: "c", Limit: "advanced", Score: 9000, Reason: "time expired"},
	}
	for _, r := range results {
		if err := s.Record(ctx, r); err != nil {
			t.Fatalf("Record %s failed: %v", r.SessionID, err)
		}
	}

	best, ok, err := s.Best(ctx, "beginner")
	if err != nil || !ok {
		t.Fatalf("Expected best, got ok=%v err=%v", ok, err)
	}
	if best != 3400 {
		t.Errorf("Expected best 3400, got %d", best)
	}
}

func TestRecordDuplicateSessionIgnored(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Record(ctx, Result{SessionID: "x", Limit: "beginner", Score: 10}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := s.Record(ctx, Result{SessionID: "x", Limit: "beginner", Score: 99999}); err != nil {
		t.Fatalf("Duplicate record failed: %v", err)
	}

	best, _, _ := s.Best(ctx, "beginner")
	if best != 10 {
		t.Errorf("Expected first record kept with 10, got %d", best)
	}
}

func TestRecordValidation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Record(ctx, Result{Limit: "beginner"}); err == nil {
		t.Error("Expected error for missing session id")
	}
	if err := s.Record(ctx, Result{SessionID: "x"}); err == nil {
		t.Error("Expected error for missing limit")
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"first", "second", "third"} {
		r := Result{
			SessionID:  id,
			Limit:      "intermediate",
			Score:      i * 100,
			Reason:     "time expired",
			Elapsed:    60,
			RecordedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := s.Record(ctx, r); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	got, err := s.History(ctx, "intermediate", 2)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(got))
	}
	if got[0].SessionID != "third" || got[1].SessionID != "second" {
		t.Errorf("Expected [third second], got [%s %s]", got[0].SessionID, got[1].SessionID)
	}
	if !got[0].RecordedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("Expected recorded time preserved, got %v", got[0].RecordedAt)
	}
	if got[0].Elapsed != 60 {
		t.Errorf("Expected elapsed 60, got %f", got[0].Elapsed)
	}
}

func TestClosedStore(t *testing.T) {
	s := openTestStore(t)
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	err := s.Record(context.Background(), Result{SessionID: "x", Limit: "beginner"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Expected ErrNotConfigured, got %v", err)
	}
}

func TestScoreKeeperRecordsGameOver(t *testing.T) {
	s := openTestStore(t)
	k := NewScoreKeeper(s)

	if b := k.Best("beginner"); b != 0 {
		t.Errorf("Expected empty best 0, got %d", b)
	}

	r := event.NewRouter()
	if _, err := r.Register(k); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	r.Dispatch([]event.GameEvent{
		{Type: event.EventScoreChanged, Payload: &event.ScoreChangedPayload{Score: 5}},
		{Type: event.EventGameOver, Payload: &event.GameOverPayload{
			SessionID: "s1",
			Reason:    "time expired",
			Score:     4200,
			Limit:     "beginner",
			Elapsed:   30,
		}},
	})

	if b := k.Best("beginner"); b != 4200 {
		t.Errorf("Expected cached best 4200, got %d", b)
	}
	last := k.Last()
	if last == nil || last.SessionID != "s1" {
		t.Fatalf("Expected last result s1, got %+v", last)
	}

	stored, ok, err := s.Best(context.Background(), "beginner")
	if err != nil || !ok || stored != 4200 {
		t.Errorf("Expected stored best 4200, got %d ok=%v err=%v", stored, ok, err)
	}
}
