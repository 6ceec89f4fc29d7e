package persistence

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/lixenwraith/facefall/event"
)

// recordTimeout bounds a single write from the event path
const recordTimeout = 2 * time.Second

// ScoreKeeper records finished sessions and caches the best score per time limit
type ScoreKeeper struct {
	store *Store

	mu   sync.Mutex
	best map[string]int
	last *Result
}

// NewScoreKeeper creates a keeper over an open store
func NewScoreKeeper(store *Store) *ScoreKeeper {
	return &ScoreKeeper{
		store: store,
		best:  make(map[string]int),
	}
}

// EventTypes implements event.Handler
func (k *ScoreKeeper) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameOver}
}

// HandleEvent implements event.Handler
func (k *ScoreKeeper) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.GameOverPayload)
	if !ok {
		return
	}

	r := Result{
		SessionID: p.SessionID,
		Limit:     p.Limit,
		Score:     p.Score,
		Reason:    p.Reason,
		Elapsed:   p.Elapsed,
	}

	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	if err := k.store.Record(ctx, r); err != nil {
		log.Printf("[scores] record session %s: %v", p.SessionID, err)
	}

	k.mu.Lock()
	k.last = &r
	if b, ok := k.best[r.Limit]; ok && r.Score > b {
		k.best[r.Limit] = r.Score
	}
	k.mu.Unlock()
}

// Best returns the best score for a time limit, loading it from the store once
func (k *ScoreKeeper) Best(limit string) int {
	k.mu.Lock()
	defer k.mu.Unlock()

	if b, ok := k.best[limit]; ok {
		return b
	}

	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	b, _, err := k.store.Best(ctx, limit)
	if err != nil {
		log.Printf("[scores] load best for %s: %v", limit, err)
		return 0
	}
	k.best[limit] = b
	return b
}

// Last returns the most recently finished session, nil before the first
func (k *ScoreKeeper) Last() *Result {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.last == nil {
		return nil
	}
	r := *k.last
	return &r
}
