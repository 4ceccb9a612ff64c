package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/verte-zerg/tuidle/internal/game"
	"github.com/verte-zerg/tuidle/internal/model"
)

// Store persists the aggregate stats record.
type Store interface {
	LoadStats(ctx context.Context) (model.Stats, bool, error)
	SaveStats(ctx context.Context, st model.Stats) error
}

// OutcomeStore also keeps per-game history, written together with the aggregate.
type OutcomeStore interface {
	Store
	SaveOutcome(ctx context.Context, st model.Stats, rec model.GameRecord) error
}

// Tracker owns the aggregate stats for the process.
type Tracker struct {
	store Store
	stats model.Stats
	// unloaded blocks saving until the saved record has been read.
	unloaded bool
}

var errNotLoaded = errors.New("saved stats were not loaded")

// NewTracker returns a tracker with zero stats. A nil store keeps stats in memory only.
func NewTracker(store Store) *Tracker {
	return &Tracker{store: store}
}

// Load reads the saved aggregate. On failure the tracker keeps zero stats,
// stops saving until a later Load succeeds, and the returned error wraps
// game.ErrStorageUnavailable.
func (t *Tracker) Load(ctx context.Context) error {
	if t.store == nil {
		return nil
	}
	st, ok, err := t.store.LoadStats(ctx)
	if err != nil {
		t.stats = model.Stats{}
		t.unloaded = true
		return fmt.Errorf("failed to load stats: %w: %w", game.ErrStorageUnavailable, err)
	}
	t.unloaded = false
	if !ok {
		t.stats = model.Stats{}
		return nil
	}
	t.stats = normalize(st)
	return nil
}

// Stats returns the current aggregate.
func (t *Tracker) Stats() model.Stats {
	return t.stats
}

// RecordOutcome applies one finished game to the aggregate.
func (t *Tracker) RecordOutcome(win bool) {
	t.stats.GamesPlayed++
	if !win {
		t.stats.Streak = 0
		return
	}
	t.stats.Wins++
	t.stats.Streak++
	if t.stats.Streak > t.stats.BestStreak {
		t.stats.BestStreak = t.stats.Streak
	}
}

// Persist writes the aggregate to the store.
func (t *Tracker) Persist(ctx context.Context) error {
	if t.store == nil {
		return nil
	}
	if t.unloaded {
		return fmt.Errorf("failed to save stats: %w: %w", game.ErrStorageUnavailable, errNotLoaded)
	}
	if err := t.store.SaveStats(ctx, t.stats); err != nil {
		return fmt.Errorf("failed to save stats: %w: %w", game.ErrStorageUnavailable, err)
	}
	return nil
}

// Record applies outcome and persists it. The in-memory aggregate is updated
// even when persistence fails.
func (t *Tracker) Record(ctx context.Context, outcome game.Outcome) error {
	t.RecordOutcome(outcome.Won)
	hist, ok := t.store.(OutcomeStore)
	if !ok || t.unloaded {
		return t.Persist(ctx)
	}
	rec := model.GameRecord{
		StartedAt: outcome.StartedAt,
		EndedAt:   outcome.EndedAt,
		Target:    outcome.Target,
		Attempts:  outcome.Attempts,
		Won:       outcome.Won,
	}
	if err := hist.SaveOutcome(ctx, t.stats, rec); err != nil {
		return fmt.Errorf("failed to save outcome: %w: %w", game.ErrStorageUnavailable, err)
	}
	return nil
}

func normalize(st model.Stats) model.Stats {
	st.GamesPlayed = max(st.GamesPlayed, 0)
	st.Wins = min(max(st.Wins, 0), st.GamesPlayed)
	st.Streak = min(max(st.Streak, 0), st.Wins)
	st.BestStreak = min(max(st.BestStreak, st.Streak), st.Wins)
	return st
}
