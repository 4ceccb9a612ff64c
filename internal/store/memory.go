package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/verte-zerg/tuidle/internal/model"
)

// Memory keeps stats and history in process memory. It is used when the
// database cannot be opened; everything is lost on exit.
type Memory struct {
	mu    sync.RWMutex
	stats *model.Stats
	games []model.GameRecord
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// LoadStats returns the saved aggregate, if any.
func (m *Memory) LoadStats(_ context.Context) (model.Stats, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.stats == nil {
		return model.Stats{}, false, nil
	}
	return *m.stats, true, nil
}

// SaveStats overwrites the aggregate.
func (m *Memory) SaveStats(_ context.Context, st model.Stats) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats = &st
	return nil
}

// SaveOutcome stores the aggregate and appends the game.
func (m *Memory) SaveOutcome(_ context.Context, st model.Stats, rec model.GameRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	m.stats = &st
	m.games = append(m.games, rec)
	return nil
}

// ListGames returns stored games filtered by cfg, oldest first.
func (m *Memory) ListGames(_ context.Context, cfg model.StatsConfig) ([]model.GameRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	games := lo.Filter(m.games, func(rec model.GameRecord, _ int) bool {
		return cfg.Since == nil || !rec.EndedAt.Before(*cfg.Since)
	})
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].EndedAt.Before(games[j].EndedAt)
	})
	return games, nil
}

// RecentTargets returns up to n of the most recent answers, newest first.
func (m *Memory) RecentTargets(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	games, err := m.ListGames(ctx, model.StatsConfig{})
	if err != nil {
		return nil, err
	}
	if len(games) > n {
		games = games[len(games)-n:]
	}
	targets := lo.Map(games, func(rec model.GameRecord, _ int) string { return rec.Target })
	for i, j := 0, len(targets)-1; i < j; i, j = i+1, j-1 {
		targets[i], targets[j] = targets[j], targets[i]
	}
	return targets, nil
}

// Reset clears everything.
func (m *Memory) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats = nil
	m.games = nil
	return nil
}
