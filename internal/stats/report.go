package stats

import (
	"context"

	"github.com/verte-zerg/tuidle/internal/game"
	"github.com/verte-zerg/tuidle/internal/model"
)

const defaultTrendWindow = 10

// Source provides the data a report is built from.
type Source interface {
	LoadStats(ctx context.Context) (model.Stats, bool, error)
	ListGames(ctx context.Context, cfg model.StatsConfig) ([]model.GameRecord, error)
}

// Report contains precomputed data for stats rendering.
type Report struct {
	Stats          model.Stats
	Games          []model.GameRecord
	Distribution   []int
	AverageGuesses float64
	WinRateTrend   []float64
}

// BuildReport loads and prepares data for stats rendering. Aggregate stats
// always cover every game; the filters in cfg apply to history only.
func BuildReport(ctx context.Context, src Source, cfg model.StatsConfig) (Report, error) {
	st, _, err := src.LoadStats(ctx)
	if err != nil {
		return Report{}, err
	}
	games, err := src.ListGames(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(games) > cfg.Last {
		games = games[len(games)-cfg.Last:]
	}
	window := cfg.TrendWindow
	if window <= 0 {
		window = defaultTrendWindow
	}
	return Report{
		Stats:          normalize(st),
		Games:          games,
		Distribution:   Distribution(games, game.DefaultMaxAttempts),
		AverageGuesses: AverageGuesses(games),
		WinRateTrend:   WinRateTrend(games, window),
	}, nil
}
