// Package stats tracks aggregate game statistics and renders reports.
package stats

import (
	"math"
	"strings"

	"github.com/samber/lo"

	"github.com/verte-zerg/tuidle/internal/model"
)

const sparkChars = " .:-=+*#%@"

// WinRate returns the percentage of played games that were won.
func WinRate(st model.Stats) float64 {
	if st.GamesPlayed <= 0 {
		return 0
	}
	return float64(st.Wins) / float64(st.GamesPlayed) * 100
}

// Distribution counts wins by number of guesses. Index i holds wins in i+1
// guesses. The slice has at least maxAttempts entries.
func Distribution(games []model.GameRecord, maxAttempts int) []int {
	size := maxAttempts
	for _, g := range games {
		if g.Won && g.Attempts > size {
			size = g.Attempts
		}
	}
	if size <= 0 {
		return nil
	}
	dist := make([]int, size)
	for _, g := range games {
		if g.Won && g.Attempts > 0 {
			dist[g.Attempts-1]++
		}
	}
	return dist
}

// AverageGuesses returns the mean number of guesses over won games.
func AverageGuesses(games []model.GameRecord) float64 {
	wins := lo.Filter(games, func(g model.GameRecord, _ int) bool { return g.Won })
	if len(wins) == 0 {
		return 0
	}
	total := lo.SumBy(wins, func(g model.GameRecord) int { return g.Attempts })
	return float64(total) / float64(len(wins))
}

// WinRateTrend returns the rolling win percentage after each game.
func WinRateTrend(games []model.GameRecord, window int) []float64 {
	values := lo.Map(games, func(g model.GameRecord, _ int) float64 {
		if g.Won {
			return 100
		}
		return 0
	})
	return MovingAverage(values, window)
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		den := float64(i + 1)
		if i >= window {
			sum -= values[i-window]
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := lo.Min(values)
	maxVal := lo.Max(values)
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = min(max(idx, 0), len(sparkChars)-1)
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
