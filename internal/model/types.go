// Package model defines shared data structures.
package model

import "time"

// StatsRecordID is the fixed key of the aggregate stats record.
const StatsRecordID = "wordleStats"

// Config defines game settings.
type Config struct {
	MaxAttempts  int
	WordListPath string
	AvoidRecent  int
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Since       *time.Time
	Last        int
	TrendWindow int
}

// Stats is the aggregate across all finished games.
type Stats struct {
	GamesPlayed int
	Wins        int
	Streak      int
	BestStreak  int
}

// GameRecord captures one finished game.
type GameRecord struct {
	ID        string
	StartedAt time.Time
	EndedAt   time.Time
	Target    string
	Attempts  int
	Won       bool
}
