// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/tuidle/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timeLayout is fixed width and always UTC so stored times sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// Store wraps SQLite access for stats and game history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS stats (
			id TEXT PRIMARY KEY,
			games_played INTEGER NOT NULL,
			wins INTEGER NOT NULL,
			streak INTEGER NOT NULL,
			best_streak INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			target TEXT NOT NULL,
			attempts INTEGER NOT NULL,
			won INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_games_ended_at ON games(ended_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// LoadStats returns the aggregate stats record. The boolean is false when no
// record has been saved yet.
func (s *Store) LoadStats(ctx context.Context) (model.Stats, bool, error) {
	var st model.Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT games_played, wins, streak, best_streak FROM stats WHERE id = ?`,
		model.StatsRecordID,
	).Scan(&st.GamesPlayed, &st.Wins, &st.Streak, &st.BestStreak)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Stats{}, false, nil
	}
	if err != nil {
		return model.Stats{}, false, err
	}
	return st, true, nil
}

// SaveStats overwrites the aggregate stats record.
func (s *Store) SaveStats(ctx context.Context, st model.Stats) error {
	return saveStats(ctx, s.db, st)
}

// SaveOutcome writes the aggregate and the game row in one transaction.
func (s *Store) SaveOutcome(ctx context.Context, st model.Stats, rec model.GameRecord) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if err = saveStats(ctx, tx, st); err != nil {
		return err
	}
	if err = insertGame(ctx, tx, rec); err != nil {
		return err
	}
	return tx.Commit()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func saveStats(ctx context.Context, ex execer, st model.Stats) error {
	_, err := ex.ExecContext(ctx,
		`INSERT INTO stats (id, games_played, wins, streak, best_streak)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			games_played = excluded.games_played,
			wins = excluded.wins,
			streak = excluded.streak,
			best_streak = excluded.best_streak`,
		model.StatsRecordID, st.GamesPlayed, st.Wins, st.Streak, st.BestStreak,
	)
	return err
}

func insertGame(ctx context.Context, ex execer, rec model.GameRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := ex.ExecContext(ctx,
		`INSERT INTO games (id, started_at, ended_at, target, attempts, won)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID,
		formatTime(rec.StartedAt),
		formatTime(rec.EndedAt),
		rec.Target,
		rec.Attempts,
		boolToInt(rec.Won),
	)
	return err
}

// ListGames returns finished games filtered by stats config, oldest first.
func (s *Store) ListGames(ctx context.Context, cfg model.StatsConfig) ([]model.GameRecord, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, formatTime(*cfg.Since))
	}
	query := fmt.Sprintf(`SELECT id, started_at, ended_at, target, attempts, won
		FROM games
		WHERE %s
		ORDER BY ended_at ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var games []model.GameRecord
	for rows.Next() {
		var rec model.GameRecord
		var startedAt, endedAt string
		var won int
		if err := rows.Scan(&rec.ID, &startedAt, &endedAt, &rec.Target, &rec.Attempts, &won); err != nil {
			return nil, err
		}
		if rec.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, err
		}
		if rec.EndedAt, err = time.Parse(time.RFC3339Nano, endedAt); err != nil {
			return nil, err
		}
		rec.Won = won != 0
		games = append(games, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return games, nil
}

// RecentTargets returns up to n of the most recent answers, newest first.
func (s *Store) RecentTargets(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT target FROM games ORDER BY ended_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var targets []string
	for rows.Next() {
		var target string
		if err := rows.Scan(&target); err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return targets, nil
}

// Reset deletes the aggregate record and all game history.
func (s *Store) Reset(ctx context.Context) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()
	if _, err = tx.ExecContext(ctx, `DELETE FROM stats`); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM games`); err != nil {
		return err
	}
	return tx.Commit()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
