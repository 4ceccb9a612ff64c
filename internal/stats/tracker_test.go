package stats

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/tuidle/internal/game"
	"github.com/verte-zerg/tuidle/internal/model"
	"github.com/verte-zerg/tuidle/internal/store"
)

type failingStore struct{}

func (failingStore) LoadStats(context.Context) (model.Stats, bool, error) {
	return model.Stats{}, false, errors.New("unavailable")
}

func (failingStore) SaveStats(context.Context, model.Stats) error {
	return errors.New("unavailable")
}

// flakyLoadStore fails LoadStats while failLoad is set.
type flakyLoadStore struct {
	*store.Memory
	failLoad bool
}

func (f *flakyLoadStore) LoadStats(ctx context.Context) (model.Stats, bool, error) {
	if f.failLoad {
		return model.Stats{}, false, errors.New("database is locked")
	}
	return f.Memory.LoadStats(ctx)
}

type twoWords struct{}

func (twoWords) Contains(word string) bool { return word == "apple" || word == "crane" }
func (twoWords) SampleRandom() string      { return "apple" }
func (twoWords) Len() int                  { return 2 }

func checkInvariants(t *testing.T, st model.Stats) {
	t.Helper()
	if st.GamesPlayed < 0 || st.Wins < 0 || st.Streak < 0 || st.BestStreak < 0 {
		t.Fatalf("negative counter in %+v", st)
	}
	if st.Wins > st.GamesPlayed || st.Streak > st.BestStreak {
		t.Fatalf("invariant violated in %+v", st)
	}
}

func TestRecordOutcomeSequence(t *testing.T) {
	tr := NewTracker(nil)
	results := []bool{true, true, false, true, true, true, false, false, true}
	for _, win := range results {
		tr.RecordOutcome(win)
		checkInvariants(t, tr.Stats())
	}
	want := model.Stats{GamesPlayed: 9, Wins: 6, Streak: 1, BestStreak: 3}
	if got := tr.Stats(); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestLossResetsStreak(t *testing.T) {
	tr := NewTracker(nil)
	tr.stats = model.Stats{GamesPlayed: 5, Wins: 4, Streak: 3, BestStreak: 3}
	tr.RecordOutcome(false)
	want := model.Stats{GamesPlayed: 6, Wins: 4, Streak: 0, BestStreak: 3}
	if got := tr.Stats(); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestTrackerPersistsThroughSQLite(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "tuidle.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	ctx := context.Background()

	tr := NewTracker(st)
	if err := tr.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	now := time.Now()
	if err := tr.Record(ctx, game.Outcome{Won: true, Target: "speed", Attempts: 1, StartedAt: now, EndedAt: now}); err != nil {
		t.Fatalf("record: %v", err)
	}

	reloaded := NewTracker(st)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	want := model.Stats{GamesPlayed: 1, Wins: 1, Streak: 1, BestStreak: 1}
	if got := reloaded.Stats(); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	games, err := st.ListGames(ctx, model.StatsConfig{})
	if err != nil || len(games) != 1 || games[0].Target != "speed" {
		t.Fatalf("expected one game row, got %+v %v", games, err)
	}
}

func TestTrackerDegradesWhenStorageFails(t *testing.T) {
	tr := NewTracker(failingStore{})
	ctx := context.Background()
	if err := tr.Load(ctx); !errors.Is(err, game.ErrStorageUnavailable) {
		t.Fatalf("expected storage error on load, got %v", err)
	}
	err := tr.Record(ctx, game.Outcome{Won: true, Target: "apple", Attempts: 2})
	if !errors.Is(err, game.ErrStorageUnavailable) {
		t.Fatalf("expected storage error on record, got %v", err)
	}
	if got := tr.Stats(); got.GamesPlayed != 1 || got.Wins != 1 {
		t.Fatalf("expected in-memory update despite failure, got %+v", got)
	}
}

func TestLoadNormalizesCorruptRecord(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()
	if err := m.SaveStats(ctx, model.Stats{GamesPlayed: 2, Wins: 5, Streak: 4, BestStreak: -1}); err != nil {
		t.Fatalf("save: %v", err)
	}
	tr := NewTracker(m)
	if err := tr.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	checkInvariants(t, tr.Stats())
}

func TestSixMissesResetStreakThroughController(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()
	if err := m.SaveStats(ctx, model.Stats{GamesPlayed: 4, Wins: 4, Streak: 4, BestStreak: 4}); err != nil {
		t.Fatalf("save: %v", err)
	}
	tr := NewTracker(m)
	if err := tr.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	ctrl, err := game.NewController(game.NewSession(game.DefaultMaxAttempts), twoWords{}, tr, zerolog.Nop())
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}

	var update game.Update
	for i := 0; i < game.DefaultMaxAttempts; i++ {
		for _, r := range "crane" {
			if _, err := ctrl.Handle(ctx, game.Letter(r)); err != nil {
				t.Fatalf("letter: %v", err)
			}
		}
		update, err = ctrl.Handle(ctx, game.Event{Kind: game.EventSubmit})
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if update.Evaluation.AttemptsRemaining != game.DefaultMaxAttempts-i-1 {
			t.Fatalf("miss %d: expected %d attempts left, got %d", i, game.DefaultMaxAttempts-i-1, update.Evaluation.AttemptsRemaining)
		}
	}
	if update.Outcome == nil || update.Outcome.Won || update.Outcome.Target != "apple" {
		t.Fatalf("expected a loss revealing apple, got %+v", update.Outcome)
	}

	want := model.Stats{GamesPlayed: 5, Wins: 4, Streak: 0, BestStreak: 4}
	if got := tr.Stats(); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	saved, ok, err := m.LoadStats(ctx)
	if err != nil || !ok || saved != want {
		t.Fatalf("expected saved %+v, got %+v (ok=%v, err=%v)", want, saved, ok, err)
	}
	games, err := m.ListGames(ctx, model.StatsConfig{})
	if err != nil || len(games) != 1 || games[0].Attempts != game.DefaultMaxAttempts || games[0].Won {
		t.Fatalf("expected one lost game row, got %+v %v", games, err)
	}
}

func TestFailedLoadKeepsSavedStats(t *testing.T) {
	ctx := context.Background()
	saved := model.Stats{GamesPlayed: 40, Wins: 30, Streak: 5, BestStreak: 9}
	fs := &flakyLoadStore{Memory: store.NewMemory(), failLoad: true}
	if err := fs.SaveStats(ctx, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	tr := NewTracker(fs)
	if err := tr.Load(ctx); !errors.Is(err, game.ErrStorageUnavailable) {
		t.Fatalf("expected storage error on load, got %v", err)
	}
	err := tr.Record(ctx, game.Outcome{Won: true, Target: "apple", Attempts: 3})
	if !errors.Is(err, game.ErrStorageUnavailable) {
		t.Fatalf("expected record to refuse saving, got %v", err)
	}
	if got := tr.Stats(); got.GamesPlayed != 1 {
		t.Fatalf("expected in-memory update, got %+v", got)
	}
	if got, _, _ := fs.Memory.LoadStats(ctx); got != saved {
		t.Fatalf("expected saved stats %+v untouched, got %+v", saved, got)
	}
	if games, _ := fs.ListGames(ctx, model.StatsConfig{}); len(games) != 0 {
		t.Fatalf("expected no history rows, got %+v", games)
	}

	fs.failLoad = false
	if err := tr.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if err := tr.Record(ctx, game.Outcome{Won: false, Target: "crane", Attempts: 6}); err != nil {
		t.Fatalf("record after reload: %v", err)
	}
	want := model.Stats{GamesPlayed: 41, Wins: 30, Streak: 0, BestStreak: 9}
	if got, _, _ := fs.Memory.LoadStats(ctx); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
