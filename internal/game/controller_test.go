package game

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

type recordingRecorder struct {
	outcomes []Outcome
	err      error
}

func (r *recordingRecorder) Record(_ context.Context, outcome Outcome) error {
	r.outcomes = append(r.outcomes, outcome)
	return r.err
}

func feed(t *testing.T, c *Controller, word string) {
	t.Helper()
	for _, ch := range word {
		if _, err := c.Handle(context.Background(), Letter(ch)); err != nil {
			t.Fatalf("letter %q: %v", ch, err)
		}
	}
}

func TestControllerRecordsWinBeforeReturning(t *testing.T) {
	rec := &recordingRecorder{}
	c, err := NewController(NewSession(DefaultMaxAttempts), newFixedWords("speed"), rec, zerolog.Nop())
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	feed(t, c, "speed")
	update, err := c.Handle(context.Background(), Event{Kind: EventSubmit})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if update.Outcome == nil || !update.Outcome.Won || update.Outcome.Attempts != 1 {
		t.Fatalf("unexpected outcome %+v", update.Outcome)
	}
	for _, v := range update.Evaluation.Verdicts {
		if v != Correct {
			t.Fatalf("expected all correct, got %v", update.Evaluation.Verdicts)
		}
	}
	if len(rec.outcomes) != 1 || rec.outcomes[0].Target != "speed" {
		t.Fatalf("expected one recorded outcome, got %+v", rec.outcomes)
	}
}

func TestControllerStorageFailureIsNonFatal(t *testing.T) {
	rec := &recordingRecorder{err: errors.New("disk full")}
	words := newFixedWords("apple", "crane")
	c, err := NewController(NewSession(1), words, rec, zerolog.Nop())
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	feed(t, c, "crane")
	update, err := c.Handle(context.Background(), Event{Kind: EventSubmit})
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if update.Outcome == nil || update.Outcome.Won || update.Outcome.Target != "apple" {
		t.Fatalf("expected loss outcome despite storage failure, got %+v", update.Outcome)
	}
	if c.Session().Status() != Lost {
		t.Fatalf("expected lost session, got %s", c.Session().Status())
	}
}

func TestControllerRejectedGuessIsNotRecorded(t *testing.T) {
	rec := &recordingRecorder{}
	c, err := NewController(NewSession(DefaultMaxAttempts), newFixedWords("apple"), rec, zerolog.Nop())
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	feed(t, c, "appl")
	if _, err := c.Handle(context.Background(), Event{Kind: EventSubmit}); !errors.Is(err, ErrIncompleteGuess) {
		t.Fatalf("expected incomplete guess, got %v", err)
	}
	if len(rec.outcomes) != 0 {
		t.Fatalf("expected no recorded outcomes")
	}
}

func TestControllerNewGame(t *testing.T) {
	c, err := NewController(NewSession(DefaultMaxAttempts), newFixedWords("apple"), nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	feed(t, c, "app")
	update, err := c.Handle(context.Background(), Event{Kind: EventNewGame})
	if err != nil || !update.NewGame {
		t.Fatalf("expected new game, got %+v %v", update, err)
	}
	if c.Session().Buffer() != "" {
		t.Fatalf("expected empty buffer after new game")
	}
}
