package game

import (
	"errors"
	"testing"
)

type fixedWords struct {
	target string
	known  map[string]bool
}

func newFixedWords(target string, others ...string) *fixedWords {
	known := map[string]bool{target: true}
	for _, w := range others {
		known[w] = true
	}
	return &fixedWords{target: target, known: known}
}

func (f *fixedWords) Contains(word string) bool { return f.known[word] }
func (f *fixedWords) SampleRandom() string      { return f.target }
func (f *fixedWords) Len() int                  { return len(f.known) }

func typeWord(t *testing.T, s *Session, word string) {
	t.Helper()
	for _, ch := range word {
		if !s.InsertLetter(ch) {
			t.Fatalf("failed to insert %q", ch)
		}
	}
}

func startSession(t *testing.T, words WordSource) *Session {
	t.Helper()
	s := NewSession(DefaultMaxAttempts)
	if err := s.Start(words); err != nil {
		t.Fatalf("start: %v", err)
	}
	return s
}

func TestStartRejectsEmptySource(t *testing.T) {
	s := NewSession(DefaultMaxAttempts)
	if err := s.Start(nil); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected configuration error for nil source, got %v", err)
	}
	if err := s.Start(&fixedWords{known: map[string]bool{}}); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected configuration error for empty source, got %v", err)
	}
	if err := NewSession(0).Start(newFixedWords("apple")); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected configuration error for zero attempts, got %v", err)
	}
}

func TestInsertAndDelete(t *testing.T) {
	s := startSession(t, newFixedWords("apple"))
	if s.InsertLetter('1') {
		t.Fatalf("expected digit to be ignored")
	}
	typeWord(t, s, "ApPle")
	if s.Buffer() != "apple" || s.Cursor() != 5 {
		t.Fatalf("unexpected buffer %q cursor %d", s.Buffer(), s.Cursor())
	}
	if s.InsertLetter('x') {
		t.Fatalf("expected full buffer to reject input")
	}
	for i := 0; i < 5; i++ {
		if !s.DeleteLetter() {
			t.Fatalf("delete %d failed", i)
		}
	}
	if s.DeleteLetter() {
		t.Fatalf("expected delete on empty buffer to be a no-op")
	}
	if s.Cursor() != 0 {
		t.Fatalf("expected cursor 0, got %d", s.Cursor())
	}
}

func TestSubmitIncompleteLeavesStateUnchanged(t *testing.T) {
	s := startSession(t, newFixedWords("apple"))
	typeWord(t, s, "appl")
	_, err := s.SubmitGuess(newFixedWords("apple"))
	if !errors.Is(err, ErrIncompleteGuess) {
		t.Fatalf("expected incomplete guess, got %v", err)
	}
	if s.AttemptsRemaining() != DefaultMaxAttempts || s.Buffer() != "appl" || len(s.Rows()) != 0 {
		t.Fatalf("state changed after rejected guess")
	}
}

func TestSubmitUnknownWordKeepsBuffer(t *testing.T) {
	words := newFixedWords("apple")
	s := startSession(t, words)
	typeWord(t, s, "zzzzz")
	if _, err := s.SubmitGuess(words); !errors.Is(err, ErrUnknownWord) {
		t.Fatalf("expected unknown word, got %v", err)
	}
	if s.Buffer() != "zzzzz" || s.AttemptsRemaining() != DefaultMaxAttempts {
		t.Fatalf("state changed after unknown word")
	}
}

func TestSubmitMissThenWin(t *testing.T) {
	words := newFixedWords("apple", "anger")
	s := startSession(t, words)
	typeWord(t, s, "anger")
	eval, err := s.SubmitGuess(words)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if eval.Status != Playing || eval.AttemptsRemaining != 5 {
		t.Fatalf("unexpected evaluation %+v", eval)
	}
	if s.Buffer() != "" {
		t.Fatalf("expected buffer cleared, got %q", s.Buffer())
	}
	kb := s.Keyboard()
	if kb.Get('a') != Correct || kb.Get('e') != Present || kb.Get('n') != Absent {
		t.Fatalf("unexpected keyboard state")
	}

	typeWord(t, s, "apple")
	eval, err = s.SubmitGuess(words)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if eval.Status != Won || s.AttemptsRemaining() != 5 {
		t.Fatalf("expected win with 5 attempts left, got %+v", eval)
	}
	if s.EndedAt().IsZero() {
		t.Fatalf("expected end time on win")
	}
	if s.InsertLetter('a') || s.DeleteLetter() {
		t.Fatalf("expected finished session to ignore input")
	}
	if _, err := s.SubmitGuess(words); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected game over, got %v", err)
	}
}

func TestSixMissesLose(t *testing.T) {
	words := newFixedWords("apple", "crane")
	s := startSession(t, words)
	for i := 0; i < DefaultMaxAttempts; i++ {
		typeWord(t, s, "crane")
		eval, err := s.SubmitGuess(words)
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if eval.AttemptsRemaining != DefaultMaxAttempts-i-1 {
			t.Fatalf("miss %d: expected %d attempts left, got %d", i, DefaultMaxAttempts-i-1, eval.AttemptsRemaining)
		}
		if i < DefaultMaxAttempts-1 && eval.Status != Playing {
			t.Fatalf("round ended early at %d", i)
		}
	}
	if s.Status() != Lost || s.AttemptsRemaining() != 0 {
		t.Fatalf("expected loss, got %s with %d left", s.Status(), s.AttemptsRemaining())
	}
	if len(s.Rows()) != DefaultMaxAttempts {
		t.Fatalf("expected %d rows, got %d", DefaultMaxAttempts, len(s.Rows()))
	}
}

func TestStartResetsRound(t *testing.T) {
	words := newFixedWords("apple", "crane")
	s := startSession(t, words)
	typeWord(t, s, "crane")
	if _, err := s.SubmitGuess(words); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := s.Start(words); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if len(s.Rows()) != 0 || s.AttemptsRemaining() != DefaultMaxAttempts || s.Keyboard().Get('c') != Unknown {
		t.Fatalf("expected fresh round after restart")
	}
}
