package game

import (
	"fmt"
	"strings"
	"time"
)

const (
	// WordLength is the number of letters in every target and guess.
	WordLength = 5
	// DefaultMaxAttempts is the number of guesses a session allows unless configured otherwise.
	DefaultMaxAttempts = 6
)

// Status is the lifecycle state of a session.
type Status uint8

const (
	// Playing accepts input.
	Playing Status = iota
	// Won is terminal: the target was guessed.
	Won
	// Lost is terminal: attempts ran out.
	Lost
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Terminal reports whether the status accepts no further input.
func (s Status) Terminal() bool {
	return s == Won || s == Lost
}

// Row is an evaluated guess.
type Row struct {
	Word     string
	Verdicts []Verdict
}

// Evaluation is the result of an accepted guess.
type Evaluation struct {
	Row
	Status            Status
	AttemptsRemaining int
}

// Session holds the state of one round.
type Session struct {
	maxAttempts       int
	target            string
	attemptsRemaining int
	buffer            []byte
	rows              []Row
	keyboard          Keyboard
	status            Status
	startedAt         time.Time
	endedAt           time.Time
	now               func() time.Time
}

// NewSession returns a session allowing maxAttempts guesses. Call Start before use.
func NewSession(maxAttempts int) *Session {
	return &Session{maxAttempts: maxAttempts, now: time.Now}
}

// Start samples a new target from words and resets all round state.
func (s *Session) Start(words WordSource) error {
	if s.maxAttempts < 1 {
		return fmt.Errorf("max attempts must be positive, got %d: %w", s.maxAttempts, ErrConfiguration)
	}
	if words == nil || words.Len() == 0 {
		return fmt.Errorf("word source is empty: %w", ErrConfiguration)
	}
	target := strings.ToLower(words.SampleRandom())
	if len(target) != WordLength || !isLower(target) {
		return fmt.Errorf("word source returned invalid target %q: %w", target, ErrConfiguration)
	}
	s.target = target
	s.attemptsRemaining = s.maxAttempts
	s.buffer = s.buffer[:0]
	s.rows = nil
	s.keyboard.Reset()
	s.status = Playing
	s.startedAt = s.now()
	s.endedAt = time.Time{}
	return nil
}

// InsertLetter appends ch to the buffer. Uppercase letters are folded to
// lowercase. It is a no-op for non-letters, a full buffer or a finished session.
func (s *Session) InsertLetter(ch rune) bool {
	if !s.accepting() || len(s.buffer) >= WordLength {
		return false
	}
	if ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}
	if ch < 'a' || ch > 'z' {
		return false
	}
	s.buffer = append(s.buffer, byte(ch))
	return true
}

// DeleteLetter removes the last buffered letter.
func (s *Session) DeleteLetter() bool {
	if !s.accepting() || len(s.buffer) == 0 {
		return false
	}
	s.buffer = s.buffer[:len(s.buffer)-1]
	return true
}

// SubmitGuess evaluates the buffer against the target. Rejected guesses leave
// the session untouched.
func (s *Session) SubmitGuess(words WordSource) (Evaluation, error) {
	if s.target == "" {
		return Evaluation{}, fmt.Errorf("session not started: %w", ErrConfiguration)
	}
	if s.status.Terminal() {
		return Evaluation{}, ErrGameOver
	}
	if len(s.buffer) != WordLength {
		return Evaluation{}, ErrIncompleteGuess
	}
	guess := string(s.buffer)
	if words == nil || !words.Contains(guess) {
		return Evaluation{}, ErrUnknownWord
	}

	verdicts := Evaluate(guess, s.target)
	for i := 0; i < len(guess); i++ {
		s.keyboard.Upgrade(rune(guess[i]), verdicts[i])
	}
	row := Row{Word: guess, Verdicts: verdicts}
	s.rows = append(s.rows, row)

	if guess == s.target {
		s.status = Won
		s.endedAt = s.now()
	} else {
		s.attemptsRemaining--
		s.buffer = s.buffer[:0]
		if s.attemptsRemaining == 0 {
			s.status = Lost
			s.endedAt = s.now()
		}
	}
	return Evaluation{Row: row, Status: s.status, AttemptsRemaining: s.attemptsRemaining}, nil
}

func (s *Session) accepting() bool {
	return s.target != "" && !s.status.Terminal()
}

// Target returns the hidden word.
func (s *Session) Target() string { return s.target }

// Status returns the lifecycle state.
func (s *Session) Status() Status { return s.status }

// AttemptsRemaining returns how many guesses are left.
func (s *Session) AttemptsRemaining() int { return s.attemptsRemaining }

// MaxAttempts returns the configured number of guesses.
func (s *Session) MaxAttempts() int { return s.maxAttempts }

// Buffer returns the letters typed for the current guess.
func (s *Session) Buffer() string { return string(s.buffer) }

// Cursor returns the next insert position in the buffer.
func (s *Session) Cursor() int { return len(s.buffer) }

// Rows returns a copy of the evaluated guesses in submit order.
func (s *Session) Rows() []Row {
	out := make([]Row, len(s.rows))
	copy(out, s.rows)
	return out
}

// Keyboard returns a copy of the per-letter verdicts.
func (s *Session) Keyboard() Keyboard { return s.keyboard }

// StartedAt returns when the current round started.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// EndedAt returns when the round reached a terminal state, or zero.
func (s *Session) EndedAt() time.Time { return s.endedAt }
