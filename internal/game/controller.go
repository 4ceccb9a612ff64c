package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// EventKind identifies an input event.
type EventKind uint8

const (
	// EventLetter types Event.Letter into the buffer.
	EventLetter EventKind = iota + 1
	// EventDelete removes the last buffered letter.
	EventDelete
	// EventSubmit submits the buffer as a guess.
	EventSubmit
	// EventNewGame discards the current round and starts another.
	EventNewGame
)

// Event is one unit of player input.
type Event struct {
	Kind   EventKind
	Letter rune
}

// Letter builds a letter event.
func Letter(ch rune) Event { return Event{Kind: EventLetter, Letter: ch} }

// Outcome describes a finished round.
type Outcome struct {
	Won       bool
	Target    string
	Attempts  int
	StartedAt time.Time
	EndedAt   time.Time
}

// Recorder receives every finished round exactly once.
type Recorder interface {
	Record(ctx context.Context, outcome Outcome) error
}

// Update reports what an event changed.
type Update struct {
	Changed    bool
	Evaluation *Evaluation
	Outcome    *Outcome
	NewGame    bool
}

// Controller feeds events into a session and records finished rounds.
type Controller struct {
	session  *Session
	words    WordSource
	recorder Recorder
	logger   zerolog.Logger
}

// NewController starts the first round. It fails when the session cannot start.
func NewController(session *Session, words WordSource, recorder Recorder, logger zerolog.Logger) (*Controller, error) {
	if session == nil {
		return nil, fmt.Errorf("session is nil: %w", ErrConfiguration)
	}
	c := &Controller{session: session, words: words, recorder: recorder, logger: logger}
	if err := session.Start(words); err != nil {
		return nil, err
	}
	c.logger.Debug().Int("max_attempts", session.MaxAttempts()).Msg("round started")
	return c, nil
}

// Session exposes the session for rendering.
func (c *Controller) Session() *Session { return c.session }

// Handle applies ev. Rejected guesses return ErrIncompleteGuess or
// ErrUnknownWord. When a guess ends the round the outcome has already been
// recorded by the time Handle returns; a recording failure is returned
// wrapped in ErrStorageUnavailable together with a complete Update.
func (c *Controller) Handle(ctx context.Context, ev Event) (Update, error) {
	switch ev.Kind {
	case EventLetter:
		return Update{Changed: c.session.InsertLetter(ev.Letter)}, nil
	case EventDelete:
		return Update{Changed: c.session.DeleteLetter()}, nil
	case EventSubmit:
		return c.submit(ctx)
	case EventNewGame:
		if err := c.session.Start(c.words); err != nil {
			return Update{}, err
		}
		c.logger.Debug().Msg("round restarted")
		return Update{Changed: true, NewGame: true}, nil
	default:
		return Update{}, fmt.Errorf("unknown event kind %d", ev.Kind)
	}
}

func (c *Controller) submit(ctx context.Context) (Update, error) {
	eval, err := c.session.SubmitGuess(c.words)
	if err != nil {
		return Update{}, err
	}
	update := Update{Changed: true, Evaluation: &eval}
	if !eval.Status.Terminal() {
		return update, nil
	}

	outcome := Outcome{
		Won:       eval.Status == Won,
		Target:    c.session.Target(),
		Attempts:  len(c.session.rows),
		StartedAt: c.session.StartedAt(),
		EndedAt:   c.session.EndedAt(),
	}
	update.Outcome = &outcome
	c.logger.Info().
		Bool("won", outcome.Won).
		Int("attempts", outcome.Attempts).
		Msg("round finished")

	if c.recorder == nil {
		return update, nil
	}
	if err := c.recorder.Record(ctx, outcome); err != nil {
		c.logger.Warn().Err(err).Msg("failed to record outcome")
		if !errors.Is(err, ErrStorageUnavailable) {
			err = fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}
		return update, err
	}
	return update, nil
}
