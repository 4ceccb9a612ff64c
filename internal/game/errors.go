package game

import "errors"

var (
	// ErrIncompleteGuess is returned when a guess is submitted with fewer than WordLength letters.
	ErrIncompleteGuess = errors.New("not enough letters")
	// ErrUnknownWord is returned when the submitted word is not in the word source.
	ErrUnknownWord = errors.New("not in word list")
	// ErrConfiguration is returned when a session cannot start.
	ErrConfiguration = errors.New("invalid game configuration")
	// ErrStorageUnavailable marks persistence failures. They never affect the session.
	ErrStorageUnavailable = errors.New("stats storage unavailable")
	// ErrGameOver is returned when a guess is submitted after the session ended.
	ErrGameOver = errors.New("game is over")
)
