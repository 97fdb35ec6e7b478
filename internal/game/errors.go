package game

import "errors"

// Caller defects raised by the evaluator and board.
var (
	ErrInvalidInput = errors.New("game: guess and answer lengths differ")
	ErrEmptyBoard   = errors.New("game: no guesses recorded")
)

// Turn validation failures surfaced to the player by Session.ApplyGuess.
var (
	ErrGameFinished   = errors.New("game finished")
	ErrWrongLength    = errors.New("wrong number of letters")
	ErrNotAlpha       = errors.New("must only contain letters")
	ErrNotInWordList  = errors.New("not in word list")
	ErrAlreadyGuessed = errors.New("already guessed")
	ErrHardMode       = errors.New("hard mode: revealed letters must be reused")
)
