// internal/game/session.go
//
// Session drives a single Wordle game.
// Responsibilities:
//   - Validate and apply guesses (finished, length, alphabetic, word list,
//     repeats, hard mode).
//   - Record evaluated guesses on the Board.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - The word list is injected as a Dictionary; the game package holds no globals.
//   - Replay starts a fresh board on the same answer.

package game

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Dictionary decides whether a word may be guessed.
type Dictionary interface {
	IsAllowed(word string) bool
}

// Option configures a Session.
type Option func(*Session)

// WithHardMode turns on the hard-mode replay constraint.
func WithHardMode(on bool) Option {
	return func(s *Session) { s.hard = on }
}

// WithMaxTurns sets the number of guesses allowed.
func WithMaxTurns(n int) Option {
	return func(s *Session) { s.maxTurns = n }
}

// Session holds the state of one game on one answer.
type Session struct {
	ID string

	answer   string
	dict     Dictionary
	hard     bool
	maxTurns int
	board    *Board
	state    State
}

// NewSession starts a game on answer. A nil dict accepts every word.
func NewSession(answer string, dict Dictionary, opts ...Option) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		answer:   strings.ToLower(strings.TrimSpace(answer)),
		dict:     dict,
		maxTurns: DefaultMaxTurns,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.board = NewBoard(s.maxTurns)
	s.maxTurns = s.board.MaxTurns()
	return s
}

// Replay returns a new session on the same answer with the same options.
func (s *Session) Replay() *Session {
	return NewSession(s.answer, s.dict, WithHardMode(s.hard), WithMaxTurns(s.maxTurns))
}

// ApplyGuess validates and scores a guess, mutating the session.
// Returns the evaluated guess, the new state, or a validation error. A
// rejected guess does not use up a turn.
//
// State transitions:
//   - If every letter is Exact → Won.
//   - Else if the board is out of turns → Lost.
func (s *Session) ApplyGuess(word string) (Guess, State, error) {
	if s.state.Finished() {
		return Guess{}, s.state, ErrGameFinished
	}
	word = strings.ToLower(strings.TrimSpace(word))
	if utf8.RuneCountInString(word) != utf8.RuneCountInString(s.answer) {
		return Guess{}, s.state, ErrWrongLength
	}
	if !isAlpha(word) {
		return Guess{}, s.state, ErrNotAlpha
	}
	if s.dict != nil && !s.dict.IsAllowed(word) {
		return Guess{}, s.state, ErrNotInWordList
	}
	if s.board.GuessedAlready(word) {
		return Guess{}, s.state, ErrAlreadyGuessed
	}
	if s.hard {
		ok, err := ValidHardModeGuess(s.board, word, s.answer)
		if err != nil {
			return Guess{}, s.state, err
		}
		if !ok {
			return Guess{}, s.state, ErrHardMode
		}
	}

	g, err := Evaluate(word, s.answer)
	if err != nil {
		return Guess{}, s.state, err
	}
	s.board.AddGuess(g)

	if g.Won() {
		s.state = Won
	} else if s.board.TurnsRemaining() == 0 {
		s.state = Lost
	}
	return g, s.state, nil
}

func (s *Session) State() State    { return s.state }
func (s *Session) Answer() string  { return s.answer }
func (s *Session) Hard() bool      { return s.hard }
func (s *Session) Board() *Board   { return s.board }
func (s *Session) WordLength() int { return utf8.RuneCountInString(s.answer) }

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
