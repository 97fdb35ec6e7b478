// internal/game/board.go
//
// Board aggregates the guesses of one game and the best known
// classification of every letter of the alphabet.

package game

import "strings"

// DefaultMaxTurns is the number of guesses a player gets.
const DefaultMaxTurns = 6

// Alphabet is the set of letters tracked by a Board, in display order.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// LetterStatus pairs a letter with its best known classification.
type LetterStatus struct {
	Letter rune
	Status Classification
}

// Board holds the running state of a single game.
// It is not safe for concurrent use; the play loop owns it.
type Board struct {
	maxTurns int
	guesses  []Guess
	letters  map[rune]Classification
}

// NewBoard returns an empty board allowing maxTurns guesses.
// Non-positive values fall back to DefaultMaxTurns.
func NewBoard(maxTurns int) *Board {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	letters := make(map[rune]Classification, len(Alphabet))
	for _, r := range Alphabet {
		letters[r] = Unknown
	}
	return &Board{maxTurns: maxTurns, letters: letters}
}

// AddGuess records g and folds its classifications into the letter status.
// A letter's status only ever improves.
//
// Callers validate guesses beforehand; adding to a full board is a defect and panics.
func (b *Board) AddGuess(g Guess) {
	if len(b.guesses) >= b.maxTurns {
		panic("game: board is full")
	}
	b.guesses = append(b.guesses, g)
	for i, r := range []rune(g.word) {
		cur, ok := b.letters[r]
		if !ok {
			cur = Unknown
		}
		b.letters[r] = Merge(cur, g.classes[i])
	}
}

// GuessedAlready reports whether word was already recorded, ignoring case.
func (b *Board) GuessedAlready(word string) bool {
	word = strings.ToLower(strings.TrimSpace(word))
	for _, g := range b.guesses {
		if g.word == word {
			return true
		}
	}
	return false
}

// MostRecentGuess returns the last recorded guess or ErrEmptyBoard.
func (b *Board) MostRecentGuess() (Guess, error) {
	if len(b.guesses) == 0 {
		return Guess{}, ErrEmptyBoard
	}
	return b.guesses[len(b.guesses)-1], nil
}

// Guesses returns the recorded guesses in chronological order.
func (b *Board) Guesses() []Guess {
	out := make([]Guess, len(b.guesses))
	copy(out, b.guesses)
	return out
}

// LetterStatus returns the best known classification of r.
func (b *Board) LetterStatus(r rune) Classification {
	if c, ok := b.letters[r]; ok {
		return c
	}
	return Unknown
}

// Letters returns the status of every alphabet letter, a to z.
func (b *Board) Letters() []LetterStatus {
	out := make([]LetterStatus, 0, len(Alphabet))
	for _, r := range Alphabet {
		out = append(out, LetterStatus{Letter: r, Status: b.letters[r]})
	}
	return out
}

func (b *Board) TurnsUsed() int      { return len(b.guesses) }
func (b *Board) TurnsRemaining() int { return b.maxTurns - len(b.guesses) }
func (b *Board) MaxTurns() int       { return b.maxTurns }
