// internal/game/engine.go
//
// Guess evaluation for the Wordle game engine.
// Responsibilities:
//   - Classify each letter of a guess against the answer (two-pass algorithm).
//   - Guard against caller defects (length mismatch) instead of guessing.
//
// Notes:
//   - Evaluate is pure: no package state is read or written.
//   - Letters are compared as runes, so non-ASCII input cannot misalign positions.

package game

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Evaluate scores guess against answer.
//
// Pass 1:
//   - Mark exact matches and take those answer positions out of play.
//
// Pass 2:
//   - For each non-exact guess letter, consume the first answer position still
//     in play holding the same letter and mark Present; otherwise mark Absent.
//
// Exact matches therefore claim a letter's supply before any Present does, and
// a letter is never reported Exact/Present more times than the answer holds it.
//
// Returns ErrInvalidInput if the two words differ in length.
func Evaluate(guess, answer string) (Guess, error) {
	guess = strings.ToLower(guess)
	answer = strings.ToLower(answer)
	if utf8.RuneCountInString(guess) != utf8.RuneCountInString(answer) {
		return Guess{}, fmt.Errorf("%w: %q vs %d letters", ErrInvalidInput, guess, utf8.RuneCountInString(answer))
	}

	g := []rune(guess)
	a := []rune(answer)
	res := make([]Classification, len(g))
	inPlay := make([]bool, len(a))

	// First pass: exact matches. Exact is the zero value, so every other
	// position is set explicitly.
	for i := range g {
		if g[i] == a[i] {
			res[i] = Exact
		} else {
			res[i] = Absent
			inPlay[i] = true
		}
	}

	// Second pass: upgrade misplaced letters while supply remains.
	for i := range g {
		if res[i] == Exact {
			continue
		}
		for j := range a {
			if inPlay[j] && a[j] == g[i] {
				res[i] = Present
				inPlay[j] = false
				break
			}
		}
	}

	return Guess{word: guess, classes: res}, nil
}
