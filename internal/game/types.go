// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Classification: per-letter result of a guess (exact/present/absent/unknown).
//   - Guess: one evaluated attempt.
//   - State: coarse lifecycle of a single game session.

package game

// Classification represents the evaluation result for a single letter.
// Values are ordered best to worst so that merging knowledge about a letter
// is a minimum over this ordering:
//
//	Exact < Present < Absent < Unknown
type Classification uint8

const (
	Exact   Classification = iota // letter is in the answer at this position
	Present                       // letter is in the answer, but elsewhere
	Absent                        // letter is not in the answer (or its supply is used up)
	Unknown                       // letter has not been guessed yet
)

// String returns a short lowercase name.
func (c Classification) String() string {
	switch c {
	case Exact:
		return "exact"
	case Present:
		return "present"
	case Absent:
		return "absent"
	default:
		return "unknown"
	}
}

// Better reports whether c carries strictly more information than o.
func (c Classification) Better(o Classification) bool { return c < o }

// Merge returns the better of two classifications for the same letter.
func Merge(a, b Classification) Classification {
	if b.Better(a) {
		return b
	}
	return a
}

// Guess holds one evaluated attempt. It is immutable once returned by Evaluate.
type Guess struct {
	word    string
	classes []Classification
}

// Word returns the lowercased guessed word.
func (g Guess) Word() string { return g.word }

// Classifications returns a copy of the per-position results.
func (g Guess) Classifications() []Classification {
	out := make([]Classification, len(g.classes))
	copy(out, g.classes)
	return out
}

// At returns the letter and classification at position i.
func (g Guess) At(i int) (rune, Classification) {
	return []rune(g.word)[i], g.classes[i]
}

// Len is the number of positions in the guess.
func (g Guess) Len() int { return len(g.classes) }

// Won reports whether every position is Exact.
func (g Guess) Won() bool {
	if len(g.classes) == 0 {
		return false
	}
	for _, c := range g.classes {
		if c != Exact {
			return false
		}
	}
	return true
}

// State is the lifecycle of a session: playing → won | lost.
type State uint8

const (
	InProgress State = iota
	Won
	Lost
)

// String matches the state names used in logs.
func (s State) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Finished reports whether s is terminal.
func (s State) Finished() bool { return s == Won || s == Lost }
