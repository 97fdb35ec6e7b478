package game

// ValidHardModeGuess reports whether candidate may be played in hard mode.
//
// The candidate is classified against the answer for internal checking only.
// Only the immediately preceding guess is consulted:
//   - every position it revealed as Exact must be Exact again in the candidate;
//   - every letter it revealed as Present must be Exact or Present in the
//     candidate at least as many times as it was Present before.
//
// A winning candidate is always legal, and so is any candidate on an empty board.
func ValidHardModeGuess(b *Board, candidate, answer string) (bool, error) {
	cand, err := Evaluate(candidate, answer)
	if err != nil {
		return false, err
	}
	if cand.Won() {
		return true, nil
	}
	prev, err := b.MostRecentGuess()
	if err != nil {
		return true, nil
	}

	prevLetters := []rune(prev.word)
	candLetters := []rune(cand.word)
	if len(prevLetters) != len(candLetters) {
		return false, ErrInvalidInput
	}

	required := make(map[rune]int)
	for i, c := range prev.classes {
		switch c {
		case Exact:
			if cand.classes[i] != Exact {
				return false, nil
			}
		case Present:
			required[prevLetters[i]]++
		}
	}

	for letter, need := range required {
		have := 0
		for i, r := range candLetters {
			if r == letter && (cand.classes[i] == Exact || cand.classes[i] == Present) {
				have++
			}
		}
		if have < need {
			return false, nil
		}
	}
	return true, nil
}
