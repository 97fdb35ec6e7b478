package play

import (
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// tile renders one letter: [X] exact, (X) wrong spot, plain otherwise.
func tile(r rune, c game.Classification) string {
	l := strings.ToUpper(string(r))
	switch c {
	case game.Exact:
		return "[" + l + "]"
	case game.Present:
		return "(" + l + ")"
	default:
		return " " + l + " "
	}
}

// renderBoard writes every guess so far, one per line.
func renderBoard(w io.Writer, b *game.Board) {
	fmt.Fprintln(w)
	for _, g := range b.Guesses() {
		tiles := make([]string, 0, g.Len())
		for i := 0; i < g.Len(); i++ {
			tiles = append(tiles, tile(g.At(i)))
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(tiles, " "), " "))
	}
	fmt.Fprintln(w)
}

// renderLetters writes the alphabet grouped by best known classification.
func renderLetters(w io.Writer, b *game.Board) {
	groups := map[game.Classification][]string{}
	for _, ls := range b.Letters() {
		groups[ls.Status] = append(groups[ls.Status], strings.ToUpper(string(ls.Letter)))
	}
	fmt.Fprint(w, heredoc.Doc(`
		[X] = Correct spot
		(X) = Incorrect spot
		 X  = Does not appear
	`))
	fmt.Fprintln(w)
	for _, row := range []struct {
		label string
		class game.Classification
	}{
		{"Correct:", game.Exact},
		{"Wrong spot:", game.Present},
		{"Absent:", game.Absent},
		{"Unguessed:", game.Unknown},
	} {
		fmt.Fprintf(w, "%-12s %s\n", row.label, strings.Join(groups[row.class], " "))
	}
	fmt.Fprintln(w)
}

// renderHelp writes the instructions shown at startup.
func renderHelp(w io.Writer, turns, length int, hard bool) {
	fmt.Fprintln(w)
	fmt.Fprint(w, heredoc.Docf(`
		Each game, you have %d tries to guess the %d letter word.
		After each guess, the letters you guessed are marked depending on whether or not they are in the word.
		For example, if you typed 'codes', the output may look something like this:

		    (C) [O]  D   E  [S]

		This would indicate that 'O' and 'S' are in the correct positions, 'C' is in the word,
		but not in the right spot, and 'D' & 'E' are not in the word.
		Therefore, a smart next guess might be 'LOCKS' because 'O' and 'S' are in the same positions,
		and 'C' is in a different position.
	`, turns, length))
	if hard {
		fmt.Fprint(w, heredoc.Doc(`
			Since you are in hard mode, you must use all valid letters from your previous guess:
			letters in the correct spot must stay put, and letters in the wrong spot must be reused.
		`))
	}
	fmt.Fprintln(w, "Good luck!")
	fmt.Fprintln(w)
}
