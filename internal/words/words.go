// internal/words/words.go
//
// Provides word list management for the game engine.
//
// Responsibilities:
//   - Load answer and allowed guess lists from configured files or fall back to
//     the embedded defaults in the assets package.
//   - Maintain sets for quick lookups (answers only, answers∪guesses).
//   - Pick random answers that avoid recently used ones.
//
// Word Lists:
//   - "answers": canonical solutions (exactly N lowercase letters).
//   - "allowed": valid guesses (always includes answers).
//
// Load behavior:
//  1. If both paths are set, load answers from the first and allowed guesses
//     from the second.
//  2. If only one path is set, use that file for both.
//  3. If neither is set, use the embedded assets lists.
//
// Lines are trimmed and lowercased; blank lines and '#' comments are skipped.
//
// A *List is built once at startup and passed to whoever needs it; there is
// no package-level state.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/assets"
)

// ErrNoAnswers is returned when the answer pool is empty after filtering.
var ErrNoAnswers = errors.New("words: answers list is empty")

// List is an immutable answer pool plus the set of allowed guesses.
type List struct {
	length     int
	answers    []string            // canonical answers
	answersSet map[string]struct{} // answers only
	allowedSet map[string]struct{} // answers ∪ guesses
}

// New builds a List from raw word slices, keeping only alphabetic words of
// the given length. Answers are always allowed.
func New(answers, allowed []string, length int) (*List, error) {
	ans := normalize(answers, length)
	if len(ans) == 0 {
		return nil, ErrNoAnswers
	}
	l := &List{
		length:     length,
		answers:    ans,
		answersSet: toSet(ans),
		allowedSet: toSet(ans),
	}
	for _, w := range normalize(allowed, length) {
		l.allowedSet[w] = struct{}{}
	}
	return l, nil
}

// Load reads the word lists described in the package comment.
func Load(answersPath, allowedPath string, length int) (*List, error) {
	var ansList, allowList []string
	var err error

	switch {
	case answersPath != "" && allowedPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}

	case allowedPath != "":
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}
		ansList = allowList

	case answersPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, err
		}
		allowList = ansList

	default:
		if ansList, err = readEmbedded(assets.Answers); err != nil {
			return nil, err
		}
		if allowList, err = readEmbedded(assets.Allowed); err != nil {
			return nil, err
		}
	}

	l, err := New(ansList, allowList, length)
	if err != nil {
		return nil, err
	}
	a, g := l.Stats()
	log.Debug().Int("answers", a).Int("allowed", g).Int("length", length).Msg("word lists loaded")
	return l, nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	out, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

// readEmbedded loads one of the lists bundled in the assets package.
func readEmbedded(name string) ([]string, error) {
	f, err := assets.FS.Open(name)
	if err != nil {
		return nil, fmt.Errorf("embedded %s: %w", name, err)
	}
	defer f.Close()
	return readLines(f)
}

// readLines returns the non-blank lines of r, skipping '#' comments.
func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}

// normalize lowercases and trims words, keeping valid ones of length n once.
func normalize(list []string, n int) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, line := range list {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) != n || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// RandomAnswer returns a cryptographically random answer not in previous.
// Once every answer has been used, previous is ignored.
func (l *List) RandomAnswer(previous []string) (string, error) {
	used := toSet(previous)
	pool := make([]string, 0, len(l.answers))
	for _, w := range l.answers {
		if _, ok := used[w]; !ok {
			pool = append(pool, w)
		}
	}
	if len(pool) == 0 {
		pool = l.answers
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(pool))))
	if err != nil {
		return "", fmt.Errorf("pick answer: %w", err)
	}
	return pool[n.Int64()], nil
}

// AnswerAt returns the answer at index i modulo the pool size.
func (l *List) AnswerAt(i int) string {
	n := len(l.answers)
	return l.answers[((i%n)+n)%n]
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func (l *List) IsAllowed(w string) bool {
	_, ok := l.allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (l *List) IsAnswer(w string) bool {
	_, ok := l.answersSet[strings.ToLower(w)]
	return ok
}

// Answers returns a copy of the answer list.
func (l *List) Answers() []string {
	return append([]string(nil), l.answers...)
}

// Length is the letter count of every word in the list.
func (l *List) Length() int { return l.length }

// Stats returns counts of loaded words: (answers, allowed).
func (l *List) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowedSet)
}
