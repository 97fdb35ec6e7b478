// Package daily picks the answer of the day.
//
// Every player sees the same word on the same UTC date, and the mapping is
// stable for a fixed salt and answer list.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// Pool is the subset of the word list needed to pick a daily answer.
type Pool interface {
	Answers() []string
	AnswerAt(i int) string
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Answer returns the answer of the day from pool.
func Answer(pool Pool, date time.Time, salt string) string {
	return pool.AnswerAt(WordIndex(date, salt, len(pool.Answers())))
}
