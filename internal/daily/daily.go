// Package daily selects the word of the day and keeps daily results.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	dk := DateKey(date)
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dk))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Puzzle is one day's challenge.
type Puzzle struct {
	Date   string
	Index  int
	Answer string
}

// For returns the puzzle of the day containing t. Answer is empty when there
// are no answers.
func For(t time.Time, salt string, answers []string) Puzzle {
	p := Puzzle{Date: DateKey(t)}
	if len(answers) == 0 {
		return p
	}
	p.Index = WordIndex(t, salt, len(answers))
	p.Answer = answers[p.Index]
	return p
}
