// apps/go-server/internal/absurdle/absurdle.go
//
// Adversarial candidate filter ("Absurdle").
// The host never commits to a target. After each guess it answers with the
// response that conveys the least information and keeps only the candidates
// consistent with that response:
//   - if any candidate would answer "all absent", keep every such candidate;
//   - otherwise keep the single candidate with the fewest correct, then
//     fewest present letters (first in pool order on ties).
//
// A target exists only once the pool has collapsed to one word.

package absurdle

import (
	"fmt"

	"github.com/robalobadob/wordgames/apps/go-server/internal/game"
)

// Pool is the set of still-possible targets, in caller order.
type Pool []string

// Bucket groups the candidates that would produce the same response.
type Bucket struct {
	Pattern   string   `json:"pattern"`
	Correct   int      `json:"correct"`
	Present   int      `json:"present"`
	AllAbsent bool     `json:"allAbsent"`
	Words     []string `json:"words"`
}

// Partition evaluates guess against every candidate and groups candidates by
// the full classification pattern. Buckets are returned in order of first
// appearance; words inside a bucket keep pool order. Candidates that cannot
// be evaluated against guess are left out.
func Partition(guess string, pool Pool) []Bucket {
	var buckets []Bucket
	byPattern := make(map[string]int)
	for _, w := range pool {
		res, err := game.Evaluate(guess, w)
		if err != nil {
			continue
		}
		key := res.Pattern()
		i, ok := byPattern[key]
		if !ok {
			c, p := res.Counts()
			buckets = append(buckets, Bucket{
				Pattern:   key,
				Correct:   c,
				Present:   p,
				AllAbsent: res.AllAbsent(),
			})
			i = len(buckets) - 1
			byPattern[key] = i
		}
		buckets[i].Words = append(buckets[i].Words, w)
	}
	return buckets
}

// Narrow returns the pool left after the host answers guess.
// An empty result is reported as game.ErrEmptyPool, which callers treat as
// the host conceding.
func Narrow(guess string, pool Pool) (Pool, error) {
	buckets := Partition(guess, pool)
	if len(buckets) == 0 {
		return Pool{}, fmt.Errorf("narrow %q over %d candidates: %w", guess, len(pool), game.ErrEmptyPool)
	}

	for _, b := range buckets {
		if b.AllAbsent {
			return append(Pool(nil), b.Words...), nil
		}
	}

	// Walk the pool (not the buckets) so ties resolve by original order.
	best, bestC, bestP := "", 0, 0
	for _, w := range pool {
		res, err := game.Evaluate(guess, w)
		if err != nil {
			continue
		}
		c, p := res.Counts()
		if best == "" || c < bestC || (c == bestC && p < bestP) {
			best, bestC, bestP = w, c, p
		}
	}
	return Pool{best}, nil
}

// Contains reports whether w is in the pool.
func (p Pool) Contains(w string) bool {
	for _, c := range p {
		if c == w {
			return true
		}
	}
	return false
}

// Dedupe returns the pool with duplicates and malformed words removed,
// keeping first occurrences. Words are normalized to uppercase.
func Dedupe(words []string, length int) Pool {
	seen := make(map[string]struct{}, len(words))
	out := make(Pool, 0, len(words))
	for _, w := range words {
		w = game.Normalize(w)
		if game.Validate(w, length) != nil {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
