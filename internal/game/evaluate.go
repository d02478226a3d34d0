// apps/go-server/internal/game/evaluate.go
//
// Guess evaluation.
// Responsibilities:
//   - Normalize caller input into a LetterSequence (trimmed, uppercase).
//   - Validate sequences (non-empty, A–Z only, equal lengths).
//   - Classify a guess against a target with the two-pass algorithm.

package game

import (
	"fmt"
	"strings"
)

// Normalize trims whitespace and upper-cases s. It does not validate.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Validate checks that s is a non-empty run of uppercase A–Z of length n.
// Pass n <= 0 to skip the length check.
func Validate(s string, n int) error {
	if s == "" {
		return fmt.Errorf("%w: empty sequence", ErrInvalidInput)
	}
	if n > 0 && len(s) != n {
		return fmt.Errorf("%w: %q has %d letters, want %d", ErrInvalidInput, s, len(s), n)
	}
	if !isAlpha(s) {
		return fmt.Errorf("%w: %q must contain only letters A-Z", ErrInvalidInput, s)
	}
	return nil
}

// Evaluate classifies every position of guess against target.
//
// Pass 1:
//   - Mark exact matches as Correct; those target positions are consumed.
//   - Count the remaining (unconsumed) target letters.
//
// Pass 2:
//   - Left to right over non-correct guess positions: if an unconsumed copy of
//     the letter remains, mark Present and consume it; otherwise Absent.
//
// A letter guessed k times against m<k copies in the target therefore earns
// exactly m non-absent marks, with Correct consuming before Present.
func Evaluate(guess, target string) (GuessResult, error) {
	if err := Validate(target, 0); err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}
	if err := Validate(guess, len(target)); err != nil {
		return nil, fmt.Errorf("guess: %w", err)
	}

	n := len(guess)
	res := make(GuessResult, n)

	// Unconsumed target letters (A–Z).
	var counts [26]int

	for i := 0; i < n; i++ {
		res[i].Letter = guess[i : i+1]
		if guess[i] == target[i] {
			res[i].Mark = MarkCorrect
		} else {
			counts[idx(target[i])]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i].Mark == MarkCorrect {
			continue
		}
		j := idx(guess[i])
		if counts[j] > 0 {
			res[i].Mark = MarkPresent
			counts[j]--
		} else {
			res[i].Mark = MarkAbsent
		}
	}
	return res, nil
}

// idx maps an uppercase ASCII letter to 0..25.
// Assumes inputs are validated to A–Z elsewhere.
func idx(c byte) int { return int(c - 'A') }

// isAlpha checks that a string consists only of uppercase A–Z.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
