// apps/go-server/internal/game/types.go
//
// Core type definitions for the word game engines.
// Defines:
//   - Mark: per-letter classification of a guess (correct/present/absent).
//   - LetterResult / GuessResult: the evaluator's output.
//   - Game: state for a single classic round.
//   - State: coarse round state reported to clients.

package game

import "time"

const (
	// WordLength is the canonical number of letters per guess/target.
	WordLength = 5
	// MaxGuesses is the default turn budget of a round.
	MaxGuesses = 6
)

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter equals the target letter at that position.
//   - "present": letter occurs elsewhere in the target (multiplicity-aware).
//   - "absent":  letter does not occur, or all its occurrences are used up.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// LetterResult is one classified position of a guess.
type LetterResult struct {
	Letter string `json:"letter"`
	Mark   Mark   `json:"status"`
}

// GuessResult is the ordered classification of a whole guess.
type GuessResult []LetterResult

// Pattern returns a compact key for the classification sequence:
// 'G' for correct, 'Y' for present and '.' for absent.
// Two results with the same pattern are indistinguishable responses.
func (r GuessResult) Pattern() string {
	b := make([]byte, len(r))
	for i, lr := range r {
		switch lr.Mark {
		case MarkCorrect:
			b[i] = 'G'
		case MarkPresent:
			b[i] = 'Y'
		default:
			b[i] = '.'
		}
	}
	return string(b)
}

// Counts returns the number of correct and present positions.
func (r GuessResult) Counts() (correct, present int) {
	for _, lr := range r {
		switch lr.Mark {
		case MarkCorrect:
			correct++
		case MarkPresent:
			present++
		}
	}
	return correct, present
}

// AllAbsent reports whether every position is absent.
func (r GuessResult) AllAbsent() bool {
	for _, lr := range r {
		if lr.Mark != MarkAbsent {
			return false
		}
	}
	return len(r) > 0
}

// Solved reports whether every position is correct.
func (r GuessResult) Solved() bool {
	for _, lr := range r {
		if lr.Mark != MarkCorrect {
			return false
		}
	}
	return len(r) > 0
}

// Points scores a single result: 2 per correct, 1 per present.
func (r GuessResult) Points() int {
	c, p := r.Counts()
	return 2*c + p
}

// State is the coarse lifecycle of a round.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Game holds the state of a single classic round.
type Game struct {
	ID        string        // Unique game identifier (random hex string).
	Answer    string        // The solution word (always uppercase).
	Rows      int           // Maximum number of guesses allowed (typically 6).
	Cols      int           // Number of letters per word (typically 5).
	Guesses   []string      // Guesses made so far (uppercase).
	Results   []GuessResult // Evaluations, parallel to Guesses.
	Finished  bool          // True once the game is over (won or lost).
	Won       bool          // True if the game was finished with a win.
	CreatedAt time.Time
	UpdatedAt time.Time
}
