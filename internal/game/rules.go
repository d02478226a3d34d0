// apps/go-server/internal/game/rules.go
//
// Round controller: termination, win detection, scoring and the
// head-to-head tie-break. Stateless given a guess history and a target.

package game

// IsRoundOver reports whether a round has ended: the player won, or the
// number of guesses reached maxAttempts.
func IsRoundOver(guesses []string, won bool, maxAttempts int) bool {
	return won || len(guesses) >= maxAttempts
}

// HasWon reports whether guess is exactly the target.
func HasWon(guess, target string) bool {
	return guess == target
}

// Score sums 2 points per correct and 1 per present letter over all guesses.
// Guesses that cannot be evaluated against target score nothing.
func Score(guesses []string, target string) int {
	total := 0
	for _, g := range guesses {
		res, err := Evaluate(g, target)
		if err != nil {
			continue
		}
		total += res.Points()
	}
	return total
}

// Outcome summarizes one side of a head-to-head round.
type Outcome struct {
	Won      bool `json:"won"`
	Attempts int  `json:"attempts"`
	Score    int  `json:"score"`
}

// Winner names the side that took a head-to-head round.
type Winner string

const (
	WinnerFirst  Winner = "first"
	WinnerSecond Winner = "second"
	WinnerTie    Winner = "tie"
)

// DecideWinner applies the tie-break policy:
//   - exactly one side succeeded → that side;
//   - both succeeded with different attempt counts → fewer attempts;
//   - otherwise (same attempts, or both failed) → higher score;
//   - equal score → tie.
func DecideWinner(first, second Outcome) Winner {
	switch {
	case first.Won && !second.Won:
		return WinnerFirst
	case second.Won && !first.Won:
		return WinnerSecond
	case first.Won && second.Won && first.Attempts != second.Attempts:
		if first.Attempts < second.Attempts {
			return WinnerFirst
		}
		return WinnerSecond
	}
	switch {
	case first.Score > second.Score:
		return WinnerFirst
	case second.Score > first.Score:
		return WinnerSecond
	default:
		return WinnerTie
	}
}
