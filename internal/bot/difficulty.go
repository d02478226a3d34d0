package bot

import (
	"fmt"
	"strings"
)

// Difficulty caps the bot's effective skill by making it ignore what it knows
// on some turns.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty maps a case-insensitive name onto a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
}

// SkipChance is the probability that the bot plays a random word instead of
// reasoning from its constraints.
func (d Difficulty) SkipChance() float64 {
	switch d {
	case DifficultyEasy:
		return 0.30
	case DifficultyMedium:
		return 0.20
	default:
		return 0
	}
}
