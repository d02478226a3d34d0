// apps/go-server/internal/game/engine.go
//
// Classic round engine for a single Wordle session.
// Responsibilities:
//   - Create new rounds with a fixed turn budget and word length.
//   - Validate and apply guesses (length, alphabetic).
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Dictionary membership is checked by the caller (see words.Accepts);
//     the engine only enforces the shape of a guess.
//   - randomID() is a compact hex identifier for correlating server state.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// New constructs a classic round for answer with the given turn budget.
// maxGuesses <= 0 falls back to MaxGuesses.
func New(answer string, maxGuesses int) (*Game, error) {
	answer = Normalize(answer)
	if err := Validate(answer, 0); err != nil {
		return nil, fmt.Errorf("answer: %w", err)
	}
	if maxGuesses <= 0 {
		maxGuesses = MaxGuesses
	}
	now := time.Now().UTC()
	return &Game{
		ID:        randomID(),
		Answer:    answer,
		Rows:      maxGuesses,
		Cols:      len(answer),
		Guesses:   []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ApplyGuess validates and evaluates a guess, mutating the game state.
// Returns the per-letter result, the new state, or an error.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must be exactly g.Cols letters A–Z (after normalization).
//
// State transitions:
//   - Guess equals the answer → Finished = true, Won = true.
//   - Else if the number of guesses reaches g.Rows → Finished = true (loss).
func (g *Game) ApplyGuess(guess string) (GuessResult, State, error) {
	if g.Finished {
		return nil, g.State(), ErrGameFinished
	}
	guess = Normalize(guess)
	res, err := Evaluate(guess, g.Answer)
	if err != nil {
		return nil, g.State(), err
	}

	g.Guesses = append(g.Guesses, guess)
	g.Results = append(g.Results, res)
	g.UpdatedAt = time.Now().UTC()

	won := HasWon(guess, g.Answer)
	if IsRoundOver(g.Guesses, won, g.Rows) {
		g.Finished, g.Won = true, won
	}
	return res, g.State(), nil
}

// State reports a coarse representation of the current game state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Remaining returns how many guesses are left.
func (g *Game) Remaining() int {
	if n := g.Rows - len(g.Guesses); n > 0 {
		return n
	}
	return 0
}

// Score is the tie-break score of the guesses made so far.
func (g *Game) Score() int {
	return Score(g.Guesses, g.Answer)
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
