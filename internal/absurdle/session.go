package absurdle

import (
	"errors"
	"time"

	"github.com/robalobadob/wordgames/apps/go-server/internal/game"
)

// Session is one Absurdle round. It is owned by a single round and must not
// be shared between games.
type Session struct {
	ID         string
	Pool       Pool
	Guesses    []string
	Results    []game.GuessResult
	MaxGuesses int
	WordLength int
	Finished   bool
	Won        bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Turn is the host's answer to one guess.
type Turn struct {
	Result     game.GuessResult `json:"result"`
	Candidates int              `json:"candidates"`
	State      game.State       `json:"state"`
	Conceded   bool             `json:"conceded,omitempty"`
}

// NewSession starts a round over pool. Malformed and duplicate words are
// dropped; the word length is taken from the first remaining candidate.
func NewSession(id string, words []string, maxGuesses int) *Session {
	length := game.WordLength
	for _, w := range words {
		if n := len(game.Normalize(w)); n > 0 {
			length = n
			break
		}
	}
	if maxGuesses <= 0 {
		maxGuesses = game.MaxGuesses
	}
	now := time.Now().UTC()
	return &Session{
		ID:         id,
		Pool:       Dedupe(words, length),
		Guesses:    []string{},
		MaxGuesses: maxGuesses,
		WordLength: length,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Guess answers one player guess and narrows the pool.
// Malformed guesses return game.ErrInvalidInput and leave the round untouched.
func (s *Session) Guess(guess string) (Turn, error) {
	if s.Finished {
		return Turn{}, game.ErrGameFinished
	}
	guess = game.Normalize(guess)
	if err := game.Validate(guess, s.WordLength); err != nil {
		return Turn{}, err
	}

	next, err := Narrow(guess, s.Pool)
	s.Guesses = append(s.Guesses, guess)
	s.UpdatedAt = time.Now().UTC()

	if errors.Is(err, game.ErrEmptyPool) {
		// The host has nowhere left to hide.
		s.Pool = Pool{}
		s.Results = append(s.Results, nil)
		s.Finished, s.Won = true, true
		return Turn{State: s.State(), Conceded: true}, nil
	}

	s.Pool = next
	res, err := game.Evaluate(guess, next[0])
	if err != nil {
		return Turn{}, err
	}
	s.Results = append(s.Results, res)

	won := len(next) == 1 && game.HasWon(guess, next[0])
	if game.IsRoundOver(s.Guesses, won, s.MaxGuesses) {
		s.Finished, s.Won = true, won
	}
	return Turn{Result: res, Candidates: len(s.Pool), State: s.State()}, nil
}

// Target returns the committed target once the pool has collapsed to a
// single word.
func (s *Session) Target() (string, bool) {
	if len(s.Pool) == 1 {
		return s.Pool[0], true
	}
	return "", false
}

// State reports the round state.
func (s *Session) State() game.State {
	if s.Finished {
		if s.Won {
			return game.StateWon
		}
		return game.StateLost
	}
	return game.StatePlaying
}
