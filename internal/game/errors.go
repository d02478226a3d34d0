package game

import "errors"

var (
	// ErrInvalidInput marks sequences of mismatched length or with characters
	// outside A–Z. They are rejected before evaluation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyPool is reported when an adversarial pool is exhausted. Callers
	// treat it as a forced player win.
	ErrEmptyPool = errors.New("candidate pool exhausted")

	// ErrNoCandidate is reported when the bot cannot find or build a guess
	// satisfying its constraints. It never reaches clients.
	ErrNoCandidate = errors.New("no candidate found")

	ErrGameFinished  = errors.New("game finished")
	ErrNotInWordList = errors.New("not in word list")
)
