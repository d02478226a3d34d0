// apps/go-server/internal/bot/solver.go
//
// Constraint-tracking bot opponent.
// Responsibilities:
//   - Open every round with a vowel-dense word.
//   - Accumulate evaluator feedback into Knowledge.
//   - Propose the next guess: a consistent word from the list when one
//     exists, a synthesized sequence otherwise, a random word as last resort.
//
// The difficulty gate runs before any reasoning, so easier bots sometimes
// play words that contradict what they already know.

package bot

import (
	"fmt"

	"github.com/robalobadob/wordgames/apps/go-server/internal/game"
	"github.com/robalobadob/wordgames/apps/go-server/internal/random"
)

// Openers are the curated first guesses.
var Openers = []string{"AUDIO", "ADIEU", "AROSE", "RAISE", "OUIJA"}

// Solver plays one side of a head-to-head round. A Solver belongs to exactly
// one round at a time; call Reset between rounds.
type Solver struct {
	length     int
	words      []string
	ix         *index
	openers    []string
	rng        random.Source
	difficulty Difficulty
	knowledge  Knowledge
}

// Option customizes a Solver.
type Option func(*Solver)

// WithRandom injects the random source.
func WithRandom(src random.Source) Option {
	return func(s *Solver) { s.rng = src }
}

// WithDifficulty sets the skill level (default hard).
func WithDifficulty(d Difficulty) Option {
	return func(s *Solver) { s.difficulty = d }
}

// WithOpeners replaces the curated opener list.
func WithOpeners(words ...string) Option {
	return func(s *Solver) { s.openers = words }
}

// New builds a Solver over the given word list. Words that are not length
// letters A–Z are ignored; duplicates are dropped.
func New(words []string, length int, opts ...Option) *Solver {
	if length <= 0 {
		length = game.WordLength
	}
	s := &Solver{
		length:     length,
		openers:    Openers,
		difficulty: DifficultyHard,
	}
	for _, o := range opts {
		o(s)
	}
	if s.rng == nil {
		s.rng = random.New()
	}
	s.words = clean(words, length)
	s.openers = clean(s.openers, length)
	s.ix = newIndex(s.words, length)
	s.knowledge = NewKnowledge(length)
	return s
}

// Reset clears the knowledge gathered during a round.
func (s *Solver) Reset() {
	s.knowledge.Reset()
}

// Update integrates the evaluation of one of the bot's guesses.
func (s *Solver) Update(guess string, result game.GuessResult) {
	s.knowledge.Update(guess, result)
}

// Knowledge returns a copy of the current knowledge.
func (s *Solver) Knowledge() Knowledge {
	return s.knowledge.Clone()
}

// Difficulty reports the configured skill level.
func (s *Solver) Difficulty() Difficulty {
	return s.difficulty
}

// FirstGuess returns one of the curated openers.
func (s *Solver) FirstGuess() string {
	if w, ok := random.Pick(s.rng, s.openers); ok {
		return w
	}
	return s.randomWord()
}

// NextGuess proposes the guess for the given zero-based attempt. It never
// returns an empty string.
func (s *Solver) NextGuess(attempt int) string {
	if attempt <= 0 {
		return s.FirstGuess()
	}
	if chance := s.difficulty.SkipChance(); chance > 0 && s.rng.Float64() < chance {
		return s.randomWord()
	}
	if w, ok := random.Pick(s.rng, s.Candidates()); ok {
		return w
	}
	if w, err := s.synthesize(); err == nil {
		return w
	}
	return s.randomWord()
}

// Candidates lists every word in the list consistent with the knowledge.
func (s *Solver) Candidates() []string {
	return s.ix.match(&s.knowledge)
}

// synthesize builds a sequence letter by letter: confirmed letters stay in
// place, letters that must still appear go to positions not proven wrong for
// them, and remaining slots take any letter that is neither absent nor used
// up to its known maximum.
func (s *Solver) synthesize() (string, error) {
	k := &s.knowledge
	out := make([]byte, s.length)
	var used [26]int
	for i, c := range k.Confirmed {
		if c != 0 {
			out[i] = c
			used[letterIdx(c)]++
		}
	}

	for l := 0; l < 26; l++ {
		for used[l] < k.required(l) {
			var slots []int
			for i := range out {
				if out[i] == 0 && !k.wrongAt(l, i) {
					slots = append(slots, i)
				}
			}
			pos, ok := random.Pick(s.rng, slots)
			if !ok {
				break
			}
			out[pos] = byte('A' + l)
			used[l]++
		}
	}

	for i := range out {
		if out[i] != 0 {
			continue
		}
		var letters []int
		for l := 0; l < 26; l++ {
			if k.Absent[l] || k.wrongAt(l, i) {
				continue
			}
			if m := k.maxAllowed(l); m != unknownMax && used[l] >= m {
				continue
			}
			letters = append(letters, l)
		}
		l, ok := random.Pick(s.rng, letters)
		if !ok {
			return "", fmt.Errorf("position %d: %w", i, game.ErrNoCandidate)
		}
		out[i] = byte('A' + l)
		used[l]++
	}
	return string(out), nil
}

// randomWord returns a uniformly random list word, or random letters when
// the list has no word of the right length.
func (s *Solver) randomWord() string {
	if w, ok := random.Pick(s.rng, s.words); ok {
		return w
	}
	b := make([]byte, s.length)
	for i := range b {
		b[i] = byte('A' + s.rng.Intn(26))
	}
	return string(b)
}

// clean normalizes words and keeps unique, well-formed entries.
func clean(words []string, length int) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
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
