// apps/go-server/internal/words/words.go
//
// Word list management.
//
// Responsibilities:
//   - Load answer and allowed guess lists from files named in config or fall
//     back to the embedded defaults in assets/.
//   - Maintain sets for quick lookups (answers only, answers ∪ guesses).
//   - Supply RandomAnswer, IsAllowed, IsAnswer and Stats.
//
// Loading rules (Load):
//  1. AnswersFile and AllowedFile both set: answers from the first, extra
//     guesses from the second.
//  2. Only AllowedFile set: that file serves as both lists.
//  3. Neither set: embedded defaults.
//
// Words are stored uppercase. Entries that are not exactly Length letters
// A–Z are dropped.

package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/robalobadob/wordgames/apps/go-server/assets"
	"github.com/robalobadob/wordgames/apps/go-server/internal/game"
	"github.com/robalobadob/wordgames/apps/go-server/internal/random"
)

// ErrNoAnswers is returned when the answers list ends up empty.
var ErrNoAnswers = errors.New("words: answers list is empty")

// Source tells Load where to read the lists from.
type Source struct {
	AnswersFile string
	AllowedFile string
	Length      int
}

// Lexicon is an immutable pair of word lists. Safe for concurrent use.
type Lexicon struct {
	length     int
	answers    []string
	allowed    []string            // answers first, then extra guesses
	answersSet map[string]struct{} // answers only
	allowedSet map[string]struct{} // answers ∪ guesses
}

// Load builds a Lexicon following the loading rules above.
func Load(src Source) (*Lexicon, error) {
	var ansList, allowList []string
	var err error

	switch {
	case src.AnswersFile != "" && src.AllowedFile != "":
		if ansList, err = readWordFile(src.AnswersFile); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(src.AllowedFile); err != nil {
			return nil, err
		}

	case src.AllowedFile != "":
		if allowList, err = readWordFile(src.AllowedFile); err != nil {
			return nil, err
		}
		ansList = allowList

	default:
		if ansList, err = assets.AnswersList(); err != nil {
			return nil, fmt.Errorf("embedded answers: %w", err)
		}
		if allowList, err = assets.AllowedList(); err != nil {
			return nil, fmt.Errorf("embedded allowed: %w", err)
		}
	}

	return NewLexicon(ansList, allowList, src.Length)
}

// NewLexicon normalizes both lists and indexes them. length <= 0 means
// game.WordLength.
func NewLexicon(answers, allowed []string, length int) (*Lexicon, error) {
	if length <= 0 {
		length = game.WordLength
	}
	l := &Lexicon{
		length:     length,
		answersSet: make(map[string]struct{}, len(answers)),
		allowedSet: make(map[string]struct{}, len(answers)+len(allowed)),
	}
	for _, w := range answers {
		w = game.Normalize(w)
		if game.Validate(w, length) != nil {
			continue
		}
		if _, dup := l.answersSet[w]; dup {
			continue
		}
		l.answersSet[w] = struct{}{}
		l.answers = append(l.answers, w)
		l.allowedSet[w] = struct{}{}
		l.allowed = append(l.allowed, w)
	}
	for _, w := range allowed {
		w = game.Normalize(w)
		if game.Validate(w, length) != nil {
			continue
		}
		if _, dup := l.allowedSet[w]; dup {
			continue
		}
		l.allowedSet[w] = struct{}{}
		l.allowed = append(l.allowed, w)
	}
	if len(l.answers) == 0 {
		return nil, ErrNoAnswers
	}
	return l, nil
}

// readWordFile loads one word per line. Filtering happens in NewLexicon.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

// WordLength is the length every word in the lexicon has.
func (l *Lexicon) WordLength() int { return l.length }

// RandomAnswer returns a random answer.
func (l *Lexicon) RandomAnswer(src random.Source) string {
	w, _ := random.Pick(src, l.answers)
	return w
}

// Answers returns a copy of the answers list.
func (l *Lexicon) Answers() []string {
	return append([]string(nil), l.answers...)
}

// Allowed returns a copy of every acceptable guess, answers first.
func (l *Lexicon) Allowed() []string {
	return append([]string(nil), l.allowed...)
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func (l *Lexicon) IsAllowed(w string) bool {
	_, ok := l.allowedSet[game.Normalize(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (l *Lexicon) IsAnswer(w string) bool {
	_, ok := l.answersSet[game.Normalize(w)]
	return ok
}

// IsKnownWord implements Dictionary. A static list never fails.
func (l *Lexicon) IsKnownWord(_ context.Context, w string) (bool, error) {
	return l.IsAllowed(w), nil
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *Lexicon) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowedSet)
}
