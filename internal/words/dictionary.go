package words

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordgames/apps/go-server/internal/game"
)

// Dictionary answers whether a word exists. Implementations may call out to
// a remote service, so lookups take a context and may fail.
type Dictionary interface {
	IsKnownWord(ctx context.Context, word string) (bool, error)
}

// DictionaryFunc adapts a plain function to Dictionary.
type DictionaryFunc func(ctx context.Context, word string) (bool, error)

func (f DictionaryFunc) IsKnownWord(ctx context.Context, word string) (bool, error) {
	return f(ctx, word)
}

// Accepts asks d about word. A nil Dictionary or a failed lookup accepts the
// word: an unreachable dictionary must not block play.
func Accepts(ctx context.Context, d Dictionary, word string) bool {
	if d == nil {
		return true
	}
	ok, err := d.IsKnownWord(ctx, word)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("word", word).Msg("dictionary lookup failed; accepting word")
		return true
	}
	return ok
}

// IsValidWord normalizes word and checks length, alphabet and dictionary
// membership. It returns the normalized word.
func IsValidWord(ctx context.Context, d Dictionary, word string, length int) (string, error) {
	w := game.Normalize(word)
	if err := game.Validate(w, length); err != nil {
		return "", err
	}
	if !Accepts(ctx, d, w) {
		return "", fmt.Errorf("%w: %s", game.ErrNotInWordList, w)
	}
	return w, nil
}
