package words

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/robalobadob/wordgames/apps/go-server/internal/game"
	"github.com/robalobadob/wordgames/apps/go-server/internal/random"
)

func TestLoadEmbedded(t *testing.T) {
	l, err := Load(Source{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if l.IsAnswer("FOREST") {
		t.Fatal("six-letter answers must be dropped")
	}
	if !l.IsAnswer("hello") || !l.IsAllowed("HELLO") {
		t.Fatal("HELLO should be an answer and allowed")
	}
	if l.IsAnswer("CRANE") || !l.IsAllowed("crane") {
		t.Fatal("CRANE is an allowed guess, not an answer")
	}
	answers, allowed := l.Stats()
	if answers != 31 {
		t.Fatalf("answers = %d, want 31", answers)
	}
	if allowed <= answers {
		t.Fatalf("allowed = %d, want more than answers", allowed)
	}
	if got := l.Allowed()[0]; got != "HELLO" {
		t.Fatalf("Allowed()[0] = %q, answers come first", got)
	}
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	ans := filepath.Join(dir, "answers.txt")
	all := filepath.Join(dir, "allowed.txt")
	if err := os.WriteFile(ans, []byte("apple\n  Mango \nkiwi\nAPPLE\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(all, []byte("grape\nlemon\n12345\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	l, err := Load(Source{AnswersFile: ans, AllowedFile: all})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := l.Answers(); len(got) != 2 || got[0] != "APPLE" || got[1] != "MANGO" {
		t.Fatalf("Answers = %v", got)
	}
	if !l.IsAllowed("LEMON") || l.IsAnswer("LEMON") {
		t.Fatal("LEMON should be allowed only")
	}

	only, err := Load(Source{AllowedFile: all})
	if err != nil {
		t.Fatalf("Load allowed only: %v", err)
	}
	if !only.IsAnswer("GRAPE") {
		t.Fatal("allowed file doubles as answers")
	}

	if _, err := Load(Source{AnswersFile: ans, AllowedFile: filepath.Join(dir, "missing.txt")}); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestNewLexiconEmpty(t *testing.T) {
	if _, err := NewLexicon([]string{"TOOLONG", "abc"}, nil, 5); !errors.Is(err, ErrNoAnswers) {
		t.Fatalf("err = %v, want ErrNoAnswers", err)
	}
}

func TestRandomAnswer(t *testing.T) {
	l, err := NewLexicon([]string{"HELLO", "WORLD"}, nil, 5)
	if err != nil {
		t.Fatal(err)
	}
	src := random.NewSeeded(2)
	for i := 0; i < 20; i++ {
		if w := l.RandomAnswer(src); !l.IsAnswer(w) {
			t.Fatalf("RandomAnswer = %q", w)
		}
	}
}

func TestAcceptsIsLenient(t *testing.T) {
	ctx := context.Background()
	failing := DictionaryFunc(func(context.Context, string) (bool, error) {
		return false, errors.New("dictionary offline")
	})
	if !Accepts(ctx, failing, "ZZZZZ") {
		t.Fatal("a failing dictionary must accept")
	}
	if !Accepts(ctx, nil, "ZZZZZ") {
		t.Fatal("a nil dictionary must accept")
	}
	rejecting := DictionaryFunc(func(context.Context, string) (bool, error) { return false, nil })
	if Accepts(ctx, rejecting, "ZZZZZ") {
		t.Fatal("a definite no must reject")
	}
}

func TestIsValidWord(t *testing.T) {
	ctx := context.Background()
	l, err := NewLexicon([]string{"HELLO"}, []string{"CRANE"}, 5)
	if err != nil {
		t.Fatal(err)
	}
	if w, err := IsValidWord(ctx, l, " crane ", 5); err != nil || w != "CRANE" {
		t.Fatalf("IsValidWord = %q, %v", w, err)
	}
	if _, err := IsValidWord(ctx, l, "ZZZZZ", 5); !errors.Is(err, game.ErrNotInWordList) {
		t.Fatalf("err = %v, want ErrNotInWordList", err)
	}
	if _, err := IsValidWord(ctx, l, "HELL0", 5); !errors.Is(err, game.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if _, err := IsValidWord(ctx, l, "HI", 5); !errors.Is(err, game.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
