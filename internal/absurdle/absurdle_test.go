package absurdle

import (
	"errors"
	"reflect"
	"testing"

	"github.com/robalobadob/wordgames/apps/go-server/internal/game"
)

func TestNarrowPrefersAllAbsent(t *testing.T) {
	pool := Pool{"HELLO", "QUICK", "BRAVE", "DUMPY", "FRESH"}
	// Against "HELLO": QUICK and DUMPY share no letters.
	got, err := Narrow("HELLO", pool)
	if err != nil {
		t.Fatalf("Narrow: %v", err)
	}
	want := Pool{"QUICK", "DUMPY"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Narrow = %v, want %v", got, want)
	}
}

func TestNarrowCollapsesToLeastInformative(t *testing.T) {
	pool := Pool{"HELLO", "WORLD", "QUITE"}
	// WORLD gives 1 correct + 1 present, QUITE 0 + 1, HELLO 5 + 0.
	got, err := Narrow("HELLO", pool)
	if err != nil {
		t.Fatalf("Narrow: %v", err)
	}
	if !reflect.DeepEqual(got, Pool{"QUITE"}) {
		t.Fatalf("Narrow = %v, want [QUITE]", got)
	}
}

func TestNarrowTieBreaksByPoolOrder(t *testing.T) {
	pool := Pool{"XAXXX", "XXXXA", "AXXXX"}
	got, err := Narrow("EBCDA", pool)
	if err != nil {
		t.Fatalf("Narrow: %v", err)
	}
	// XAXXX: A present. XXXXA: A correct. AXXXX: A present. First present wins.
	if !reflect.DeepEqual(got, Pool{"XAXXX"}) {
		t.Fatalf("Narrow = %v, want [XAXXX]", got)
	}
}

func TestNarrowEmptyPool(t *testing.T) {
	_, err := Narrow("HELLO", Pool{"TOOLONG"})
	if !errors.Is(err, game.ErrEmptyPool) {
		t.Fatalf("err = %v, want ErrEmptyPool", err)
	}
	_, err = Narrow("HELLO", nil)
	if !errors.Is(err, game.ErrEmptyPool) {
		t.Fatalf("err = %v, want ErrEmptyPool", err)
	}
}

func TestNarrowNeverGrows(t *testing.T) {
	pool := Pool{"HELLO", "WORLD", "QUITE", "FANCY", "FRESH", "PANIC", "CRAZY", "BUGGY"}
	for _, guess := range []string{"AUDIO", "CRANE", "FRESH", "ZZZZZ"} {
		next, err := Narrow(guess, pool)
		if err != nil {
			t.Fatalf("Narrow(%s): %v", guess, err)
		}
		if len(next) == 0 || len(next) > len(pool) {
			t.Fatalf("Narrow(%s) size %d from %d", guess, len(next), len(pool))
		}
		for _, w := range next {
			if !pool.Contains(w) {
				t.Fatalf("Narrow(%s) introduced %s", guess, w)
			}
		}
	}
}

func TestPartition(t *testing.T) {
	buckets := Partition("HELLO", Pool{"QUICK", "HELLO", "DUMPY"})
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}
	if !buckets[0].AllAbsent || !reflect.DeepEqual(buckets[0].Words, []string{"QUICK", "DUMPY"}) {
		t.Fatalf("first bucket = %+v", buckets[0])
	}
	if buckets[1].Pattern != "GGGGG" || buckets[1].Correct != 5 {
		t.Fatalf("second bucket = %+v", buckets[1])
	}
}

func TestSessionCollapsesThenWins(t *testing.T) {
	s := NewSession("s1", []string{"hello", "world", "quite"}, 6)
	turn, err := s.Guess("HELLO")
	if err != nil {
		t.Fatalf("Guess: %v", err)
	}
	if turn.Candidates != 1 || turn.State != game.StatePlaying {
		t.Fatalf("turn = %+v", turn)
	}
	if target, ok := s.Target(); !ok || target != "QUITE" {
		t.Fatalf("Target = %q, %v", target, ok)
	}

	turn, err = s.Guess("quite")
	if err != nil {
		t.Fatalf("Guess: %v", err)
	}
	if turn.State != game.StateWon || !turn.Result.Solved() {
		t.Fatalf("expected win, got %+v", turn)
	}
	if _, err := s.Guess("HELLO"); !errors.Is(err, game.ErrGameFinished) {
		t.Fatalf("err = %v, want ErrGameFinished", err)
	}
}

func TestSessionNoTargetBeforeCollapse(t *testing.T) {
	s := NewSession("s2", []string{"QUICK", "DUMPY", "HELLO"}, 6)
	if _, ok := s.Target(); ok {
		t.Fatal("target must not exist with several candidates")
	}
	turn, err := s.Guess("HELLO")
	if err != nil {
		t.Fatalf("Guess: %v", err)
	}
	if !turn.Result.AllAbsent() || turn.Candidates != 2 {
		t.Fatalf("turn = %+v", turn)
	}
	if _, ok := s.Target(); ok {
		t.Fatal("target must not exist with two candidates")
	}
}

func TestSessionRejectsInvalidGuess(t *testing.T) {
	s := NewSession("s3", []string{"HELLO", "WORLD"}, 6)
	if _, err := s.Guess("HI"); !errors.Is(err, game.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if len(s.Guesses) != 0 || len(s.Pool) != 2 {
		t.Fatal("invalid guess must not change the round")
	}
}

func TestSessionEmptyPoolConcedes(t *testing.T) {
	s := NewSession("s4", nil, 6)
	turn, err := s.Guess("HELLO")
	if err != nil {
		t.Fatalf("Guess: %v", err)
	}
	if !turn.Conceded || turn.State != game.StateWon {
		t.Fatalf("turn = %+v, want conceded win", turn)
	}
}

func TestSessionLosesAfterBudget(t *testing.T) {
	s := NewSession("s5", []string{"QUICK", "DUMPY"}, 2)
	for _, g := range []string{"HELLO", "FRESH"} {
		if _, err := s.Guess(g); err != nil {
			t.Fatalf("Guess(%s): %v", g, err)
		}
	}
	if s.State() != game.StateLost {
		t.Fatalf("state = %s, want lost", s.State())
	}
}

func TestDedupe(t *testing.T) {
	got := Dedupe([]string{"hello", "HELLO", "forest", "w0rld", "world"}, 5)
	if !reflect.DeepEqual(got, Pool{"HELLO", "WORLD"}) {
		t.Fatalf("Dedupe = %v", got)
	}
}
