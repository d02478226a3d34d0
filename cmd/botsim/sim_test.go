package main

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/TwiN/go-color"

	"github.com/robalobadob/wordgames/apps/go-server/internal/bot"
	"github.com/robalobadob/wordgames/apps/go-server/internal/game"
	"github.com/robalobadob/wordgames/apps/go-server/internal/words"
)

func testLexicon(t *testing.T) *words.Lexicon {
	t.Helper()
	lex, err := words.NewLexicon(
		[]string{"HELLO", "WORLD", "QUITE", "CRANE", "REACT"},
		[]string{"AUDIO", "ADIEU", "TRACE", "CATER"},
		5,
	)
	if err != nil {
		t.Fatal(err)
	}
	return lex
}

func TestRunIsReproducible(t *testing.T) {
	lex := testLexicon(t)
	opts := options{Difficulty: bot.DifficultyHard, MaxGuesses: 6, Seed: 42, Workers: 4}

	a, err := run(context.Background(), lex, opts, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := run(context.Background(), lex, opts, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("seeded runs differ: %+v vs %+v", a, b)
	}
	if a.Games != 5 {
		t.Fatalf("games = %d, want one per answer", a.Games)
	}
	total := 0
	for _, n := range a.Hist {
		total += n
	}
	if total != a.Wins {
		t.Fatalf("histogram sums to %d, wins = %d", total, a.Wins)
	}
}

func TestRunSampleAndBoards(t *testing.T) {
	lex := testLexicon(t)
	var out bytes.Buffer
	sum, err := run(context.Background(), lex, options{Difficulty: bot.DifficultyEasy, Games: 3, Seed: 1, Boards: true}, &out)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Games != 3 || len(sum.Hist) != game.MaxGuesses {
		t.Fatalf("summary = %+v", sum)
	}
	if !strings.Contains(out.String(), color.Reset) {
		t.Fatalf("boards are not colored: %q", out.String())
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := run(ctx, testLexicon(t), options{Difficulty: bot.DifficultyHard, Seed: 1}, &bytes.Buffer{}); err == nil {
		t.Fatal("want error for cancelled context")
	}
}

func TestPlaySolvesWithFullKnowledge(t *testing.T) {
	solver := bot.New([]string{"CRANE"}, 5, bot.WithOpeners("CRANE"))
	g, err := play(solver, "CRANE", 6)
	if err != nil {
		t.Fatal(err)
	}
	if !g.Won || len(g.Guesses) != 1 {
		t.Fatalf("won=%v guesses=%v", g.Won, g.Guesses)
	}
}

func TestRenderRow(t *testing.T) {
	res, err := game.Evaluate("CRANE", "REACT")
	if err != nil {
		t.Fatal(err)
	}
	row := renderRow(res)
	if !strings.Contains(row, color.Green+"A") || !strings.Contains(row, color.Gray+"N") {
		t.Fatalf("row = %q", row)
	}
}
