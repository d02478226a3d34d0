package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/TwiN/go-color"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordgames/apps/go-server/internal/bot"
	"github.com/robalobadob/wordgames/apps/go-server/internal/game"
	"github.com/robalobadob/wordgames/apps/go-server/internal/random"
	"github.com/robalobadob/wordgames/apps/go-server/internal/words"
)

type options struct {
	Difficulty bot.Difficulty
	Games      int
	MaxGuesses int
	Seed       int64
	Workers    int
	Boards     bool
}

// played is one finished simulated round.
type played struct {
	Target string
	Game   *game.Game
}

type summary struct {
	Games    int
	Wins     int
	Attempts int   // total guesses over won games
	Hist     []int // Hist[i] = wins in i+1 guesses
}

func (s summary) winRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

func (s summary) mean() float64 {
	if s.Wins == 0 {
		return 0
	}
	return float64(s.Attempts) / float64(s.Wins)
}

func (s summary) print(w io.Writer) {
	fmt.Fprintf(w, "games: %d  wins: %d (%.1f%%)  mean guesses: %.2f\n", s.Games, s.Wins, 100*s.winRate(), s.mean())
	for i, n := range s.Hist {
		fmt.Fprintf(w, "  %d: %s %d\n", i+1, strings.Repeat("#", n), n)
	}
}

// run plays the configured games in parallel. Boards are written to out in
// game order once all games are done.
func run(ctx context.Context, lex *words.Lexicon, opts options, out io.Writer) (summary, error) {
	if opts.MaxGuesses <= 0 {
		opts.MaxGuesses = game.MaxGuesses
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	targets := pickTargets(lex, opts)
	results := make([]played, len(targets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src := random.New()
			if opts.Seed != 0 {
				src = random.NewSeeded(opts.Seed + int64(i))
			}
			solver := bot.New(lex.Allowed(), lex.WordLength(), bot.WithDifficulty(opts.Difficulty), bot.WithRandom(src))
			gm, err := play(solver, target, opts.MaxGuesses)
			if err != nil {
				return fmt.Errorf("game %d (%s): %w", i, target, err)
			}
			results[i] = played{Target: target, Game: gm}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return summary{}, err
	}

	sum := summary{Games: len(results), Hist: make([]int, opts.MaxGuesses)}
	for _, p := range results {
		if opts.Boards {
			fmt.Fprintln(out, p.Target)
			for _, r := range p.Game.Results {
				fmt.Fprintln(out, "  "+renderRow(r))
			}
		}
		if p.Game.Won {
			sum.Wins++
			sum.Attempts += len(p.Game.Guesses)
			sum.Hist[len(p.Game.Guesses)-1]++
		}
	}
	return sum, nil
}

func pickTargets(lex *words.Lexicon, opts options) []string {
	answers := lex.Answers()
	if opts.Games <= 0 {
		return answers
	}
	src := random.New()
	if opts.Seed != 0 {
		src = random.NewSeeded(opts.Seed)
	}
	out := make([]string, opts.Games)
	for i := range out {
		out[i], _ = random.Pick(src, answers)
	}
	return out
}

// play lets solver guess target until it wins or runs out of guesses.
func play(solver *bot.Solver, target string, maxGuesses int) (*game.Game, error) {
	g, err := game.New(target, maxGuesses)
	if err != nil {
		return nil, err
	}
	for !g.Finished {
		guess := solver.NextGuess(len(g.Guesses))
		res, _, err := g.ApplyGuess(guess)
		if err != nil {
			return nil, err
		}
		solver.Update(guess, res)
	}
	return g, nil
}

var markColor = map[game.Mark]string{
	game.MarkCorrect: color.Green,
	game.MarkPresent: color.Yellow,
	game.MarkAbsent:  color.Gray,
}

func renderRow(r game.GuessResult) string {
	var b strings.Builder
	for _, lr := range r {
		b.WriteString(color.Ize(markColor[lr.Mark], lr.Letter))
	}
	return b.String()
}
