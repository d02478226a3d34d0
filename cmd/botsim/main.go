// Package main plays the head-to-head bot against every answer (or a random
// sample) and reports how often and how fast it solves them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordgames/apps/go-server/internal/bot"
	"github.com/robalobadob/wordgames/apps/go-server/internal/words"
)

func main() {
	var opts options
	var difficulty, answersFile, allowedFile string

	flag.StringVar(&difficulty, "difficulty", string(bot.DifficultyHard), "bot difficulty (easy, medium, hard)")
	flag.IntVar(&opts.Games, "n", 0, "number of games (0 = one per answer)")
	flag.IntVar(&opts.MaxGuesses, "guesses", 6, "guesses per game")
	flag.Int64Var(&opts.Seed, "seed", 0, "random seed for reproducibility (0 = random)")
	flag.IntVar(&opts.Workers, "workers", runtime.NumCPU(), "parallel games")
	flag.BoolVar(&opts.Boards, "boards", false, "print every board")
	flag.StringVar(&answersFile, "answers", "", "answers file (default: embedded)")
	flag.StringVar(&allowedFile, "allowed", "", "allowed file (default: embedded)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	d, err := bot.ParseDifficulty(difficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	opts.Difficulty = d

	lex, err := words.Load(words.Source{AnswersFile: answersFile, AllowedFile: allowedFile})
	if err != nil {
		log.Fatal().Err(err).Msg("load word lists")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum, err := run(ctx, lex, opts, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}
	sum.print(os.Stdout)
}
