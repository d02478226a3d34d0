package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordgames/apps/go-server/assets"
	"github.com/robalobadob/wordgames/apps/go-server/internal/config"
	"github.com/robalobadob/wordgames/apps/go-server/internal/httpserver"
	"github.com/robalobadob/wordgames/apps/go-server/internal/records"
	"github.com/robalobadob/wordgames/apps/go-server/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.Level())
	if !cfg.Production() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	zerolog.DefaultContextLogger = &log.Logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := records.Open(ctx, cfg.DBDriver, cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()
	if err := records.Migrate(ctx, db, assets.Migrations()); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	lex, err := words.Load(words.Source{AnswersFile: cfg.AnswersFile, AllowedFile: cfg.AllowedFile})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	srv := httpserver.New(httpserver.Options{
		Config:  cfg,
		Lexicon: lex,
		Records: records.New(db),
	})

	log.Info().Str("port", cfg.Port).Str("driver", cfg.DBDriver).Msg("starting go-server")
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Serve(gctx, ":"+cfg.Port) })
	g.Go(func() error { return srv.RunSweepers(gctx, time.Minute) })
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("shut down")
}
