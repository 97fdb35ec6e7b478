package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/play"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func main() {
	_ = godotenv.Load()
	// stdout belongs to the game.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	list, err := words.Load(cfg.AnswersFile, cfg.AllowedFile, cfg.WordLength)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := play.New(os.Stdin, os.Stdout, list, store.NewMemoryStore(), play.Options{
		HardMode:  cfg.HardMode,
		MaxTurns:  cfg.MaxTurns,
		Answer:    cfg.Answer,
		Daily:     cfg.Daily,
		DailySalt: cfg.DailySalt,
	})
	if err := runner.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
