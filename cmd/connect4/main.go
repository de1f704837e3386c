package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/iamasit07/4-in-a-row/engine/internal/config"
	"github.com/iamasit07/4-in-a-row/engine/internal/logger"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/game"
	"github.com/iamasit07/4-in-a-row/engine/internal/transport/cli"
)

func main() {
	envFile := flag.String("env", ".env", "path to an optional .env file")
	flag.Parse()

	cfg, err := config.LoadConfig(*envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sugar, err := logger.New(cfg.LogLevel, cfg.LogOutput)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()
	cfg.LogWarnings(sugar)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// a second interrupt falls through to the default handler
		<-ctx.Done()
		stop()
	}()

	sugar.Infow("starting connect four", "depth", cfg.Depth(), "difficulty", cfg.Difficulty)

	gameService := game.NewService(sugar)
	console := cli.NewConsole(os.Stdin, os.Stdout, gameService, sugar)

	if err := console.Run(ctx, cfg.Depth()); err != nil {
		if errors.Is(err, cli.ErrInputClosed) || errors.Is(err, context.Canceled) {
			sugar.Infow("game abandoned", "reason", err)
			return
		}
		sugar.Errorw("game stopped", "error", err)
		_ = sugar.Sync()
		os.Exit(1)
	}
}
