package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ciaolink-game-platform/blackjack-solo/api"
	"github.com/ciaolink-game-platform/blackjack-solo/entity"
	"github.com/ciaolink-game-platform/blackjack-solo/pkg/config"
	"github.com/ciaolink-game-platform/blackjack-solo/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := entity.SetSnowflakeNode(cfg.SnowflakeNode); err != nil {
		return fmt.Errorf("snowflake node: %w", err)
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := api.NewSession(log, cfg.StartingChips, cfg.Seed)
	log.With(
		zap.String("session-id", session.ID()),
		zap.Int64("starting-chips", cfg.StartingChips),
		zap.Bool("auto-ace", cfg.AutoAce),
	).Info("session started")

	console := api.NewConsole(os.Stdin, os.Stdout, session, cfg.AutoAce)
	return console.Run(ctx)
}
