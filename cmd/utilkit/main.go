package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/utilkit/internal/cli"
	"github.com/dmitrymomot/utilkit/pkg/config"
	"github.com/dmitrymomot/utilkit/pkg/logger"
)

func main() {
	var cfg cli.Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "utilkit: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "utilkit"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(os.Stderr),
		cli.LoggerOption(),
	)

	app, err := cli.New(cfg, log, os.Stdout)
	if err != nil {
		log.Error("invalid configuration", logger.Error(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		stop()
		os.Exit(1)
	}
}
