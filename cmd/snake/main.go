package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"snake/internal/app"
	"snake/internal/config"
	"snake/internal/ui/graphics"
	"snake/internal/ui/graphics/screens"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfgPath := flag.String("config", "", "path to an optional YAML config")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}

	logger, err := app.NewLogger(cfg.Log, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(cfg, logger); err != nil {
		logger.Error("snake exited with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	application := app.New(cfg, logger)

	engine := graphics.NewEngine(application)
	engine.RegisterScreen(screens.NewGameScreen(application.Game(), cfg.Window.CellSize, cfg.Window.Hints))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		<-ctx.Done()
		application.Stop()
		return nil
	})

	runErr := engine.Run()
	application.Stop()
	cancel()
	if err := group.Wait(); err != nil {
		return err
	}

	return errors.WithMessage(runErr, "run window")
}
