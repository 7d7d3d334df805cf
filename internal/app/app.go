package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chrissnell/irrigationdash/internal/controllers/restserver"
	"github.com/chrissnell/irrigationdash/pkg/config"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// App represents the main application
type App struct {
	configProvider config.ConfigProvider
	logger         *zap.SugaredLogger
	getenv         func(string) string
}

// New creates a new application instance
func New(configProvider config.ConfigProvider, logger *zap.SugaredLogger) *App {
	return &App{
		configProvider: configProvider,
		logger:         logger,
		getenv:         os.Getenv,
	}
}

// Config loads the configuration and applies environment overrides.
func (a *App) Config() (*config.ConfigData, error) {
	cfg, err := a.configProvider.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}
	if err := cfg.ApplyEnvironment(a.getenv); err != nil {
		return nil, fmt.Errorf("error applying environment overrides: %w", err)
	}
	return cfg, nil
}

// Run starts the application and blocks until shutdown
func (a *App) Run(ctx context.Context) error {
	defer a.configProvider.Close()

	cfg, err := a.Config()
	if err != nil {
		return err
	}

	server, err := restserver.NewController(cfg, a.logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gctx)
	})

	a.logger.Info("Application started successfully")

	<-gctx.Done()
	// gctx also ends when the server fails on its own
	if ctx.Err() != nil {
		a.logger.Info("shutdown signal received, initiating graceful shutdown...")
	}

	if err := g.Wait(); err != nil {
		return err
	}
	a.logger.Info("shutdown complete")

	return nil
}
