// Package main is the entry point for the interactive planet viewer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/Faultbox/planetgen/internal/config"
	"github.com/Faultbox/planetgen/internal/logger"
	"github.com/Faultbox/planetgen/internal/planet"
	"github.com/Faultbox/planetgen/internal/viewer"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Planetgen Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	pc, err := cfg.PlanetConfig()
	if err != nil {
		logger.Fatal("invalid planet config", zap.Error(err))
	}
	mapper, err := cfg.Palette()
	if err != nil {
		logger.Fatal("invalid palette", zap.Error(err))
	}

	gen := planet.New(pc,
		planet.WithLogger(logger.Named("planet")),
		planet.WithMapper(mapper),
	)

	v, err := viewer.New(cfg, gen, logger.Named("viewer"))
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := v.Run(ctx); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
